package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

type ipActivity struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector counts requests and failed logins per client IP over a fixed window
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	byIP        map[string]*ipActivity
	windowStart time.Time
	now         func() time.Time
}

// NewSuspiciousActivityDetector starts an empty window
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		byIP:        make(map[string]*ipActivity),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// RecordFailedAuth counts a rejected API key and alerts once the IP reaches FailedAuthAlertAt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	a := s.activity(ip)
	a.failedAuth++
	failed := a.failedAuth
	s.mu.Unlock()

	if failed >= FailedAuthAlertAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", failed)
	}
}

// RecordRequest counts a request and reports whether the IP is still under MaxRequestsPerWindow
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	a := s.activity(ip)
	a.requests++
	n := a.requests
	s.mu.Unlock()

	if n <= MaxRequestsPerWindow {
		return true
	}
	if n%HighRateLogEveryNth == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", n, "window", DetectorWindow)
	}
	return false
}

// Counts returns the current window's totals for ip
func (s *SuspiciousActivityDetector) Counts(ip string) (requests, failedAuth int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.byIP[ip]; ok {
		return a.requests, a.failedAuth
	}
	return 0, 0
}

// activity rolls the window when it has expired. Caller holds s.mu.
func (s *SuspiciousActivityDetector) activity(ip string) *ipActivity {
	if now := s.now(); now.Sub(s.windowStart) > DetectorWindow {
		s.byIP = make(map[string]*ipActivity)
		s.windowStart = now
	}
	a, ok := s.byIP[ip]
	if !ok {
		a = &ipActivity{}
		s.byIP[ip] = a
	}
	return a
}

// SecurityLoggingMiddleware enforces the per-IP request budget and tags the request logger with the client IP
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	proxies := newProxySet(trustedProxies)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxies.clientIP(r)
			if !detector.RecordRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r.WithContext(logger.WithClientIP(r.Context(), ip)))
		})
	}
}
