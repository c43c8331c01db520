package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/chest"
	"github.com/oliverftrep03/La-Penada-Real/internal/economy"
	"github.com/oliverftrep03/La-Penada-Real/internal/eventlog"
	"github.com/oliverftrep03/La-Penada-Real/internal/handler"
	"github.com/oliverftrep03/La-Penada-Real/internal/inventory"
	"github.com/oliverftrep03/La-Penada-Real/internal/ledger"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/metrics"
	"github.com/oliverftrep03/La-Penada-Real/internal/progression"
	"github.com/oliverftrep03/La-Penada-Real/internal/sse"
	"github.com/oliverftrep03/La-Penada-Real/internal/unlock"
)

// Services groups the engine services exposed over HTTP
type Services struct {
	Catalog     catalog.Service
	Ledger      ledger.Service
	Inventory   inventory.Service
	Progression progression.Service
	Chest       chest.Service
	Unlock      unlock.Service
	Economy     economy.Service
	EventLog    eventlog.Service
	Reloader    handler.CatalogReloader
}

// Options carries the transport-level settings of the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	// Pinger backs /readyz; nil means always ready
	Pinger handler.Pinger
	// Hub backs /api/v1/events; nil disables the stream
	Hub *sse.Hub
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, svcs Services) *Server {
	r := NewRouter(opts, svcs)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(opts Options, svcs Services) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Pinger))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/profile", func(r chi.Router) {
			r.Post("/claim", handler.HandleClaimProfile(svcs.Economy))
			r.Get("/", handler.HandleGetProfile(svcs.Economy))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/items", handler.HandleListItems(svcs.Catalog))
			r.Get("/items/{id}", handler.HandleGetItem(svcs.Catalog))
			r.Get("/rewards", handler.HandleListRewards(svcs.Catalog))
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", handler.HandleGetWallet(svcs.Ledger))
			r.Get("/history", handler.HandleGetWalletHistory(svcs.Ledger))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(svcs.Inventory))
			r.Delete("/{itemID}", handler.HandleRevokeItem(svcs.Inventory))
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", handler.HandleGetShop(svcs.Economy))
			r.Post("/purchase", handler.HandlePurchase(svcs.Economy))
		})

		r.Route("/chests", func(r chi.Router) {
			r.Get("/", handler.HandleListChests(svcs.Chest))
			r.Post("/welcome", handler.HandleClaimWelcomeChest(svcs.Economy))
			r.Post("/{chestID}/open", handler.HandleOpenChest(svcs.Chest))
		})

		r.Route("/progression", func(r chi.Router) {
			r.Get("/", handler.HandleGetProgression(svcs.Progression))
			r.Post("/xp", handler.HandleGrantXP(svcs.Economy))
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Get("/board", handler.HandleGetRewardBoard(svcs.Unlock))
			r.Post("/unlock", handler.HandleUnlockReward(svcs.Unlock))
		})

		if opts.Hub != nil {
			r.Get("/events", sse.Handler(opts.Hub))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Post("/coins", handler.HandleAdminGrantCoins(svcs.Economy))
			r.Post("/xp", handler.HandleAdminAwardXP(svcs.Economy))
			r.Post("/items", handler.HandleAdminUpsertItem(svcs.Catalog))
			r.Post("/rewards", handler.HandleAdminUpsertReward(svcs.Catalog))
			r.Post("/chests", handler.HandleAdminIssueChest(svcs.Chest))
			if svcs.EventLog != nil {
				r.Get("/events", handler.HandleAdminListEvents(svcs.EventLog))
			}
			if svcs.Reloader != nil {
				r.Post("/catalog/reload", handler.HandleAdminReloadCatalog(svcs.Reloader))
			}
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working behind the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
