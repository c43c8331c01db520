package utils

import (
	"math/rand"
	"sync"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SeededFloat returns a deterministic, goroutine-safe float source for reproducible draws
func SeededFloat(seed int64) func() float64 {
	var mu sync.Mutex
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Deterministic by intent
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()
	}
}

// PickIndex maps a [0,1) roll onto an index in [0, n). Returns -1 when n <= 0.
func PickIndex(roll float64, n int) int {
	if n <= 0 {
		return -1
	}
	idx := int(roll * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
