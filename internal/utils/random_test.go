package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededFloat_Deterministic(t *testing.T) {
	a := SeededFloat(42)
	b := SeededFloat(42)
	for i := 0; i < 100; i++ {
		va, vb := a(), b()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestPickIndex(t *testing.T) {
	tests := []struct {
		name     string
		roll     float64
		n        int
		expected int
	}{
		{"empty", 0.5, 0, -1},
		{"first", 0.0, 4, 0},
		{"middle", 0.5, 4, 2},
		{"just below one", 0.9999, 4, 3},
		{"one clamps", 1.0, 4, 3},
		{"negative clamps", -0.1, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PickIndex(tt.roll, tt.n))
		})
	}
}

func TestRandomFloat_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
