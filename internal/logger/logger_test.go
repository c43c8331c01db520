package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))) })

	InitLoggerWithWriter(Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	Info("coins credited", "user_id", "u-1", "amount", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "coins credited", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "u-1", entry["user_id"])
	assert.Equal(t, float64(42), entry["amount"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))) })

	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Debug("hidden")
	Info("hidden too")
	Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))

	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)

	assert.NotNil(t, FromContext(ctx))
}

func TestFromContext_IncludesCorrelationIDs(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))) })
	InitLoggerWithWriter(Config{Level: "debug", Format: "text"}, &buf)

	ctx := WithUserID(WithRequestID(context.Background(), "req-9"), "user-7")
	ctx = WithClientIP(ctx, "10.0.0.4")
	FromContext(ctx).Info("purchase")

	line := buf.String()
	assert.True(t, strings.Contains(line, "request_id=req-9"), line)
	assert.True(t, strings.Contains(line, "user_id=user-7"), line)
	assert.True(t, strings.Contains(line, "client_ip=10.0.0.4"), line)
}

func TestGenerateRequestID_Unique(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestConfig_FormatAndAttributes(t *testing.T) {
	cfg := NewConfig("info", "JSON", "svc", "1.2.3", "prod", false)
	assert.True(t, cfg.IsJSON())
	assert.False(t, Config{Format: "text"}.IsJSON())

	attrs := cfg.BaseAttributes()
	require.Len(t, attrs, 3)
	assert.Equal(t, "svc", attrs[0].Value.String())
	assert.Equal(t, "1.2.3", attrs[1].Value.String())
	assert.Equal(t, "prod", attrs[2].Value.String())
}
