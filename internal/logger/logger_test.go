package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})
	l.Info("sign drawn", "size", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "sign drawn", rec["msg"])
	assert.InDelta(t, 1, rec["size"], 0)
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		environment string
		wantJSON    bool
	}{
		{"production", true},
		{"development", false},
		{"staging", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			var buf bytes.Buffer
			New(Config{Environment: tt.environment, Writer: &buf}).Info("hello")

			isJSON := json.Valid(bytes.TrimSpace(buf.Bytes()))
			assert.Equal(t, tt.wantJSON, isJSON, buf.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestPrettyHandler_Output(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Format: "pretty", Writer: &buf})

	l.Debug("derived colors", "main", "#388e3c", "name", "Anna Liepa")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "derived colors")
	assert.Contains(t, out, "main=#388e3c")
	assert.Contains(t, out, `name="Anna Liepa"`)
}

func TestPrettyHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelWarn, Format: "pretty", Writer: &buf})

	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WRN")
}

func TestPrettyHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Format: "pretty", Writer: &buf})

	l.With("request_id", "abc").WithGroup("sign").Info("drawn", "side", 18, slog.Group("colors", "main", "#fff000"))

	out := buf.String()
	assert.Contains(t, out, "request_id=abc")
	assert.Contains(t, out, "sign.side=18")
	assert.Contains(t, out, "sign.colors.main=#fff000")
}

func TestLogger_FieldHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Format: "json", Writer: &buf})

	l.WithError(errors.New("boom")).
		WithField("digit", 4).
		WithField("method", "numerology").
		WithComponent("service").
		Info("done")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "boom", rec["error"])
	assert.InDelta(t, 4, rec["digit"], 0)
	assert.Equal(t, "numerology", rec["method"])
	assert.Equal(t, "service", rec["component"])
}

func TestContext(t *testing.T) {
	fallback := Discard()
	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	l := Discard()
	ctx := NewContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx, fallback))

	assert.NotNil(t, FromContext(context.Background(), nil))
}
