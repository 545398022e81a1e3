package log_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kriegslustig/lamport/internal/log"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := log.ParseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := log.ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := log.New(&buf, slog.LevelInfo, log.FormatJSON)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("signed", "bytes", 3)
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"msg":"signed"`)
	require.Contains(t, out, `"bytes":3`)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := log.New(&buf, slog.LevelDebug, log.FormatText)
	require.NoError(t, err)

	l.Error("verify failed", "err", errors.New("boom"))
	require.Contains(t, buf.String(), "verify failed")
	require.Contains(t, buf.String(), "boom")
}

func TestNew_BadFormat(t *testing.T) {
	_, err := log.New(&bytes.Buffer{}, slog.LevelInfo, "xml")
	require.Error(t, err)
}

func TestNewJSONNoTS(t *testing.T) {
	var buf bytes.Buffer
	log.NewJSONNoTS(&buf, slog.LevelInfo).Info("x")
	require.Equal(t, `{"level":"INFO","msg":"x"}`, strings.TrimSpace(buf.String()))
}
