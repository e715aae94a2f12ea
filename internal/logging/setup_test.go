package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatText},
		{input: "text", want: FormatText},
		{input: "JSON", want: FormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSetupHandlerText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		logLevel     string
		enabledDebug bool
		enabledInfo  bool
		enabledWarn  bool
	}{
		{name: "trace level", logLevel: "trace", enabledDebug: true, enabledInfo: true, enabledWarn: true},
		{name: "debug level", logLevel: "debug", enabledDebug: true, enabledInfo: true, enabledWarn: true},
		{name: "info level", logLevel: "info", enabledInfo: true, enabledWarn: true},
		{name: "warning level", logLevel: "warning", enabledWarn: true},
		{name: "error level", logLevel: "error"},
		{name: "unknown level", logLevel: "verbose", enabledInfo: true, enabledWarn: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			handler := SetupHandlerText(tc.logLevel, &buf)
			require.NotNil(t, handler)

			ctx := context.Background()
			assert.Equal(t, tc.enabledDebug, handler.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.enabledInfo, handler.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tc.enabledWarn, handler.Enabled(ctx, slog.LevelWarn))
			assert.True(t, handler.Enabled(ctx, slog.LevelError))

			slog.New(handler).Error("test message", "key", "value")
			output := buf.String()
			assert.Contains(t, output, "test message")
			assert.Contains(t, output, "key")
			assert.Contains(t, output, "value")
		})
	}
}

func TestSetupHandlerJSON(t *testing.T) {
	t.Parallel()

	t.Run("fields", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(SetupHandlerJSON("info", &buf))
		logger.Info("test message", "key", "value")

		output := buf.String()
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"key":"value"`)
		assert.Contains(t, output, `"level":"INFO"`)
		assert.NotContains(t, output, `"source"`)
	})

	t.Run("trace adds source", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		slog.New(SetupHandlerJSON("trace", &buf)).Debug("test message")
		assert.Contains(t, buf.String(), `"source"`)
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(SetupHandlerJSON("warn", &buf))
		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})
}

func TestSetup(t *testing.T) {
	t.Parallel()

	t.Run("text to stderr", func(t *testing.T) {
		t.Parallel()
		handler, closer, err := Setup(Options{Level: "info"})
		require.NoError(t, err)
		assert.IsType(t, &log.Logger{}, handler)
		assert.NoError(t, closer.Close())
	})

	t.Run("json to file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "logs", "typecast.log")
		handler, closer, err := Setup(Options{Level: "debug", Format: "json", Output: path})
		require.NoError(t, err)
		assert.IsType(t, &slog.JSONHandler{}, handler)

		slog.New(handler).Debug("written to file", "scene", "landing")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"written to file"`)
		assert.Contains(t, string(data), `"scene":"landing"`)
	})

	t.Run("bad format", func(t *testing.T) {
		t.Parallel()
		_, _, err := Setup(Options{Format: "xml"})
		require.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("bad output", func(t *testing.T) {
		t.Parallel()
		_, _, err := Setup(Options{Output: "tcp://localhost:514"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create log writer")
	})
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	SetupLogger("debug")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	SetupLogger("error")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
}
