// Package logging builds the slog handlers used by the CLI: charmbracelet/log
// for human readable output and the standard JSON handler for machines.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atlanticdynamic/typecast/internal/logging/writers"
	"github.com/charmbracelet/log"
)

// Format selects the log encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var ErrUnsupportedFormat = errors.New("unsupported log format")

// ParseFormat returns the Format named by s. An empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// level maps a level name to a slog level and reports whether callers should
// be included. Unknown names fall back to info.
func level(logLevel string) (slog.Level, bool) {
	switch strings.ToLower(logLevel) {
	case "trace":
		return slog.LevelDebug, true
	case "debug":
		return slog.LevelDebug, false
	case "warn", "warning":
		return slog.LevelWarn, false
	case "error":
		return slog.LevelError, false
	default:
		return slog.LevelInfo, false
	}
}

// SetupHandlerText configures a text slog handler with the provided writer and log level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	lvl, reportCaller := level(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: lvl <= slog.LevelDebug,
		ReportCaller:    reportCaller,
		Level:           log.Level(lvl),
		Prefix:          "typecast",
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	lvl, reportCaller := level(logLevel)
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: reportCaller,
	})
}

// Options describes where and how to log.
type Options struct {
	Level  string
	Format string
	Output string
}

// Setup builds a handler from opts. The returned closer releases the output
// and must be called when logging is done.
func Setup(opts Options) (slog.Handler, io.Closer, error) {
	format, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, nil, err
	}

	w, err := writers.CreateWriter(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log writer: %w", err)
	}

	switch format {
	case FormatJSON:
		return SetupHandlerJSON(opts.Level, w), w, nil
	default:
		return SetupHandlerText(opts.Level, w), w, nil
	}
}

// SetupLogger configures the default logger based on provided log level
func SetupLogger(logLevel string) {
	handler := SetupHandlerText(logLevel, nil)
	slog.SetDefault(slog.New(handler))
}
