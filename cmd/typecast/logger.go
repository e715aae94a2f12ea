package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/atlanticdynamic/typecast/internal/logging"
	"github.com/urfave/cli/v3"
)

type logCloserKey struct{}

// setupLogging installs the default logger from the root flags.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	handler, closer, err := logging.Setup(logging.Options{
		Level:  cmd.String("log-level"),
		Format: cmd.String("log-format"),
		Output: cmd.String("log-output"),
	})
	if err != nil {
		return ctx, cli.Exit(err.Error(), 1)
	}
	slog.SetDefault(slog.New(handler))
	return context.WithValue(ctx, logCloserKey{}, closer), nil
}

// closeLogging releases the log destination opened by setupLogging.
func closeLogging(ctx context.Context, _ *cli.Command) error {
	closer, ok := ctx.Value(logCloserKey{}).(io.Closer)
	if !ok {
		return nil
	}
	return closer.Close()
}
