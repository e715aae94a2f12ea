package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "typecast",
		Version: Version,
		Usage:   "Replay scripted terminal sessions, one keystroke at a time",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("TYPECAST_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text or json)",
				Value:   "text",
				Sources: cli.EnvVars("TYPECAST_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-output",
				Usage:   "Log destination (stderr, stdout or a file path)",
				Value:   "stderr",
				Sources: cli.EnvVars("TYPECAST_LOG_OUTPUT"),
			},
		},
		Before: setupLogging,
		After:  closeLogging,
		Commands: []*cli.Command{
			playCmd,
			recordCmd,
			placeholderCmd,
			validateCmd,
			versionCmd,
		},
	}
}

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
