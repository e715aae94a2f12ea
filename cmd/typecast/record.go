package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/atlanticdynamic/typecast/internal/asciicast"
	"github.com/atlanticdynamic/typecast/internal/clock"
	"github.com/atlanticdynamic/typecast/internal/sequencer"
	"github.com/atlanticdynamic/typecast/internal/target"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"
)

var recordCmd = &cli.Command{
	Name:      "record",
	Usage:     "Record a scene as an asciicast v2 file",
	ArgsUsage: "<config>",
	Flags: append([]cli.Flag{
		configFlag(),
		sceneFlag(),
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "Path of the .cast file to write",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "Terminal width in columns",
			Value: 80,
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "Terminal height in rows",
			Value: 24,
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Recording title (defaults to the scene name)",
		},
	}, timingFlags()...),
	Action: recordAction,
}

func recordAction(ctx context.Context, cmd *cli.Command) error {
	_, scene, err := loadScene(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	title := cmd.String("title")
	if title == "" {
		title = scene.Name
	}

	outPath := cmd.String("output")
	f, err := os.Create(outPath)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create recording: %w", err), 1)
	}
	defer func() { _ = f.Close() }()

	clk := clock.NewVirtual(time.Now())
	rec := asciicast.NewWriter(f, clk, asciicast.Header{
		Width:  cmd.Int("width"),
		Height: cmd.Int("height"),
		Title:  title,
		Env:    map[string]string{"TERM": "xterm-256color"},
	})
	if err := rec.WriteHeader(); err != nil {
		return cli.Exit(fmt.Errorf("failed to write recording header: %w", err), 1)
	}

	out := target.NewTerminal(rec, target.WithColorProfile(termenv.ANSI256))
	seq, err := sequencer.New(
		scene.Script,
		out,
		sequencer.WithClock(clk),
		sequencer.WithTiming(scene.Timing),
		sequencer.WithLogger(slog.Default().With("component", "sequencer", "scene", scene.Name)),
	)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create sequencer: %w", err), 1)
	}

	if err := seq.Run(ctx); err != nil {
		return cli.Exit(fmt.Errorf("failed to record scene: %w", err), 1)
	}
	if err := out.Err(); err != nil {
		return cli.Exit(fmt.Errorf("failed to write recording: %w", err), 1)
	}
	if err := f.Close(); err != nil {
		return cli.Exit(fmt.Errorf("failed to close recording: %w", err), 1)
	}

	fmt.Fprintf(cmd.Root().Writer, "Recorded scene %s to %s (%s)\n", scene.Name, outPath, seq.Elapsed())
	return nil
}
