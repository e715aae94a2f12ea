package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/typecast/internal/host"
	"github.com/atlanticdynamic/typecast/internal/sequencer/finitestate"
	"github.com/atlanticdynamic/typecast/internal/stage"
	"github.com/atlanticdynamic/typecast/internal/target"
	"github.com/atlanticdynamic/typecast/internal/trigger"
	"github.com/charmbracelet/x/term"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

var playCmd = &cli.Command{
	Name:      "play",
	Usage:     "Play a scene in this terminal",
	ArgsUsage: "<config>",
	Flags: append([]cli.Flag{
		configFlag(),
		sceneFlag(),
		&cli.Float64Flag{
			Name:  "viewport-width",
			Usage: "Viewport width in logical pixels (defaults to columns times cell width)",
		},
		&cli.BoolFlag{
			Name:  "immediate",
			Usage: "Start right away instead of waiting for Enter on narrow terminals",
		},
	}, timingFlags()...),
	Action: playAction,
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	cfg, scene, err := loadScene(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger := slog.Default()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := target.NewTerminal(cmd.Root().Writer)
	registry := target.NewRegistry()
	registry.Mount(scene.Target, out)
	defer registry.Unmount(scene.Target)

	opts := []stage.Option{
		stage.WithLogger(logger.With("component", "stage")),
		stage.WithPolicy(trigger.Policy{Breakpoint: float64(cfg.Trigger.MobileBreakpoint)}),
	}
	var runnables []supervisor.Runnable

	if !cmd.Bool("immediate") && term.IsTerminal(os.Stdin.Fd()) {
		termHost := host.NewTerminal(
			os.Stdout.Fd(),
			os.Stdin,
			host.WithWidth(cmd.Float64("viewport-width")),
			host.WithLogger(logger.With("component", "host")),
		)
		opts = append(opts, stage.WithHost(termHost))
		runnables = append(runnables, termHost)
	}

	st := stage.New(registry, cfg.Scenes, opts...)
	runnables = append(runnables, st)

	seq, err := st.Mount(ctx, scene.Name)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to mount scene: %w", err), 1)
	}
	if seq.GetState() == finitestate.StatusIdle {
		logger.Info("Waiting for the terminal to scroll, press Enter to start", "scene", scene.Name)
	}

	// End the supervisor once playback is over.
	go func() {
		select {
		case <-seq.Done():
		case <-ctx.Done():
		}
		cancel()
	}()

	super, err := supervisor.New(
		supervisor.WithRunnables(runnables...),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithContext(ctx),
	)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create supervisor: %w", err), 1)
	}
	if err := super.Run(); err != nil {
		return cli.Exit(fmt.Errorf("failed to play scene: %w", err), 1)
	}
	if err := out.Err(); err != nil {
		return cli.Exit(fmt.Errorf("failed to write to terminal: %w", err), 1)
	}

	logger.Debug("Playback finished",
		"scene", scene.Name,
		"state", seq.GetState(),
		"elapsed", seq.Elapsed(),
	)
	return nil
}
