package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/atlanticdynamic/typecast/internal/clock"
	"github.com/atlanticdynamic/typecast/internal/config"
	"github.com/atlanticdynamic/typecast/internal/fancy"
	"github.com/atlanticdynamic/typecast/internal/host"
	"github.com/atlanticdynamic/typecast/internal/markup"
	"github.com/atlanticdynamic/typecast/internal/sequencer"
	"github.com/atlanticdynamic/typecast/internal/sequencer/finitestate"
	"github.com/atlanticdynamic/typecast/internal/target"
	"github.com/atlanticdynamic/typecast/internal/trigger"
	"github.com/urfave/cli/v3"
)

var (
	errPlaceholderMismatch = errors.New("playback does not match the placeholder")
	errCursorLeft          = errors.New("playback left a cursor behind")
)

// dryRunEpoch is where the virtual clock of a dry run starts.
var dryRunEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

var validateCmd = &cli.Command{
	Name:      "validate",
	Aliases:   []string{"lint"},
	Usage:     "Validate one or more scene files",
	ArgsUsage: "<config>...",
	Flags: []cli.Flag{
		configFlag(),
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Show detailed tree view of the validated configuration",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Play every scene on a virtual clock and report how long it takes",
		},
		&cli.BoolFlag{
			Name:  "logs",
			Usage: "Replay the playback log of every dry run",
		},
		&cli.Float64Flag{
			Name:  "viewport-width",
			Usage: "Viewport width in logical pixels used to report the trigger decision",
			Value: 1280,
		},
		&cli.Float64Flag{
			Name:  "viewport-height",
			Usage: "Viewport height in logical pixels used to report the trigger decision",
			Value: 800,
		},
	},
	Action: validateAction,
}

// validationResult is the outcome of validating one file.
type validationResult struct {
	Path   string
	Config *config.Config
	Valid  bool
	Error  error
	Runs   []sceneRun
}

// sceneRun is the outcome of a dry run of one scene.
type sceneRun struct {
	Scene   string
	State   string
	Elapsed time.Duration
	Trigger trigger.Mode
	Error   error
}

type dryRunOptions struct {
	enabled  bool
	logs     io.Writer
	viewport host.Static
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if path := cmd.String("config"); path != "" {
		paths = append([]string{path}, paths...)
	}
	if len(paths) == 0 {
		return cli.Exit(errConfigRequired.Error(), 1)
	}

	opts := dryRunOptions{
		enabled:  cmd.Bool("dry-run"),
		viewport: host.NewStatic(cmd.Float64("viewport-width"), cmd.Float64("viewport-height")),
	}
	if cmd.Bool("logs") {
		opts.logs = cmd.Root().ErrWriter
	}

	results := validateLocal(ctx, paths, opts)
	w := cmd.Root().Writer
	failed := 0
	for _, r := range results {
		printResult(w, r, cmd.Bool("tree"))
		if !r.Valid {
			failed++
		}
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d scene files failed validation", failed, len(results)), 1)
	}
	return nil
}

func validateLocal(ctx context.Context, paths []string, opts dryRunOptions) []validationResult {
	results := make([]validationResult, 0, len(paths))
	for _, path := range paths {
		result := validationResult{Path: path}

		cfg, err := config.NewConfig(path)
		if err != nil {
			result.Error = err
			results = append(results, result)
			continue
		}
		result.Config = cfg
		result.Valid = true

		if opts.enabled {
			for i := range cfg.Scenes {
				run := dryRun(ctx, cfg, &cfg.Scenes[i], opts)
				if run.Error != nil {
					result.Valid = false
					result.Error = errors.Join(result.Error, run.Error)
				}
				result.Runs = append(result.Runs, run)
			}
		}
		results = append(results, result)
	}
	return results
}

// dryRun plays scene into an in-memory buffer on a virtual clock.
func dryRun(ctx context.Context, cfg *config.Config, scene *config.Scene, opts dryRunOptions) sceneRun {
	run := sceneRun{
		Scene: scene.Name,
		Trigger: trigger.Policy{Breakpoint: float64(cfg.Trigger.MobileBreakpoint)}.
			Decide(opts.viewport.Viewport(), opts.viewport.Bounds()),
	}

	handler := slog.Default().Handler()
	if opts.logs != nil {
		// Collect debug records quietly so they can be replayed below.
		handler = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	buf := target.NewBuffer()
	seq, err := sequencer.New(
		scene.Script,
		buf,
		sequencer.WithClock(clock.NewVirtual(dryRunEpoch)),
		sequencer.WithTiming(scene.Timing),
		sequencer.WithLogHandler(handler),
	)
	if err != nil {
		run.Error = fmt.Errorf("scene %s: %w", scene.Name, err)
		return run
	}

	if err := seq.Run(ctx); err != nil {
		run.Error = fmt.Errorf("scene %s: %w", scene.Name, err)
		return run
	}
	run.State = seq.GetState()
	run.Elapsed = seq.Elapsed()

	switch {
	case run.State != finitestate.StatusCompleted:
		run.Error = fmt.Errorf("scene %s: playback ended in state %s", scene.Name, run.State)
	case markup.HasClass(buf.Content(), markup.ClassCursor):
		run.Error = fmt.Errorf("%w: scene %s", errCursorLeft, scene.Name)
	case buf.Content() != markup.Placeholder(scene.Script):
		run.Error = fmt.Errorf("%w: scene %s", errPlaceholderMismatch, scene.Name)
	}

	if opts.logs != nil {
		if err := seq.PlaybackLogs(slog.NewTextHandler(opts.logs, &slog.HandlerOptions{Level: slog.LevelDebug})); err != nil {
			slog.Default().Warn("Failed to replay playback logs", "scene", scene.Name, "error", err)
		}
	}
	return run
}

func printResult(w io.Writer, r validationResult, treeView bool) {
	if !r.Valid {
		fmt.Fprintf(w, "%s %s\n", fancy.ErrorText("✗"), r.Path)
		for _, line := range strings.Split(r.Error.Error(), "\n") {
			fmt.Fprintf(w, "  %s\n", fancy.ErrorText(line))
		}
		return
	}

	fmt.Fprintf(w, "%s Scene file %s is valid\n", fancy.ValidText("✓"), r.Path)
	if treeView {
		fmt.Fprintln(w, r.Config)
	} else {
		fmt.Fprintln(w, renderConfigSummary(r.Path, r.Config))
	}

	for _, run := range r.Runs {
		fmt.Fprintf(w, "  %s %s in %s (trigger: %s)\n",
			fancy.SceneText(run.Scene),
			run.State,
			run.Elapsed,
			run.Trigger,
		)
	}
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(path string, cfg *config.Config) string {
	var summary strings.Builder

	lines := 0
	for _, s := range cfg.Scenes {
		lines += s.Script.Len()
	}

	summary.WriteString("\nConfig Summary:\n")
	fmt.Fprintf(&summary, "- Path: %s\n", path)
	fmt.Fprintf(&summary, "- Version: %s\n", cfg.Version)
	fmt.Fprintf(&summary, "- Scenes: %d\n", len(cfg.Scenes))
	fmt.Fprintf(&summary, "- Lines: %d\n", lines)
	summary.WriteString("\nUse --tree for a more detailed view of the config.")

	return summary.String()
}
