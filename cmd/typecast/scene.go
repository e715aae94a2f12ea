package main

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/typecast/internal/config"
	"github.com/urfave/cli/v3"
)

var errConfigRequired = errors.New(
	"config file path required (use the --config flag, or provide the config file as positional argument)",
)

// delayFlags maps the timing override flags to the config keys they replace.
var delayFlags = []struct {
	flag string
	key  string
	env  string
	help string
}{
	{"char-delay", "command_char_delay", "TYPECAST_CHAR_DELAY", "Pause after each typed character"},
	{"start-delay", "start_command_delay", "TYPECAST_START_DELAY", "Pause before typing a command"},
	{"apply-delay", "apply_command_delay", "TYPECAST_APPLY_DELAY", "Pause before a typed command is applied"},
	{"output-delay", "output_line_delay", "TYPECAST_OUTPUT_DELAY", "Pause after each output line"},
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the scene file",
		Sources: cli.EnvVars("TYPECAST_CONFIG"),
	}
}

func sceneFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "scene",
		Aliases: []string{"s"},
		Usage:   "Scene to use (defaults to the first scene in the file)",
		Sources: cli.EnvVars("TYPECAST_SCENE"),
	}
}

func timingFlags() []cli.Flag {
	flags := make([]cli.Flag, 0, len(delayFlags))
	for _, d := range delayFlags {
		flags = append(flags, &cli.DurationFlag{
			Name:    d.flag,
			Usage:   d.help + " (overrides the scene file)",
			Sources: cli.EnvVars(d.env),
		})
	}
	return flags
}

// configPath returns the --config flag or the first positional argument.
func configPath(cmd *cli.Command) (string, error) {
	if path := cmd.String("config"); path != "" {
		return path, nil
	}
	if cmd.Args().Len() < 1 {
		return "", errConfigRequired
	}
	return cmd.Args().First(), nil
}

// loadScene reads the scene file and returns it together with the selected
// scene, with the timing flags applied to that scene.
func loadScene(cmd *cli.Command) (*config.Config, *config.Scene, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.NewConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	scene := cfg.DefaultScene()
	if name := cmd.String("scene"); name != "" {
		if scene, err = cfg.FindScene(name); err != nil {
			return nil, nil, err
		}
	}

	timing, err := overrideTiming(cmd, scene.Timing)
	if err != nil {
		return nil, nil, err
	}
	scene.Timing = timing
	return cfg, scene, nil
}

func overrideTiming(cmd *cli.Command, timing config.Timing) (config.Timing, error) {
	var err error
	for _, d := range delayFlags {
		if !cmd.IsSet(d.flag) {
			continue
		}
		if timing, err = timing.With(d.key, cmd.Duration(d.flag)); err != nil {
			return timing, err
		}
	}
	if err := timing.Validate(); err != nil {
		return timing, fmt.Errorf("invalid timing flags: %w", err)
	}
	return timing, nil
}
