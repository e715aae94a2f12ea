package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/typecast/internal/markup"
	"github.com/urfave/cli/v3"
)

var placeholderCmd = &cli.Command{
	Name:      "placeholder",
	Usage:     "Print the markup of a scene in its final state",
	ArgsUsage: "<config>",
	Flags: []cli.Flag{
		configFlag(),
		sceneFlag(),
		&cli.BoolFlag{
			Name:  "text",
			Usage: "Print the visible text instead of the markup",
		},
	},
	Action: placeholderAction,
}

func placeholderAction(_ context.Context, cmd *cli.Command) error {
	_, scene, err := loadScene(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out := markup.Placeholder(scene.Script)
	if !cmd.Bool("text") {
		fmt.Fprintln(cmd.Root().Writer, out)
		return nil
	}

	text, err := markup.VisibleText(out)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to extract text: %w", err), 1)
	}
	fmt.Fprint(cmd.Root().Writer, text)
	return nil
}
