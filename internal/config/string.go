package config

import (
	"fmt"

	"github.com/atlanticdynamic/typecast/internal/fancy"
	"github.com/atlanticdynamic/typecast/internal/script"
	"github.com/charmbracelet/lipgloss/tree"
)

const maxLineWidth = 60

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("Typecast Config (%s)", cfg.Version)))

	t.Child(timingTree("Timing", cfg.Timing))

	triggerTree := t.Child("Trigger")
	triggerTree.Child(fmt.Sprintf("Mobile breakpoint: %dpx", cfg.Trigger.MobileBreakpoint))

	scenes := fancy.BranchNode("Scenes", fmt.Sprintf("(%d)", len(cfg.Scenes)))
	for i := range cfg.Scenes {
		scenes.Child(cfg.Scenes[i].ToTree())
	}
	t.Child(scenes)

	return t.String()
}

// ToTree renders the scene as a tree node
func (s *Scene) ToTree() *tree.Tree {
	t := tree.New().Root(fancy.SceneText(s.Name))
	if s.Path != "" {
		t.Child(fmt.Sprintf("Path: %s", s.Path))
	}
	t.Child(fmt.Sprintf("Target: %s", s.Target))
	t.Child(timingTree("Timing", s.Timing))

	lines := fancy.BranchNode("Lines", fmt.Sprintf("(%d)", s.Script.Len()))
	for _, l := range s.Script.All() {
		text := fancy.TruncateString(l.Content(), maxLineWidth)
		switch l.(type) {
		case script.Command:
			lines.Child(fancy.CommandText("$ " + text))
		default:
			lines.Child(fancy.OutputText(text))
		}
	}
	t.Child(lines)
	return t
}

func timingTree(title string, timing Timing) *tree.Tree {
	t := tree.New().Root(title)
	for _, f := range timing.fields() {
		t.Child(fmt.Sprintf("%s: %s", f.name, f.value))
	}
	return t
}
