package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// CursorGlyph is drawn after the last typed character while a command is
// being typed.
const CursorGlyph = "█"

// TerminalStyles holds the styles used to draw an animated script on a
// terminal. They are bound to a renderer so the color profile follows the
// destination writer rather than stdout.
type TerminalStyles struct {
	Plain   lipgloss.Style
	Prompt  lipgloss.Style
	Command lipgloss.Style
	Output  lipgloss.Style
	Cursor  lipgloss.Style

	renderer *lipgloss.Renderer
}

// NewTerminalStyles creates the terminal styles for the given renderer.
func NewTerminalStyles(r *lipgloss.Renderer) *TerminalStyles {
	return &TerminalStyles{
		Plain:    r.NewStyle(),
		Prompt:   r.NewStyle().Foreground(ColorGreen).Bold(true),
		Command:  r.NewStyle().Foreground(ColorWhite),
		Output:   r.NewStyle().Foreground(ColorGray),
		Cursor:   r.NewStyle().Foreground(ColorGray),
		renderer: r,
	}
}

// Colored returns a style drawing text in the given color.
func (s *TerminalStyles) Colored(c lipgloss.Color) lipgloss.Style {
	return s.renderer.NewStyle().Foreground(c)
}
