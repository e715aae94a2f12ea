package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	ComponentStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	SceneStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	CommandStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ValidStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// SceneText styles a scene name
func SceneText(text string) string {
	return SceneStyle.Render(text)
}

// CommandText styles a command line
func CommandText(text string) string {
	return CommandStyle.Render(text)
}

// OutputText styles an output line
func OutputText(text string) string {
	return OutputStyle.Render(text)
}

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return ValidStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}

// SummaryText styles summary information (dark gray)
func SummaryText(text string) string {
	return BranchStyle.Render(text)
}

// CountText styles count numbers (cyan)
func CountText(text string) string {
	return ComponentStyle.Render(text)
}
