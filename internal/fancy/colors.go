package fancy

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Common colors for different types of elements
var (
	ColorBlue     = lipgloss.Color("39")  // Blue
	ColorPurple   = lipgloss.Color("35")  // Purple
	ColorMagenta  = lipgloss.Color("201") // Bright Magenta
	ColorOrange   = lipgloss.Color("208") // Orange
	ColorGreen    = lipgloss.Color("82")  // Green
	ColorYellow   = lipgloss.Color("228") // Yellow
	ColorCyan     = lipgloss.Color("45")  // Cyan
	ColorRed      = lipgloss.Color("196") // Red
	ColorGray     = lipgloss.Color("250") // Light gray
	ColorWhite    = lipgloss.Color("15")  // White
	ColorDarkGray = lipgloss.Color("240") // Dark gray for branches
)

var namedColors = map[string]lipgloss.Color{
	"blue":    ColorBlue,
	"purple":  ColorPurple,
	"magenta": ColorMagenta,
	"orange":  ColorOrange,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"cyan":    ColorCyan,
	"red":     ColorRed,
	"gray":    ColorGray,
	"grey":    ColorGray,
	"white":   ColorWhite,
}

// NamedColor maps a CSS color keyword or hex value to a terminal color.
func NamedColor(name string) (lipgloss.Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, "#") && (len(name) == 4 || len(name) == 7) {
		return lipgloss.Color(name), true
	}
	c, ok := namedColors[name]
	return c, ok
}
