// Package script models the fixed content of a terminal animation: an ordered,
// immutable list of typed commands and static output lines.
package script

// Line is one unit of a script. It is implemented only by Command and Output.
type Line interface {
	// Content returns the raw text of the line.
	Content() string
	isLine()
}

// Command is a line that is typed out character by character behind a prompt.
type Command struct {
	Text string
}

// Output is a line that is revealed all at once. Its text is markup and may
// contain inline elements.
type Output struct {
	Text string
}

func (c Command) Content() string { return c.Text }
func (c Command) isLine()         {}

func (o Output) Content() string { return o.Text }
func (o Output) isLine()         {}

// Kind names the variant of a line, used for logging and config rendering.
func Kind(l Line) string {
	switch l.(type) {
	case Command:
		return "command"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}
