// Package markup renders script lines as the HTML fragments shown by a
// terminal animation, including the placeholder used to reserve layout space.
package markup

import (
	"html"
	"strings"

	"github.com/atlanticdynamic/typecast/internal/script"
)

// CSS classes carried by the generated markup.
const (
	ClassDollarSign = "terminal-command-dollar-sign"
	ClassCommand    = "terminal-command"
	ClassCursor     = "terminal-cursor"
	ClassOutput     = "terminal-output"
)

// LineBreak ends a command line. Output lines carry their own break.
const LineBreak = "<br>"

// Prompt is the markup placed in front of every command.
const Prompt = `<span class="` + ClassDollarSign + `">$</span> `

// Command wraps command text in the prompt and command span. When cursor is
// true the command span also carries the cursor class.
func Command(text string, cursor bool) string {
	var b strings.Builder
	b.WriteString(Prompt)
	b.WriteString(CommandOpen(cursor))
	b.WriteString(html.EscapeString(text))
	b.WriteString(CommandClose)
	return b.String()
}

// CommandOpen is the opening tag of the command span.
func CommandOpen(cursor bool) string {
	if cursor {
		return `<span class="` + ClassCommand + ` ` + ClassCursor + `">`
	}
	return `<span class="` + ClassCommand + `">`
}

// CommandClose is the closing tag of the command span.
const CommandClose = "</span>"

// Output wraps an output line and terminates it with a line break. The text is
// authored markup and is not escaped.
func Output(text string) string {
	return `<span class="` + ClassOutput + `">` + text + `</span>` + LineBreak
}

// Line renders a fully revealed line, exactly as it looks after playback.
func Line(l script.Line) string {
	switch v := l.(type) {
	case script.Command:
		return Command(v.Text, false) + LineBreak
	case script.Output:
		return Output(v.Text)
	default:
		return ""
	}
}

// Placeholder renders the whole script in its final state, with commands fully
// typed and no cursor.
func Placeholder(s script.Script) string {
	var b strings.Builder
	for _, l := range s.All() {
		b.WriteString(Line(l))
	}
	return b.String()
}
