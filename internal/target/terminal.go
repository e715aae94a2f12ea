package target

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/atlanticdynamic/typecast/internal/fancy"
	"github.com/atlanticdynamic/typecast/internal/markup"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	eraseCursor = "\b \b"
)

var _ Target = (*Terminal)(nil)

// Terminal draws markup on a character terminal using ANSI sequences. It also
// keeps the markup it was given, so Content reports the same value a Buffer
// would.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	styles *fancy.TerminalStyles
	buf    *Buffer
	err    error
}

// TerminalOption configures a Terminal.
type TerminalOption func(*terminalOptions)

type terminalOptions struct {
	profile *termenv.Profile
}

// WithColorProfile forces a color profile instead of detecting one from the
// writer. Recordings use this since a file is never a TTY.
func WithColorProfile(p termenv.Profile) TerminalOption {
	return func(o *terminalOptions) {
		o.profile = &p
	}
}

// NewTerminal creates a Terminal writing to w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	o := &terminalOptions{}
	for _, opt := range opts {
		opt(o)
	}

	r := lipgloss.NewRenderer(w)
	if o.profile != nil {
		r.SetColorProfile(*o.profile)
	}

	return &Terminal{
		w:      w,
		styles: fancy.NewTerminalStyles(r),
		buf:    NewBuffer(),
	}
}

// Err returns the first error returned by the underlying writer.
func (t *Terminal) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Terminal) write(s string) {
	if s == "" || t.err != nil {
		return
	}
	if _, err := io.WriteString(t.w, s); err != nil {
		t.err = err
	}
}

func (t *Terminal) Append(m string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.Append(m)
	t.write(t.render(m))
}

func (t *Terminal) OpenCommand() CommandSlot {
	t.mu.Lock()
	defer t.mu.Unlock()
	slot := t.buf.OpenCommand()
	t.write(t.styles.Prompt.Render("$") + " " + t.styles.Cursor.Render(fancy.CursorGlyph))
	return &terminalSlot{term: t, slot: slot}
}

func (t *Terminal) Content() string {
	return t.buf.Content()
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.Clear()
	t.write(clearScreen)
}

type terminalSlot struct {
	term    *Terminal
	slot    CommandSlot
	applied bool
}

func (s *terminalSlot) Type(text string) {
	s.term.mu.Lock()
	defer s.term.mu.Unlock()
	s.slot.Type(text)
	if s.applied {
		s.term.write(s.term.styles.Command.Render(text))
		return
	}
	s.term.write("\b" + s.term.styles.Command.Render(text) + s.term.styles.Cursor.Render(fancy.CursorGlyph))
}

func (s *terminalSlot) Apply() {
	s.term.mu.Lock()
	defer s.term.mu.Unlock()
	if s.applied {
		return
	}
	s.applied = true
	s.slot.Apply()
	s.term.write(eraseCursor)
}

// render converts a markup fragment into styled terminal text.
func (t *Terminal) render(m string) string {
	var out strings.Builder
	stack := []lipgloss.Style{t.styles.Plain}
	z := html.NewTokenizer(strings.NewReader(m))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				// Malformed fragments are drawn as plain text.
				return m
			}
			return out.String()
		case html.TextToken:
			out.WriteString(stack[len(stack)-1].Render(string(z.Text())))
		case html.SelfClosingTagToken:
			if z.Token().DataAtom == atom.Br {
				out.WriteByte('\n')
			}
		case html.StartTagToken:
			tok := z.Token()
			if tok.DataAtom == atom.Br {
				out.WriteByte('\n')
				continue
			}
			stack = append(stack, t.styleFor(tok, stack[len(stack)-1]))
		case html.EndTagToken:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// styleFor picks the style of an element from its class and inline color.
func (t *Terminal) styleFor(tok html.Token, parent lipgloss.Style) lipgloss.Style {
	style := parent
	for _, attr := range tok.Attr {
		switch attr.Key {
		case "class":
			for _, c := range strings.Fields(attr.Val) {
				switch c {
				case markup.ClassOutput:
					style = t.styles.Output
				case markup.ClassCommand:
					style = t.styles.Command
				case markup.ClassDollarSign:
					style = t.styles.Prompt
				}
			}
		case "style":
			if c, ok := inlineColor(attr.Val); ok {
				style = t.styles.Colored(c)
			}
		}
	}
	return style
}

// inlineColor extracts the color declaration from an inline style attribute.
func inlineColor(decl string) (lipgloss.Color, bool) {
	for _, part := range strings.Split(decl, ";") {
		key, val, ok := strings.Cut(part, ":")
		if !ok || strings.TrimSpace(strings.ToLower(key)) != "color" {
			continue
		}
		return fancy.NamedColor(val)
	}
	return "", false
}
