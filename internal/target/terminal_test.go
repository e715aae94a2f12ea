package target

import (
	"bytes"
	"errors"
	"testing"

	"github.com/atlanticdynamic/typecast/internal/markup"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlainTerminal(buf *bytes.Buffer) *Terminal {
	return NewTerminal(buf, WithColorProfile(termenv.Ascii))
}

func TestTerminal_CommandLifecycle(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	term := newPlainTerminal(&out)

	slot := term.OpenCommand()
	slot.Type("l")
	slot.Type("s")
	slot.Apply()
	term.Append(markup.LineBreak)

	assert.Equal(t, "$ █\bl█\bs█\b \b\n", out.String())
	assert.Equal(t, markup.Command("ls", false)+markup.LineBreak, term.Content())
	require.NoError(t, term.Err())
}

func TestTerminal_ApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	term := newPlainTerminal(&out)
	slot := term.OpenCommand()
	slot.Apply()
	slot.Apply()
	slot.Type("x")
	assert.Equal(t, "$ █\b \bx", out.String())
}

func TestTerminal_RenderOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "plain output line",
			markup: markup.Output("Initializing modules..."),
			want:   "Initializing modules...\n",
		},
		{
			name:   "inline colored span",
			markup: markup.Output(`<span style="color:green">ok: [127.0.0.1]</span>`),
			want:   "ok: [127.0.0.1]\n",
		},
		{
			name:   "embedded breaks",
			markup: markup.Output("PLAY [localhost]<br>"),
			want:   "PLAY [localhost]\n\n",
		},
		{
			name:   "self closing break",
			markup: "a<br/>b",
			want:   "a\nb",
		},
		{
			name:   "entities are decoded",
			markup: "a &gt; b",
			want:   "a > b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			term := newPlainTerminal(&out)
			term.Append(tt.markup)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, tt.markup, term.Content())
		})
	}
}

func TestTerminal_ColoredOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	term := NewTerminal(&out, WithColorProfile(termenv.ANSI256))
	term.Append(`<span style="color: green">ok</span>`)
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "ok")
}

func TestTerminal_Clear(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	term := newPlainTerminal(&out)
	term.Append("x")
	term.Clear()
	assert.Empty(t, term.Content())
	assert.Equal(t, "x"+clearScreen, out.String())
}

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestTerminal_WriteError(t *testing.T) {
	t.Parallel()

	w := &failingWriter{}
	term := NewTerminal(w, WithColorProfile(termenv.Ascii))
	term.Append("a")
	term.Append("b")
	require.EqualError(t, term.Err(), "disk full")
	assert.Equal(t, 1, w.calls, "writes stop after the first failure")
	assert.Equal(t, "ab", term.Content())
}

func TestInlineColor(t *testing.T) {
	t.Parallel()

	c, ok := inlineColor("background-color:red; color: green")
	require.True(t, ok)
	assert.Equal(t, "82", string(c))

	_, ok = inlineColor("background-color:red")
	assert.False(t, ok)
}
