package asciicast

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/atlanticdynamic/typecast/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	start := time.Unix(1700000000, 0)
	clk := clock.NewVirtual(start)
	var out bytes.Buffer

	w := NewWriter(&out, clk, Header{Width: 80, Height: 24, Title: "demo"})

	_, err := w.Write([]byte("$ "))
	require.NoError(t, err)
	require.NoError(t, clk.Sleep(context.Background(), 1020*time.Millisecond))
	n, err := w.Write([]byte("l\x1b[0m"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"version":2,"width":80,"height":24,"timestamp":1700000000,"title":"demo"}`, lines[0])
	assert.Equal(t, `[0,"o","$ "]`, lines[1])
	assert.Equal(t, `[1.02,"o","l\u001b[0m"]`, lines[2])

	h, events, err := Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, "demo", h.Title)
	require.Len(t, events, 2)
	assert.Equal(t, Event{Time: 1.02, Type: EventOutput, Data: "l\x1b[0m"}, events[1])
}

func TestWriter_EmptyWrite(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	w := NewWriter(&out, clock.NewVirtual(time.Unix(1, 0)), Header{Width: 1, Height: 1})
	n, err := w.Write(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, out.String())

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteHeader())
	assert.Equal(t, 1, strings.Count(out.String(), "\n"), "header is written once")
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrBadHeader},
		{"not json", "hello\n", ErrBadHeader},
		{"wrong version", `{"version":1,"width":1,"height":1}` + "\n", ErrBadHeader},
		{"short event", `{"version":2,"width":1,"height":1}` + "\n" + `[0,"o"]` + "\n", ErrBadEvent},
		{"bad event time", `{"version":2,"width":1,"height":1}` + "\n" + `["x","o","a"]` + "\n", ErrBadEvent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
