package host

import (
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atlanticdynamic/typecast/internal/trigger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSize(cols, rows int) SizeFunc {
	return func() (int, int, error) { return cols, rows, nil }
}

func TestStatic(t *testing.T) {
	t.Parallel()

	h := NewStatic(1280, 720)
	assert.Equal(t, trigger.Viewport{Width: 1280, Height: 720}, h.Viewport())
	assert.Equal(t, trigger.Rect{Top: 0, Bottom: 720}, h.Bounds())
	assert.True(t, h.Bounds().PartiallyVisible(h.Viewport()))

	remove := h.OnScroll(func() { t.Fatal("static host never scrolls") })
	require.NotNil(t, remove)
	remove()
}

func TestTerminal_Geometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         []Option
		wantViewport trigger.Viewport
		wantBounds   trigger.Rect
	}{
		{
			name:         "default cell size",
			opts:         []Option{WithSizeFunc(fixedSize(120, 40))},
			wantViewport: trigger.Viewport{Width: 960, Height: 640},
			wantBounds:   trigger.Rect{Top: 0, Bottom: 640},
		},
		{
			name:         "custom cell size",
			opts:         []Option{WithSizeFunc(fixedSize(40, 30)), WithCellSize(10, 20)},
			wantViewport: trigger.Viewport{Width: 400, Height: 600},
			wantBounds:   trigger.Rect{Top: 0, Bottom: 600},
		},
		{
			name: "size error falls back",
			opts: []Option{WithSizeFunc(func() (int, int, error) {
				return 0, 0, errors.New("not a terminal")
			})},
			wantViewport: trigger.Viewport{Width: 640, Height: 384},
			wantBounds:   trigger.Rect{Top: 0, Bottom: 384},
		},
		{
			name:         "fixed width",
			opts:         []Option{WithSizeFunc(fixedSize(200, 10)), WithWidth(320)},
			wantViewport: trigger.Viewport{Width: 320, Height: 160},
			wantBounds:   trigger.Rect{Top: 0, Bottom: 160},
		},
		{
			name:         "ignores non-positive cell size",
			opts:         []Option{WithSizeFunc(fixedSize(100, 10)), WithCellSize(0, -1)},
			wantViewport: trigger.Viewport{Width: 800, Height: 160},
			wantBounds:   trigger.Rect{Top: 0, Bottom: 160},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := NewTerminal(0, strings.NewReader(""), tc.opts...)
			assert.Equal(t, tc.wantViewport, h.Viewport())
			assert.Equal(t, tc.wantBounds, h.Bounds())
		})
	}
}

func TestTerminal_NarrowDefersUntilEnter(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer func() { assert.NoError(t, pw.Close()) }()

	// 80 columns of 8px is narrower than the default breakpoint.
	h := NewTerminal(0, pr, WithSizeFunc(fixedSize(80, 24)))

	var started atomic.Bool
	trig := trigger.Arm(h, trigger.DefaultPolicy(), func() { started.Store(true) })
	require.Equal(t, trigger.Deferred, trig.Mode())

	errCh := make(chan error, 1)
	go func() { errCh <- h.Run(t.Context()) }()

	_, err := pw.Write([]byte("\n"))
	require.NoError(t, err)

	assert.Eventually(t, started.Load, time.Second, 5*time.Millisecond)

	h.Stop()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestTerminal_WideStartsImmediately(t *testing.T) {
	t.Parallel()

	h := NewTerminal(0, strings.NewReader(""), WithSizeFunc(fixedSize(200, 50)))

	var started atomic.Bool
	trig := trigger.Arm(h, trigger.DefaultPolicy(), func() { started.Store(true) })
	assert.Equal(t, trigger.Immediate, trig.Mode())
	assert.True(t, started.Load())
}

func TestTerminal_RunUntilCanceledAfterEOF(t *testing.T) {
	t.Parallel()

	h := NewTerminal(0, strings.NewReader("one\ntwo\n"), WithSizeFunc(fixedSize(80, 24)))

	var scrolls atomic.Int32
	remove := h.OnScroll(func() { scrolls.Add(1) })
	defer remove()

	errCh := make(chan error, 1)
	go func() { errCh <- h.Run(t.Context()) }()

	assert.Eventually(t, func() bool { return scrolls.Load() == 2 }, time.Second, 5*time.Millisecond)

	select {
	case <-errCh:
		t.Fatal("Run returned before Stop")
	case <-time.After(20 * time.Millisecond):
	}

	h.Stop()
	require.NoError(t, <-errCh)
	assert.Equal(t, "host.Terminal", h.String())
}
