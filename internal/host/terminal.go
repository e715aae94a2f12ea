package host

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/atlanticdynamic/typecast/internal/trigger"
	"github.com/charmbracelet/x/term"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Default cell size, in logical pixels, used to convert a terminal size to a
// viewport.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Fallback terminal size used when the size cannot be read.
const (
	DefaultColumns = 80
	DefaultRows    = 24
)

var (
	_ trigger.Host        = (*Terminal)(nil)
	_ supervisor.Runnable = (*Terminal)(nil)
)

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (cols, rows int, err error)

// Terminal is a host backed by a terminal. Its viewport is the terminal size
// times the cell size, the target spans the full height, and every line read
// from its input counts as a scroll.
type Terminal struct {
	in         io.Reader
	size       SizeFunc
	cellWidth  float64
	cellHeight float64
	width      float64
	logger     *slog.Logger

	mu        sync.Mutex
	listeners map[int]func()
	nextID    int

	cancelMu  sync.Mutex
	runCancel context.CancelFunc
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithCellSize sets the size of one character cell in logical pixels.
func WithCellSize(width, height float64) Option {
	return func(t *Terminal) {
		if width > 0 {
			t.cellWidth = width
		}
		if height > 0 {
			t.cellHeight = height
		}
	}
}

// WithWidth fixes the viewport width in logical pixels instead of deriving
// it from the number of columns.
func WithWidth(px float64) Option {
	return func(t *Terminal) {
		if px > 0 {
			t.width = px
		}
	}
}

// WithSizeFunc replaces the terminal size lookup.
func WithSizeFunc(fn SizeFunc) Option {
	return func(t *Terminal) {
		if fn != nil {
			t.size = fn
		}
	}
}

// WithLogger sets a custom logger for the Terminal.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Terminal) {
		t.logger = logger
	}
}

// NewTerminal creates a host for the terminal on fd, reading scroll events
// from in.
func NewTerminal(fd uintptr, in io.Reader, opts ...Option) *Terminal {
	t := &Terminal{
		in: in,
		size: func() (int, int, error) {
			return term.GetSize(fd)
		},
		cellWidth:  DefaultCellWidth,
		cellHeight: DefaultCellHeight,
		logger:     slog.Default().WithGroup("host.Terminal"),
		listeners:  make(map[int]func()),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) dimensions() (cols, rows int) {
	cols, rows, err := t.size()
	if err != nil || cols <= 0 || rows <= 0 {
		t.logger.Debug("Terminal size unavailable, using fallback", "error", err)
		return DefaultColumns, DefaultRows
	}
	return cols, rows
}

func (t *Terminal) Viewport() trigger.Viewport {
	cols, rows := t.dimensions()
	width := float64(cols) * t.cellWidth
	if t.width > 0 {
		width = t.width
	}
	return trigger.Viewport{
		Width:  width,
		Height: float64(rows) * t.cellHeight,
	}
}

func (t *Terminal) Bounds() trigger.Rect {
	_, rows := t.dimensions()
	return trigger.Rect{Top: 0, Bottom: float64(rows) * t.cellHeight}
}

func (t *Terminal) OnScroll(fn func()) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.listeners, id)
	}
}

func (t *Terminal) scroll() {
	t.mu.Lock()
	fns := make([]func(), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// String implements the supervisor.Runnable interface
func (t *Terminal) String() string {
	return "host.Terminal"
}

// Run implements the supervisor.Runnable interface. It turns every line read
// from the input into a scroll event until ctx is canceled or the input ends.
func (t *Terminal) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	t.cancelMu.Lock()
	t.runCancel = cancel
	t.cancelMu.Unlock()

	lines := make(chan struct{})
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			select {
			case lines <- struct{}{}:
			case <-runCtx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			t.logger.Warn("Failed to read input", "error", err)
		}
	}()

	for {
		select {
		case <-runCtx.Done():
			return nil
		case _, ok := <-lines:
			if !ok {
				t.logger.Debug("Input closed")
				<-runCtx.Done()
				return nil
			}
			t.logger.Debug("Scroll")
			t.scroll()
		}
	}
}

// Stop implements the supervisor.Runnable interface
func (t *Terminal) Stop() {
	t.cancelMu.Lock()
	defer t.cancelMu.Unlock()
	if t.runCancel != nil {
		t.runCancel()
	}
}
