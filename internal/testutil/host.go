package testutil

import (
	"sync"

	"github.com/atlanticdynamic/typecast/internal/trigger"
)

// FakeHost is a trigger.Host whose geometry is set by the test. Scroll moves
// the target and notifies every registered listener.
type FakeHost struct {
	mu        sync.Mutex
	viewport  trigger.Viewport
	bounds    trigger.Rect
	listeners map[int]func()
	nextID    int
	added     int
	removed   int
}

// NewFakeHost returns a host with the given viewport and target bounds.
func NewFakeHost(viewport trigger.Viewport, bounds trigger.Rect) *FakeHost {
	return &FakeHost{
		viewport:  viewport,
		bounds:    bounds,
		listeners: make(map[int]func()),
	}
}

func (h *FakeHost) Viewport() trigger.Viewport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewport
}

func (h *FakeHost) Bounds() trigger.Rect {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bounds
}

func (h *FakeHost) OnScroll(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.added++

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.listeners, id)
			h.removed++
		})
	}
}

// ScrollTo moves the target to bounds and dispatches a scroll event.
func (h *FakeHost) ScrollTo(bounds trigger.Rect) {
	h.mu.Lock()
	h.bounds = bounds
	h.mu.Unlock()
	h.Scroll()
}

// Scroll dispatches a scroll event without moving the target.
func (h *FakeHost) Scroll() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Listeners returns the number of registered scroll listeners.
func (h *FakeHost) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// Removed returns how many listeners have been removed.
func (h *FakeHost) Removed() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.removed
}
