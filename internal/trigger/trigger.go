// Package trigger decides when playback starts: immediately, or once the
// render target has been scrolled into view on narrow or scrolled-away
// viewports. A deferred trigger fires at most once.
package trigger

import (
	"log/slog"
	"sync"
)

// DefaultBreakpoint is the viewport width, in logical pixels, under which a
// viewport is treated as mobile.
const DefaultBreakpoint = 768

// Viewport is the visible area of the host, in logical pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Rect is the vertical extent of the target relative to the top of the
// viewport, in logical pixels.
type Rect struct {
	Top    float64
	Bottom float64
}

// PartiallyVisible reports whether any part of r is inside v: the top edge is
// above the viewport bottom and the bottom edge is not above the viewport top.
func (r Rect) PartiallyVisible(v Viewport) bool {
	return r.Top < v.Height && r.Bottom >= 0
}

// Mode is the outcome of a trigger decision.
type Mode int

const (
	Immediate Mode = iota
	Deferred
)

func (m Mode) String() string {
	switch m {
	case Immediate:
		return "immediate"
	case Deferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// Policy holds the rules for deciding between immediate and deferred start.
type Policy struct {
	Breakpoint float64
}

// DefaultPolicy returns the policy with the default breakpoint.
func DefaultPolicy() Policy {
	return Policy{Breakpoint: DefaultBreakpoint}
}

// Decide returns Deferred when the viewport is narrower than the breakpoint or
// the target is not yet visible, and Immediate otherwise.
func (p Policy) Decide(v Viewport, bounds Rect) Mode {
	if v.Width < p.Breakpoint || !bounds.PartiallyVisible(v) {
		return Deferred
	}
	return Immediate
}

// Host is the surface displaying the target.
type Host interface {
	// Viewport returns the current viewport size.
	Viewport() Viewport

	// Bounds returns the current position of the target.
	Bounds() Rect

	// OnScroll registers fn to be called after every scroll and returns a
	// function removing the registration. Calling remove from inside fn must
	// be allowed.
	OnScroll(fn func()) (remove func())
}

// Trigger is an armed start condition.
type Trigger struct {
	mu       sync.Mutex
	once     sync.Once
	start    func()
	remove   func()
	fired    bool
	disarmed bool
	mode     Mode
	logger   *slog.Logger
}

// Option configures a Trigger.
type Option func(*Trigger)

// WithLogger sets a custom logger for the Trigger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Trigger) {
		t.logger = logger
	}
}

// Arm evaluates policy against host and either calls start right away or
// waits for the first scroll that brings the target into view. start is
// called at most once.
func Arm(host Host, policy Policy, start func(), opts ...Option) *Trigger {
	t := &Trigger{
		start:  start,
		logger: slog.Default().WithGroup("trigger.Trigger"),
	}
	for _, opt := range opts {
		opt(t)
	}

	viewport := host.Viewport()
	bounds := host.Bounds()
	t.mode = policy.Decide(viewport, bounds)
	t.logger.Debug("Trigger armed",
		"mode", t.mode,
		"viewportWidth", viewport.Width,
		"breakpoint", policy.Breakpoint,
	)

	if t.mode == Immediate {
		t.fire()
		return t
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.remove = host.OnScroll(func() {
		if !host.Bounds().PartiallyVisible(host.Viewport()) {
			return
		}
		t.fire()
	})
	return t
}

func (t *Trigger) fire() {
	t.once.Do(func() {
		t.mu.Lock()
		if t.disarmed {
			t.mu.Unlock()
			return
		}
		t.fired = true
		remove := t.remove
		t.remove = nil
		t.mu.Unlock()

		if remove != nil {
			remove()
		}
		t.logger.Debug("Trigger fired", "mode", t.mode)
		t.start()
	})
}

// Mode returns the decision taken when the trigger was armed.
func (t *Trigger) Mode() Mode {
	return t.mode
}

// Fired reports whether start has been called.
func (t *Trigger) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Disarm removes a pending scroll listener. start will not be called after
// Disarm returns.
func (t *Trigger) Disarm() {
	t.mu.Lock()
	t.disarmed = true
	remove := t.remove
	t.remove = nil
	t.mu.Unlock()

	if remove != nil {
		remove()
	}
}
