// Package clock provides the delay primitive used by playback. Delays are
// scheduled on timers and never spin, and every wait honours its context.
package clock

import (
	"context"
	"sync"
	"time"
)

// Clock tells time and waits.
type Clock interface {
	// Now returns the clock's current time.
	Now() time.Time

	// Sleep waits for d or until ctx is done, whichever is first. It returns
	// ctx.Err() when the wait was cut short.
	Sleep(ctx context.Context, d time.Duration) error
}

// Real is a Clock backed by the runtime timers.
type Real struct{}

var _ Clock = Real{}

func (Real) Now() time.Time { return time.Now() }

func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Virtual is a Clock whose time only moves when something sleeps on it. Sleep
// returns immediately after advancing the clock, which makes playback
// deterministic and instant in tests and recordings.
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

var _ Clock = (*Virtual)(nil)

// NewVirtual creates a virtual clock starting at start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *Virtual) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if d > 0 {
		v.now = v.now.Add(d)
	}
	v.sleeps = append(v.sleeps, d)
	return nil
}

// Sleeps returns every duration slept so far, in order.
func (v *Virtual) Sleeps() []time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]time.Duration, len(v.sleeps))
	copy(out, v.sleeps)
	return out
}
