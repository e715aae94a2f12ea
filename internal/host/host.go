// Package host provides the surfaces a trigger watches: a fixed geometry for
// recordings and non-interactive output, and the user's terminal.
package host

import "github.com/atlanticdynamic/typecast/internal/trigger"

var _ trigger.Host = Static{}

// Static is a host whose geometry never changes and which never scrolls.
type Static struct {
	View   trigger.Viewport
	Target trigger.Rect
}

// NewStatic returns a Static host with the target covering the whole viewport.
func NewStatic(width, height float64) Static {
	return Static{
		View:   trigger.Viewport{Width: width, Height: height},
		Target: trigger.Rect{Top: 0, Bottom: height},
	}
}

func (s Static) Viewport() trigger.Viewport { return s.View }

func (s Static) Bounds() trigger.Rect { return s.Target }

func (s Static) OnScroll(func()) func() { return func() {} }
