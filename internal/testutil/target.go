package testutil

import (
	"sync"

	"github.com/atlanticdynamic/typecast/internal/target"
)

// RecordingTarget wraps a target.Buffer and records every call made on it.
type RecordingTarget struct {
	*target.Buffer

	mu    sync.Mutex
	calls []string
	typed []string
}

// NewRecordingTarget returns an empty recording target.
func NewRecordingTarget() *RecordingTarget {
	return &RecordingTarget{Buffer: target.NewBuffer()}
}

func (r *RecordingTarget) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *RecordingTarget) Append(markup string) {
	r.record("append")
	r.Buffer.Append(markup)
}

func (r *RecordingTarget) Clear() {
	r.record("clear")
	r.Buffer.Clear()
}

func (r *RecordingTarget) OpenCommand() target.CommandSlot {
	r.record("open")
	return &recordingSlot{CommandSlot: r.Buffer.OpenCommand(), parent: r}
}

// Calls returns the ordered call names: open, type, apply, append, clear.
func (r *RecordingTarget) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Typed returns the text passed to every Type call, in order.
func (r *RecordingTarget) Typed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.typed...)
}

type recordingSlot struct {
	target.CommandSlot
	parent *RecordingTarget
}

func (s *recordingSlot) Type(text string) {
	s.parent.mu.Lock()
	s.parent.calls = append(s.parent.calls, "type")
	s.parent.typed = append(s.parent.typed, text)
	s.parent.mu.Unlock()
	s.CommandSlot.Type(text)
}

func (s *recordingSlot) Apply() {
	s.parent.record("apply")
	s.CommandSlot.Apply()
}
