package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/atlanticdynamic/typecast/internal/config/errz"
)

// Default delays, matching the landing page terminal.
const (
	DefaultCommandCharDelay  = 20 * time.Millisecond
	DefaultStartCommandDelay = 1000 * time.Millisecond
	DefaultApplyCommandDelay = 250 * time.Millisecond
	DefaultOutputLineDelay   = 50 * time.Millisecond
)

// Timing holds the delays used during playback.
type Timing struct {
	// CommandCharDelay is the pause after each typed character.
	CommandCharDelay Duration
	// StartCommandDelay is the pause between showing an empty prompt and
	// typing the first character.
	StartCommandDelay Duration
	// ApplyCommandDelay is the pause between the last typed character and
	// removing the cursor.
	ApplyCommandDelay Duration
	// OutputLineDelay is the pause after each output line.
	OutputLineDelay Duration
}

// DefaultTiming returns the default delays.
func DefaultTiming() Timing {
	return Timing{
		CommandCharDelay:  FromDuration(DefaultCommandCharDelay),
		StartCommandDelay: FromDuration(DefaultStartCommandDelay),
		ApplyCommandDelay: FromDuration(DefaultApplyCommandDelay),
		OutputLineDelay:   FromDuration(DefaultOutputLineDelay),
	}
}

// Validate checks that no delay is negative.
func (t Timing) Validate() error {
	var errs []error
	for _, f := range t.fields() {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("%w: %s is %s", errz.ErrNegativeDelay, f.name, f.value))
		}
	}
	return errors.Join(errs...)
}

// CommandDuration returns how long a command of n characters takes to play.
func (t Timing) CommandDuration(n int) time.Duration {
	return t.StartCommandDelay.AsDuration() +
		time.Duration(n)*t.CommandCharDelay.AsDuration() +
		t.ApplyCommandDelay.AsDuration()
}

type timingField struct {
	name  string
	value Duration
	set   func(*Timing, Duration)
}

func (t Timing) fields() []timingField {
	return []timingField{
		{"command_char_delay", t.CommandCharDelay, func(t *Timing, d Duration) { t.CommandCharDelay = d }},
		{"start_command_delay", t.StartCommandDelay, func(t *Timing, d Duration) { t.StartCommandDelay = d }},
		{"apply_command_delay", t.ApplyCommandDelay, func(t *Timing, d Duration) { t.ApplyCommandDelay = d }},
		{"output_line_delay", t.OutputLineDelay, func(t *Timing, d Duration) { t.OutputLineDelay = d }},
	}
}

// With returns a copy of t with the named delay replaced. Names are the TOML
// keys, e.g. "command_char_delay".
func (t Timing) With(name string, d time.Duration) (Timing, error) {
	for _, f := range t.fields() {
		if f.name == name {
			f.set(&t, FromDuration(d))
			return t, nil
		}
	}
	return t, fmt.Errorf("%w: unknown delay %q", errz.ErrInvalidValue, name)
}
