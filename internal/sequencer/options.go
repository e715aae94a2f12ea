package sequencer

import (
	"log/slog"

	"github.com/atlanticdynamic/typecast/internal/clock"
	"github.com/atlanticdynamic/typecast/internal/config"
)

type Option func(*Sequencer)

// WithLogger sets a custom logger for the Sequencer instance.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) {
		s.logger = logger
	}
}

// WithLogHandler sets a custom log handler for the Sequencer instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *Sequencer) {
		s.logger = slog.New(handler)
	}
}

// WithTiming sets the delays used during playback.
func WithTiming(timing config.Timing) Option {
	return func(s *Sequencer) {
		s.timing = timing
	}
}

// WithClock replaces the real clock, typically with a clock.Virtual.
func WithClock(clk clock.Clock) Option {
	return func(s *Sequencer) {
		if clk != nil {
			s.clock = clk
		}
	}
}
