package stage

import (
	"log/slog"

	"github.com/atlanticdynamic/typecast/internal/clock"
	"github.com/atlanticdynamic/typecast/internal/trigger"
)

type Option func(*Stage)

// WithLogger sets a custom logger for the Stage.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stage) {
		s.logger = logger
	}
}

// WithHost arms every mounted Sequencer with a trigger on host. Without a
// host, playback starts as soon as a scene is mounted.
func WithHost(host trigger.Host) Option {
	return func(s *Stage) {
		s.host = host
	}
}

// WithPolicy sets the trigger policy used with the host.
func WithPolicy(policy trigger.Policy) Option {
	return func(s *Stage) {
		s.policy = policy
	}
}

// WithClock sets the clock handed to every Sequencer.
func WithClock(clk clock.Clock) Option {
	return func(s *Stage) {
		s.clock = clk
	}
}
