// Package finitestate provides the state machine tracking the lifecycle of one
// playback instance.
//
// Lifecycle:
//  1. Idle - created, nothing appended yet
//  2. Playing - lines are being revealed
//  3. Completed - every line was revealed (terminal)
//
// Cancelled is reached from Idle or Playing and is also terminal.
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// State constants for the playback lifecycle
const (
	StatusIdle      = "Idle"
	StatusPlaying   = "Playing"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// PlaybackTransitions defines the valid state transitions for a playback.
var PlaybackTransitions = map[string][]string{
	StatusIdle:      {StatusPlaying, StatusCancelled},
	StatusPlaying:   {StatusCompleted, StatusCancelled},
	StatusCompleted: {}, // Completed is a terminal state
	StatusCancelled: {}, // Cancelled is a terminal state
}

// Machine defines the interface for the finite state machine that tracks a
// playback.
type Machine interface {
	// Transition attempts to transition the state machine to the specified state.
	Transition(state string) error

	// TransitionBool attempts to transition the state machine to the specified state.
	TransitionBool(state string) bool

	// GetState returns the current state of the state machine.
	GetState() string

	// GetStateChan returns a channel that emits the state machine's state whenever it changes.
	// The channel is closed when the provided context is canceled.
	GetStateChan(ctx context.Context) <-chan string
}

// New creates a playback state machine in the Idle state.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StatusIdle, PlaybackTransitions)
}

// IsTerminal reports whether no transition leaves state.
func IsTerminal(state string) bool {
	next, ok := PlaybackTransitions[state]
	return ok && len(next) == 0
}
