package sequencer

import (
	"context"

	"github.com/atlanticdynamic/typecast/internal/sequencer/finitestate"
	"github.com/robbyt/go-supervisor/supervisor"
)

var _ supervisor.Stateable = (*Sequencer)(nil)

func (s *Sequencer) GetState() string {
	return s.fsm.GetState()
}

func (s *Sequencer) GetStateChan(ctx context.Context) <-chan string {
	return s.fsm.GetStateChan(ctx)
}

func (s *Sequencer) IsRunning() bool {
	return s.fsm.GetState() == finitestate.StatusPlaying
}

// State returns the current playback state.
func (s *Sequencer) State() string {
	return s.GetState()
}
