package stage

import (
	"context"

	"github.com/robbyt/go-supervisor/supervisor"
)

var _ supervisor.Runnable = (*Stage)(nil)

// String implements the supervisor.Runnable interface
func (s *Stage) String() string {
	return "stage.Stage"
}

// Run implements the supervisor.Runnable interface. It keeps the stage alive
// until ctx is canceled or Stop is called, then cancels the mounted Sequencer.
func (s *Stage) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.runCancel = cancel
	s.mu.Unlock()

	<-runCtx.Done()
	s.logger.Debug("Stage stopping")
	s.Close()
	return nil
}

// Stop implements the supervisor.Runnable interface
func (s *Stage) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runCancel != nil {
		s.runCancel()
	}
}
