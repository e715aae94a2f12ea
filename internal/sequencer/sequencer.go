// Package sequencer replays a script into a render target: commands are typed
// one character at a time behind a cursor, output lines appear one at a time,
// and every step is separated by the configured delays.
//
// A Sequencer plays at most once. Calling Play again while it is playing or
// after it finished does nothing, and a Sequencer without a mounted target
// never plays at all: it is created Cancelled with its done channel closed.
package sequencer

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/atlanticdynamic/typecast/internal/clock"
	"github.com/atlanticdynamic/typecast/internal/config"
	"github.com/atlanticdynamic/typecast/internal/markup"
	"github.com/atlanticdynamic/typecast/internal/script"
	"github.com/atlanticdynamic/typecast/internal/sequencer/finitestate"
	"github.com/atlanticdynamic/typecast/internal/target"
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"
	"github.com/robbyt/go-supervisor/supervisor"
)

var _ supervisor.Runnable = (*Sequencer)(nil)

// Sequencer owns the playback of one script into one target.
type Sequencer struct {
	id      uuid.UUID
	script  script.Script
	target  target.Target
	mounted bool
	timing  config.Timing
	clock   clock.Clock

	logger       *slog.Logger
	logCollector *loglater.LogCollector
	fsm          finitestate.Machine

	mu         sync.Mutex
	runCancel  context.CancelFunc
	started    bool
	finished   bool
	startedAt  time.Time
	finishedAt time.Time

	done      chan struct{}
	closeOnce sync.Once

	line atomic.Int64
	char atomic.Int64
}

// New creates a Sequencer bound to tgt. A nil tgt is allowed and yields a
// Cancelled Sequencer whose Play does nothing.
func New(s script.Script, tgt target.Target, opts ...Option) (*Sequencer, error) {
	seq := &Sequencer{
		id:      uuid.Must(uuid.NewV6()),
		script:  s,
		target:  tgt,
		mounted: isMounted(tgt),
		timing:  config.DefaultTiming(),
		clock:   clock.Real{},
		logger:  slog.Default().WithGroup("sequencer.Sequencer"),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(seq)
	}

	if err := seq.timing.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timing: %w", err)
	}

	// Keep a history of this instance's log records so they can be replayed
	// after playback, e.g. by a dry run.
	seq.logCollector = loglater.NewLogCollector(seq.logger.Handler())
	seq.logger = slog.New(seq.logCollector).With("id", seq.id)

	machine, err := finitestate.New(seq.logger.WithGroup("fsm").Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	seq.fsm = machine

	if !seq.mounted {
		if err := seq.fsm.Transition(finitestate.StatusCancelled); err != nil {
			return nil, fmt.Errorf("failed to cancel unmounted playback: %w", err)
		}
		seq.closeDone()
	}
	return seq, nil
}

func isMounted(tgt target.Target) bool {
	if tgt == nil {
		return false
	}
	v := reflect.ValueOf(tgt)
	return v.Kind() != reflect.Pointer || !v.IsNil()
}

// ID returns the unique id of this instance.
func (s *Sequencer) ID() uuid.UUID {
	return s.id
}

// String implements the supervisor.Runnable interface
func (s *Sequencer) String() string {
	return "sequencer.Sequencer"
}

// Play starts playback on its own goroutine and returns a channel closed when
// playback ends. Playback stops early when ctx is canceled.
func (s *Sequencer) Play(ctx context.Context) <-chan struct{} {
	if !s.mounted {
		s.logger.Debug("Render target not mounted, skipping playback")
		return s.done
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fsm.TransitionBool(finitestate.StatusPlaying) {
		s.logger.Debug("Ignoring play request", "state", s.fsm.GetState())
		return s.done
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.runCancel = cancel
	s.started = true
	s.startedAt = s.clock.Now()

	go s.run(runCtx, cancel)
	return s.done
}

// Done returns a channel closed once playback has ended or can no longer
// happen.
func (s *Sequencer) Done() <-chan struct{} {
	return s.done
}

// Cancel halts playback and leaves the target as it is. Cancelling an idle
// Sequencer prevents it from ever playing.
func (s *Sequencer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if finitestate.IsTerminal(s.fsm.GetState()) {
		return
	}
	if s.runCancel != nil {
		s.runCancel()
		return
	}
	if s.fsm.TransitionBool(finitestate.StatusCancelled) {
		s.logger.Debug("Cancelled before playback started")
		s.closeDone()
	}
}

// Run implements the supervisor.Runnable interface. It plays the script and
// returns once playback has ended.
func (s *Sequencer) Run(ctx context.Context) error {
	done := s.Play(ctx)
	select {
	case <-done:
	case <-ctx.Done():
		s.Cancel()
		<-done
	}
	return nil
}

// Stop implements the supervisor.Runnable interface
func (s *Sequencer) Stop() {
	s.logger.Debug("Stopping Sequencer")
	s.Cancel()
}

// Position returns the index of the line being revealed and the number of
// characters of it typed so far. After completion the line index equals the
// script length.
func (s *Sequencer) Position() (line, char int) {
	return int(s.line.Load()), int(s.char.Load())
}

// Elapsed returns the clock time spent playing so far.
func (s *Sequencer) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case !s.started:
		return 0
	case !s.finished:
		return s.clock.Now().Sub(s.startedAt)
	default:
		return s.finishedAt.Sub(s.startedAt)
	}
}

// PlaybackLogs replays the log records of this instance to handler.
func (s *Sequencer) PlaybackLogs(handler slog.Handler) error {
	return s.logCollector.PlayLogs(handler)
}

func (s *Sequencer) closeDone() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *Sequencer) run(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()
	s.logger.Debug("Playback started", "lines", s.script.Len())

	err := s.playLines(ctx)

	s.mu.Lock()
	s.finished = true
	s.finishedAt = s.clock.Now()
	elapsed := s.finishedAt.Sub(s.startedAt)
	s.mu.Unlock()

	line, char := s.Position()
	if err != nil {
		if stateErr := s.fsm.Transition(finitestate.StatusCancelled); stateErr != nil {
			s.logger.Error("Failed to transition to cancelled state", "error", stateErr)
		}
		s.logger.Debug("Playback cancelled", "line", line, "char", char, "reason", err)
	} else {
		if stateErr := s.fsm.Transition(finitestate.StatusCompleted); stateErr != nil {
			s.logger.Error("Failed to transition to completed state", "error", stateErr)
		}
		s.logger.Debug("Playback completed", "lines", line, "elapsed", elapsed)
	}
	s.closeDone()
}

func (s *Sequencer) playLines(ctx context.Context) error {
	for i, line := range s.script.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.line.Store(int64(i))
		s.char.Store(0)

		var err error
		switch l := line.(type) {
		case script.Command:
			err = s.typeCommand(ctx, l)
		case script.Output:
			err = s.printOutput(ctx, l)
		}
		if err != nil {
			return err
		}
	}
	s.line.Store(int64(s.script.Len()))
	s.char.Store(0)
	return nil
}

func (s *Sequencer) typeCommand(ctx context.Context, cmd script.Command) error {
	slot := s.target.OpenCommand()

	if err := s.clock.Sleep(ctx, s.timing.StartCommandDelay.AsDuration()); err != nil {
		return err
	}

	for _, r := range cmd.Text {
		slot.Type(string(r))
		s.char.Add(1)
		if err := s.clock.Sleep(ctx, s.timing.CommandCharDelay.AsDuration()); err != nil {
			return err
		}
	}

	if err := s.clock.Sleep(ctx, s.timing.ApplyCommandDelay.AsDuration()); err != nil {
		return err
	}

	slot.Apply()
	s.target.Append(markup.LineBreak)
	return nil
}

func (s *Sequencer) printOutput(ctx context.Context, out script.Output) error {
	s.target.Append(markup.Output(out.Text))
	return s.clock.Sleep(ctx, s.timing.OutputLineDelay.AsDuration())
}
