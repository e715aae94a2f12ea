// Package stage mounts scenes the way a page mounts them: every page view gets
// a fresh Sequencer, and leaving the page cancels the one playing.
package stage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/atlanticdynamic/typecast/internal/clock"
	"github.com/atlanticdynamic/typecast/internal/config"
	"github.com/atlanticdynamic/typecast/internal/sequencer"
	"github.com/atlanticdynamic/typecast/internal/target"
	"github.com/atlanticdynamic/typecast/internal/trigger"
)

// Stage tracks the current page path and the Sequencer mounted for it.
type Stage struct {
	registry *target.Registry
	scenes   *config.Config
	host     trigger.Host
	policy   trigger.Policy
	clock    clock.Clock
	logger   *slog.Logger

	mu      sync.Mutex
	path    string
	visited bool
	current *sequencer.Sequencer
	armed   *trigger.Trigger

	runCancel context.CancelFunc
}

// New creates a Stage that mounts scenes into the targets of registry.
func New(registry *target.Registry, scenes []config.Scene, opts ...Option) *Stage {
	s := &Stage{
		registry: registry,
		scenes:   &config.Config{Scenes: scenes},
		policy:   trigger.DefaultPolicy(),
		logger:   slog.Default().WithGroup("stage.Stage"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Debug("Stage created", "scenes", len(scenes), "targets", registry.Len())
	return s
}

// Navigate moves the stage to path. A path equal to the previous one is
// ignored. Otherwise the current Sequencer is cancelled and, when a scene is
// bound to path, a fresh one is mounted and armed. The returned bool reports
// whether a new Sequencer was mounted.
func (s *Stage) Navigate(ctx context.Context, path string) (*sequencer.Sequencer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visited && path == s.path {
		s.logger.Debug("Path unchanged, ignoring navigation", "path", path)
		return s.current, false
	}
	s.visited = true
	s.path = path
	s.unmountLocked()

	scene, ok := s.scenes.SceneForPath(path)
	if !ok {
		s.logger.Debug("No scene bound to path", "path", path)
		return nil, false
	}

	seq, err := s.mountLocked(ctx, scene)
	if err != nil {
		s.logger.Error("Failed to mount scene", "scene", scene.Name, "error", err)
		return nil, false
	}
	return seq, true
}

// Mount cancels the current Sequencer and mounts the scene called name,
// regardless of the current path.
func (s *Stage) Mount(ctx context.Context, name string) (*sequencer.Sequencer, error) {
	scene, err := s.scenes.FindScene(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.unmountLocked()
	return s.mountLocked(ctx, scene)
}

// Current returns the mounted Sequencer, or nil.
func (s *Stage) Current() *sequencer.Sequencer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Path returns the last path navigated to.
func (s *Stage) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Close cancels the current Sequencer.
func (s *Stage) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unmountLocked()
}

func (s *Stage) unmountLocked() {
	if s.armed != nil {
		s.armed.Disarm()
		s.armed = nil
	}
	if s.current != nil {
		s.current.Cancel()
		<-s.current.Done()
		s.current = nil
	}
}

func (s *Stage) mountLocked(ctx context.Context, scene *config.Scene) (*sequencer.Sequencer, error) {
	tgt := s.registry.Get(scene.Target)
	if tgt != nil {
		tgt.Clear()
	}

	opts := []sequencer.Option{
		sequencer.WithTiming(scene.Timing),
		sequencer.WithLogHandler(s.logger.Handler()),
	}
	if s.clock != nil {
		opts = append(opts, sequencer.WithClock(s.clock))
	}

	seq, err := sequencer.New(scene.Script, tgt, opts...)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", scene.Name, err)
	}
	s.current = seq
	s.logger.Debug("Scene mounted", "scene", scene.Name, "target", scene.Target, "id", seq.ID())

	start := func() { seq.Play(ctx) }
	if s.host == nil {
		start()
		return seq, nil
	}
	s.armed = trigger.Arm(s.host, s.policy, start, trigger.WithLogger(s.logger))
	return seq, nil
}
