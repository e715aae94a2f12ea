// Package config holds the domain model of a scene file: the timing used by
// playback, the trigger policy and the named scenes with their scripts.
package config

import (
	"fmt"

	"github.com/atlanticdynamic/typecast/internal/config/errz"
	"github.com/atlanticdynamic/typecast/internal/config/loader"
	"github.com/atlanticdynamic/typecast/internal/script"
)

const (
	VersionLatest  = loader.VersionLatest
	VersionUnknown = "unknown"
)

// DefaultMobileBreakpoint is the viewport width, in logical pixels, below which
// playback waits for the target to be scrolled into view.
const DefaultMobileBreakpoint = 768

// Config is the validated content of a scene file.
type Config struct {
	Version string
	Timing  Timing
	Trigger Trigger
	Scenes  []Scene
}

// Trigger configures when playback starts.
type Trigger struct {
	MobileBreakpoint int
}

// Scene is a script bound to a render target and, optionally, a page path.
type Scene struct {
	Name   string
	Path   string
	Target string
	Timing Timing
	Script script.Script
}

// FindScene returns the scene with the given name.
func (c *Config) FindScene(name string) (*Scene, error) {
	for i := range c.Scenes {
		if c.Scenes[i].Name == name {
			return &c.Scenes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", errz.ErrSceneNotFound, name)
}

// SceneForPath returns the scene bound to a page path, if any.
func (c *Config) SceneForPath(path string) (*Scene, bool) {
	for i := range c.Scenes {
		if c.Scenes[i].Path != "" && c.Scenes[i].Path == path {
			return &c.Scenes[i], true
		}
	}
	return nil, false
}

// DefaultScene returns the first scene, or nil when there are none.
func (c *Config) DefaultScene() *Scene {
	if len(c.Scenes) == 0 {
		return nil
	}
	return &c.Scenes[0]
}
