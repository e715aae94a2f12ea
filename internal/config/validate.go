package config

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/typecast/internal/config/errz"
)

// Validate performs comprehensive validation of the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = VersionUnknown
	}

	switch c.Version {
	case VersionLatest:
		// Supported version
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, c.Version)
	}

	errs := []error{}

	if err := c.Timing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("timing: %w", err))
	}

	if c.Trigger.MobileBreakpoint <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", errz.ErrInvalidBreakpoint, c.Trigger.MobileBreakpoint))
	}

	if len(c.Scenes) == 0 {
		errs = append(errs, errz.ErrNoScenes)
	}

	names := make(map[string]bool, len(c.Scenes))
	paths := make(map[string]string, len(c.Scenes))
	for i, scene := range c.Scenes {
		if scene.Name == "" {
			errs = append(errs, fmt.Errorf("scene at index %d: %w", i, errz.ErrEmptyName))
		} else if names[scene.Name] {
			errs = append(errs, fmt.Errorf("%w: scene '%s'", errz.ErrDuplicateName, scene.Name))
		} else {
			names[scene.Name] = true
		}

		if scene.Path != "" {
			if other, ok := paths[scene.Path]; ok {
				errs = append(errs, fmt.Errorf(
					"%w: '%s' is bound to scenes '%s' and '%s'",
					errz.ErrDuplicatePath, scene.Path, other, scene.Name,
				))
			} else {
				paths[scene.Path] = scene.Name
			}
		}

		if err := scene.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("scene '%s': %w", scene.Name, err))
		}
	}

	return errors.Join(errs...)
}

// Validate checks a single scene.
func (s *Scene) Validate() error {
	errs := []error{}
	if s.Target == "" {
		errs = append(errs, fmt.Errorf("%w: target", errz.ErrMissingRequiredField))
	}
	if s.Script.Len() == 0 {
		errs = append(errs, errz.ErrEmptyScript)
	}
	if err := s.Timing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("timing: %w", err))
	}
	return errors.Join(errs...)
}
