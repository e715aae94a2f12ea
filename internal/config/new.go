package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/atlanticdynamic/typecast/internal/config/errz"
	"github.com/atlanticdynamic/typecast/internal/config/loader"
	"github.com/atlanticdynamic/typecast/internal/script"
)

func tomlLoader(data []byte) loader.Loader {
	return loader.NewTomlLoader(data)
}

// NewConfig loads configuration from a TOML file
func NewConfig(filePath string) (*Config, error) {
	ld, err := loader.NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

// NewConfigFromBytes loads configuration from TOML bytes
func NewConfigFromBytes(data []byte) (*Config, error) {
	ld, err := loader.NewLoaderFromBytes(data, tomlLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

// NewConfigFromReader loads configuration from an io.Reader providing TOML data
func NewConfigFromReader(reader io.Reader) (*Config, error) {
	ld, err := loader.NewLoaderFromReader(reader, tomlLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

func fromLoader(ld loader.Loader) (*Config, error) {
	doc, err := ld.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg, err := NewFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToConvertConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToValidateConfig, err)
	}
	return cfg, nil
}

// NewFromDocument converts a loaded document into a Config. Scene timings
// inherit every delay they do not set from the file-level timing, which in
// turn inherits from DefaultTiming. The result is not validated.
func NewFromDocument(doc *loader.Document) (*Config, error) {
	var errs []error

	timing, err := applyTiming(DefaultTiming(), doc.Timing)
	if err != nil {
		errs = append(errs, fmt.Errorf("timing: %w", err))
	}

	cfg := &Config{
		Version: doc.Version,
		Timing:  timing,
		Trigger: Trigger{MobileBreakpoint: DefaultMobileBreakpoint},
		Scenes:  make([]Scene, 0, len(doc.Scenes)),
	}
	if doc.Trigger.MobileBreakpoint != nil {
		cfg.Trigger.MobileBreakpoint = int(*doc.Trigger.MobileBreakpoint)
	}

	for i, st := range doc.Scenes {
		scene, err := newScene(timing, st)
		if err != nil {
			errs = append(errs, fmt.Errorf("scene at index %d: %w", i, err))
			continue
		}
		cfg.Scenes = append(cfg.Scenes, scene)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newScene(base Timing, st loader.SceneTable) (Scene, error) {
	var errs []error

	timing, err := applyTiming(base, st.Timing)
	if err != nil {
		errs = append(errs, fmt.Errorf("timing: %w", err))
	}

	lines := make([]script.Line, 0, len(st.Lines))
	for i, lt := range st.Lines {
		switch {
		case lt.Command != nil && lt.Output != nil:
			errs = append(errs, fmt.Errorf("line %d: %w", i, errz.ErrAmbiguousLine))
		case lt.Command != nil:
			lines = append(lines, script.Command{Text: *lt.Command})
		case lt.Output != nil:
			lines = append(lines, script.Output{Text: *lt.Output})
		default:
			errs = append(errs, fmt.Errorf("line %d: %w", i, errz.ErrEmptyLine))
		}
	}

	s, err := script.New(lines...)
	if err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return Scene{}, err
	}

	return Scene{
		Name:   st.Name,
		Path:   st.Path,
		Target: st.Target,
		Timing: timing,
		Script: s,
	}, nil
}

func applyTiming(base Timing, tt loader.TimingTable) (Timing, error) {
	var errs []error
	set := func(name string, raw *string) {
		if raw == nil {
			return
		}
		d, err := ParseDuration(*raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s = %q", errz.ErrInvalidDuration, name, *raw))
			return
		}
		next, err := base.With(name, d.AsDuration())
		if err != nil {
			errs = append(errs, err)
			return
		}
		base = next
	}

	set("command_char_delay", tt.CommandCharDelay)
	set("start_command_delay", tt.StartCommandDelay)
	set("apply_command_delay", tt.ApplyCommandDelay)
	set("output_line_delay", tt.OutputLineDelay)

	return base, errors.Join(errs...)
}
