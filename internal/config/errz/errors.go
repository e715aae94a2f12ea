// Package errz provides shared error definitions for the config package and its subpackages.
package errz

import "errors"

// Top-level error categories
var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToConvertConfig  = errors.New("failed to convert config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrUnsupportedConfigVer   = errors.New("unsupported config version")
)

// Validation specific errors
var (
	ErrDuplicateName        = errors.New("duplicate name")
	ErrDuplicatePath        = errors.New("duplicate path")
	ErrEmptyName            = errors.New("empty name")
	ErrInvalidValue         = errors.New("invalid value")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrNoScenes             = errors.New("no scenes defined")
)

// Timing specific errors
var (
	ErrNegativeDelay   = errors.New("negative delay")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Script specific errors
var (
	ErrEmptyScript       = errors.New("empty script")
	ErrAmbiguousLine     = errors.New("line sets both command and output")
	ErrEmptyLine         = errors.New("line sets neither command nor output")
	ErrInvalidBreakpoint = errors.New("invalid mobile breakpoint")
)

// Reference specific errors
var (
	ErrSceneNotFound = errors.New("scene not found")
)
