package loader

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/typecast/internal/config/errz"
)

// Loader-specific errors
var (
	ErrFailedToLoadConfig   = errz.ErrFailedToLoadConfig
	ErrNoSourceProvided     = errors.New("no source provided to loader")
	ErrFileNotFound         = errors.New("config file does not exist")
	ErrUnsupportedExtension = errors.New("unsupported config extension")
	ErrParseToml            = errors.New("failed to parse TOML")
	ErrInterpolation        = errors.New("failed to expand environment variables")
	ErrUnsupportedConfigVer = errz.ErrUnsupportedConfigVer
)

// FormatFileError creates an error with file path context
func FormatFileError(err error, path string) error {
	return fmt.Errorf("%w: %s", err, path)
}
