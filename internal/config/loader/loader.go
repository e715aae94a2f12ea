// Package loader reads scene files from disk, bytes or readers into a Document
// that mirrors the file layout. Conversion into domain types happens in the
// config package.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LoaderFunc func([]byte) Loader

// Loader handles loading configuration from various sources
type Loader interface {
	// Load parses the source and returns the raw document
	Load() (*Document, error)
	// GetDocument returns the last successfully loaded document
	GetDocument() *Document
}

// NewLoaderFromBytes creates a new Loader with the provided bytes
func NewLoaderFromBytes(data []byte, lodFunc LoaderFunc) (Loader, error) {
	if len(data) == 0 {
		return nil, ErrNoSourceProvided
	}
	return lodFunc(data), nil
}

// NewLoaderFromReader creates a new Loader from an io.Reader
func NewLoaderFromReader(reader io.Reader, lodFunc LoaderFunc) (Loader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config data from reader: %w", err)
	}
	return NewLoaderFromBytes(data, lodFunc)
}

// NewLoaderFromFilePath creates a new Loader from a file path
func NewLoaderFromFilePath(filePath string) (Loader, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, FormatFileError(ErrFileNotFound, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}

	ext := filepath.Ext(filePath)
	switch ext {
	case ".toml":
		return NewTomlLoader(data), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}
}
