package loader

import (
	"bytes"
	"fmt"
	"os"

	"github.com/atlanticdynamic/typecast/internal/interpolation"
	gotoml "github.com/pelletier/go-toml/v2"
)

// VersionLatest is the only scene file version understood by this loader.
const VersionLatest = "v1"

// TomlLoader implements the Loader interface for TOML files.
type TomlLoader struct {
	document *Document
	source   []byte
}

// NewTomlLoader creates a new TOML configuration loader
func NewTomlLoader(source []byte) *TomlLoader {
	return &TomlLoader{
		source: source,
	}
}

// Load parses the TOML source. Unknown keys are rejected so that typos such as
// "comand" fail loudly instead of silently dropping a line.
func (l *TomlLoader) Load() (*Document, error) {
	if len(l.source) == 0 {
		return nil, ErrNoSourceProvided
	}

	// First, extract just the version to check compatibility
	var versionCheck struct {
		Version string `toml:"version"`
	}
	if err := gotoml.Unmarshal(l.source, &versionCheck); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseToml, err)
	}
	if versionCheck.Version == "" {
		versionCheck.Version = VersionLatest
	}
	if versionCheck.Version != VersionLatest {
		return nil, fmt.Errorf(
			"version %s is not supported: %w",
			versionCheck.Version,
			ErrUnsupportedConfigVer,
		)
	}

	doc := &Document{}
	dec := gotoml.NewDecoder(bytes.NewReader(l.source)).DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseToml, err)
	}
	if doc.Version == "" {
		doc.Version = VersionLatest
	}
	if err := interpolation.InterpolateStruct(doc, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterpolation, err)
	}

	l.document = doc
	return doc, nil
}

// GetDocument returns the last successfully loaded document
func (l *TomlLoader) GetDocument() *Document {
	return l.document
}
