// Package writers opens log destinations named on the command line.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

// CreateWriter opens the log destination named by output. Logs default to
// stderr so they never mix with playback on stdout.
// Supported formats:
//   - "stderr" or "" - writes to os.Stderr
//   - "stdout" - writes to os.Stdout
//   - "file:///path/to/file" - appends to a file, creating directories
//   - "/path/to/file" or "./file.log" - same as above
//
// Closing the returned writer is a no-op for the standard streams.
func CreateWriter(output string) (io.WriteCloser, error) {
	switch ParseWriterType(output) {
	case WriterTypeStderr:
		return nopCloser{os.Stderr}, nil
	case WriterTypeStdout:
		return nopCloser{os.Stdout}, nil
	}

	switch {
	case strings.HasPrefix(output, "file://"):
		return createFileWriter(strings.TrimPrefix(output, "file://"))
	case isFilePath(output):
		return createFileWriter(output)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", output)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// isFilePath determines if the string represents a local file path
func isFilePath(path string) bool {
	if strings.Contains(path, "://") {
		return false
	}
	return strings.Contains(path, "/") ||
		strings.Contains(path, "\\") ||
		strings.HasSuffix(path, ".log")
}

// createFileWriter creates a file writer, ensuring the directory exists
func createFileWriter(filePath string) (io.WriteCloser, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}

// ParseWriterType determines the writer type from an output string
func ParseWriterType(output string) WriterType {
	switch output {
	case "", "stderr":
		return WriterTypeStderr
	case "stdout":
		return WriterTypeStdout
	default:
		return WriterTypeFile
	}
}
