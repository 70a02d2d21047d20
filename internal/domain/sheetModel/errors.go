package sheetModel

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates the declared filename is not a supported
// spreadsheet type. Checked before any extraction is attempted.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrUnreadableFile indicates a corrupted, encrypted or sheetless container.
var ErrUnreadableFile = errors.New("unreadable spreadsheet file")

const (
	FailureUnsupportedFormat = "UnsupportedFormat"
	FailureUnreadableFile    = "UnreadableFile"
)

// FileError is a per-file failure surfaced in the Summary Document. It never
// crosses the per-file boundary as a Go error, workbooks fail independently.
type FileError struct {
	FileName string
	Kind     string
	Reason   string
}

func (e *FileError) Marker() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.FileName, e.Reason)
}

// ConfigError means the deployment is misconfigured. Unlike file errors it is
// fatal for the whole request.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid summarizer configuration: %s must be positive, got %d", e.Field, e.Value)
}
