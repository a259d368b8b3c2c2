package xlsxlens

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/analysis"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/markup"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/snapshot"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Errors raised by the collaborators, re-exported for errors.Is checks.
var (
	ErrCredentialRequired    = analysis.ErrCredentialRequired
	ErrRasterizerUnavailable = snapshot.ErrUnavailable
	ErrMalformedDocument     = markup.ErrMalformedDocument
)

// ConfigError is raised before any work starts when an option or credential is unusable.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error (%s): %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SourceError represents a missing, unreadable or corrupt input file.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ExtractionError represents an error while parsing a sheet.
type ExtractionError struct {
	SheetName string
	Component string // "values", "rich"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// CollaboratorError represents a failure of an external collaborator
// (rasterizer or model). Hint, when present, suggests a remediation.
type CollaboratorError struct {
	Collaborator string
	Hint         string
	Err          error
}

func (e *CollaboratorError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s failed: %v", e.Collaborator, e.Err)
	}
	return fmt.Sprintf("%s failed: %v (%s)", e.Collaborator, e.Err, e.Hint)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
