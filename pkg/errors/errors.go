package errors

import (
	stdErrors "errors"
	"fmt"
)

// Kind classifies a failure so callers can branch without matching messages.
type Kind string

const (
	// KindMissingField marks an absent or empty required configuration field.
	KindMissingField Kind = "missing_field"
	// KindMissingSource marks a source type whose matching url/path is absent.
	KindMissingSource Kind = "missing_source"
	// KindInvalidPackageName marks a package identifier outside the grammar.
	KindInvalidPackageName Kind = "invalid_package_name"
	// KindInvalidField marks any other syntactically invalid configuration value.
	KindInvalidField Kind = "invalid_field"
	// KindTemplateMissing marks an absent base template tree.
	KindTemplateMissing Kind = "template_missing"
	// KindSourceNotFound marks a local source directory that does not exist.
	KindSourceNotFound Kind = "source_not_found"
	// KindEntryPointMissing marks a local source without index.html.
	KindEntryPointMissing Kind = "entry_point_missing"
	// KindIO marks an unclassified filesystem failure.
	KindIO Kind = "io"
)

// ParseError represents a configuration decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration problems detected before any filesystem work.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(kind Kind, field, message string, err error) error {
	return &ValidationError{Kind: kind, Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GenerationError represents a failure while materializing a project on disk.
type GenerationError struct {
	Kind    Kind
	Path    string
	Message string
	Err     error
}

// NewGenerationError constructs a GenerationError.
func NewGenerationError(kind Kind, path, message string, err error) error {
	return &GenerationError{Kind: kind, Path: path, Message: message, Err: err}
}

// NewIOError wraps an unclassified filesystem failure.
func NewIOError(path, message string, err error) error {
	return &GenerationError{Kind: KindIO, Path: path, Message: message, Err: err}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("generation error: %s: %v", msg, e.Err)
	}
	return fmt.Sprintf("generation error: %s", msg)
}

// Unwrap exposes the root error.
func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf reports the Kind carried by err, or "" when err is not one of ours.
func KindOf(err error) Kind {
	var valErr *ValidationError
	if stdErrors.As(err, &valErr) {
		return valErr.Kind
	}

	var genErr *GenerationError
	if stdErrors.As(err, &genErr) {
		return genErr.Kind
	}

	return ""
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
