// Package errors provides the error types shared by the scriptref packages.
//
// Reference parsing failures form a closed set of four kinds, carried by
// ParseError. Every typed error unwraps to a package sentinel so callers can
// branch with errors.Is and extract payloads with errors.As.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput indicates a reference string that is empty or whitespace-only
	ErrEmptyInput = errors.New("empty reference")
	// ErrInvalidFormat indicates text that matches no reference grammar
	ErrInvalidFormat = errors.New("invalid reference format")
	// ErrBookNotFound indicates a book token that matches no known book
	ErrBookNotFound = errors.New("book not found")
	// ErrInvalidChapter indicates a chapter outside the book's chapter range
	ErrInvalidChapter = errors.New("invalid chapter")
)

// Kind identifies which of the four reference parse failures occurred.
type Kind int

// Parse failure kinds.
const (
	KindEmptyInput Kind = iota + 1
	KindInvalidFormat
	KindBookNotFound
	KindInvalidChapter
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "emptyInput"
	case KindInvalidFormat:
		return "invalidFormat"
	case KindBookNotFound:
		return "bookNotFound"
	case KindInvalidChapter:
		return "invalidChapter"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError reports why a reference string could not be parsed.
// Only the fields relevant to Kind are populated.
type ParseError struct {
	Kind    Kind
	Input   string // InvalidFormat: the offending text
	Book    string // BookNotFound: raw token; InvalidChapter: canonical book name
	Chapter int    // InvalidChapter
	Max     int    // InvalidChapter: the book's chapter count
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "empty reference"
	case KindInvalidFormat:
		return fmt.Sprintf("invalid reference format: %q", e.Input)
	case KindBookNotFound:
		return fmt.Sprintf("book not found: %q", e.Book)
	case KindInvalidChapter:
		return fmt.Sprintf("invalid chapter %d for %s (1-%d)", e.Chapter, e.Book, e.Max)
	default:
		return "reference parse error"
	}
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindEmptyInput:
		return ErrEmptyInput
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindBookNotFound:
		return ErrBookNotFound
	case KindInvalidChapter:
		return ErrInvalidChapter
	default:
		return ErrInvalidInput
	}
}

// EmptyInput creates a ParseError for blank input.
func EmptyInput() *ParseError {
	return &ParseError{Kind: KindEmptyInput}
}

// InvalidFormat creates a ParseError for text matching no reference grammar.
func InvalidFormat(input string) *ParseError {
	return &ParseError{Kind: KindInvalidFormat, Input: input}
}

// BookNotFound creates a ParseError for an unresolvable book token.
func BookNotFound(name string) *ParseError {
	return &ParseError{Kind: KindBookNotFound, Book: name}
}

// InvalidChapter creates a ParseError for a chapter outside 1..max.
func InvalidChapter(book string, chapter, max int) *ParseError {
	return &ParseError{Kind: KindInvalidChapter, Book: book, Chapter: chapter, Max: max}
}

// KindOf returns the parse failure kind carried by err, or 0 if err is not a ParseError.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "open", "query")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewValidation creates a ValidationError
func NewValidation(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target any) bool {
	return errors.As(err, target)
}
