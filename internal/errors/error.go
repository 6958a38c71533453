package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryArgument  Category = "argument"
	CategoryKind      Category = "kind"
	CategoryOperation Category = "operation"
	CategoryDocument  Category = "document"
	CategoryConfig    Category = "config"
	CategoryPublish   Category = "publish"
	CategoryCLI       Category = "cli"
)

// Sentinels matched by errors.Is against any *Error of the same category.
var (
	ErrInvalidArgument      = stderrors.New("invalid argument")
	ErrUnknownKind          = stderrors.New("unknown element kind")
	ErrUnsupportedOperation = stderrors.New("unsupported operation")
	ErrDocument             = stderrors.New("invalid document")
	ErrConfig               = stderrors.New("invalid configuration")
	ErrPublish              = stderrors.New("publish failed")
	ErrCLI                  = stderrors.New("invalid command line")
)

var sentinels = map[Category]error{
	CategoryArgument:  ErrInvalidArgument,
	CategoryKind:      ErrUnknownKind,
	CategoryOperation: ErrUnsupportedOperation,
	CategoryDocument:  ErrDocument,
	CategoryConfig:    ErrConfig,
	CategoryPublish:   ErrPublish,
	CategoryCLI:       ErrCLI,
}

// Location points into a document description.
type Location struct {
	// File is the document file, empty for in-memory input.
	File string

	// Node is the path of the node, e.g. "nodes[0].children[2]".
	Node string
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	switch {
	case l.File != "" && l.Node != "":
		return fmt.Sprintf("%s: %s", l.File, l.Node)
	case l.File != "":
		return l.File
	default:
		return l.Node
	}
}

// Error is a structured error with a code, a category and an optional cause.
type Error struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (argument, kind, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where in a document the error occurred.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Location != nil {
		msg = e.Location.String() + ": " + msg
	}
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches the sentinel of the error's category.
func (e *Error) Is(target error) bool {
	sentinel, ok := sentinels[e.Category]
	return ok && target == sentinel
}

// WithLocation records where in a document the error occurred.
func (e *Error) WithLocation(file, node string) *Error {
	e.Location = &Location{File: file, Node: node}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with a format string.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return New(code).Wrap(err)
}

// Explain returns the long explanation registered for the error's code.
func (e *Error) Explain() string {
	if t, ok := registry[e.Code]; ok {
		return t.Detail
	}
	return ""
}
