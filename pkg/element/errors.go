package element

import "github.com/vango-dev/html5el/internal/errors"

// Error is the structured error returned by this package.
type Error = errors.Error

// Sentinels for errors.Is.
var (
	// ErrInvalidArgument reports a value the API cannot accept: a negative
	// indent size, a nil child or a child that would create a cycle.
	ErrInvalidArgument = errors.ErrInvalidArgument

	// ErrUnknownKind reports a kind that is not in the tag registry.
	ErrUnknownKind = errors.ErrUnknownKind

	// ErrUnsupportedOperation reports an attribute added to a comment or
	// doctype element.
	ErrUnsupportedOperation = errors.ErrUnsupportedOperation
)
