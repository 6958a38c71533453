// Package errors provides the structured error values used across html5el.
//
// Every error has a code (e.g. "E002") registered with a category, a short
// message and a longer explanation. Errors can be enriched with a location
// inside a document description, a suggestion and a wrapped cause.
//
// # Error Categories
//
//   - argument:  a caller passed a value the API cannot accept
//   - kind:      an element kind is not in the tag registry
//   - operation: the element kind does not support the operation
//   - document:  a document description could not be decoded
//   - config:    html5el.json could not be loaded
//   - publish:   rendered output could not be uploaded
//   - cli:       the command line was misused
//
// Each category has a sentinel, so callers can branch without inspecting
// codes:
//
//	if errors.Is(err, element.ErrUnknownKind) { ... }
//
// # Usage
//
//	err := errors.New("E002").
//	    WithDetail(`kind "para" is not registered`).
//	    WithSuggestion(`Did you mean "paragraph"?`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E002: Unknown element kind
//	//
//	//   kind "para" is not registered
//	//
//	//   Hint: Did you mean "paragraph"?
package errors
