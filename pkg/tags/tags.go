package tags

import (
	"sort"
	"strings"
)

// Definition describes how a kind is written out.
type Definition struct {
	// Open is the literal open tag, e.g. "<p>".
	Open string

	// Close is the literal close tag, e.g. "</p>". Empty for void kinds.
	Close string

	// Doc is a one-line description of the element.
	Doc string
}

// IsVoid reports whether the definition has no close tag.
func (d Definition) IsVoid() bool {
	return d.Close == ""
}

// Lookup returns the definition registered for kind.
func Lookup(kind string) (Definition, bool) {
	def, ok := registry[kind]
	return def, ok
}

// Has reports whether kind is registered.
func Has(kind string) bool {
	_, ok := registry[kind]
	return ok
}

// Kinds returns every registered kind in lexical order.
func Kinds() []string {
	kinds := make([]string, 0, Len())
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// VoidKinds returns the kinds without a close tag in lexical order.
func VoidKinds() []string {
	var kinds []string
	for _, kind := range Kinds() {
		if registry[kind].IsVoid() {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Len returns the number of registered kinds.
func Len() int {
	return len(registry)
}

// KindForTag returns the kind whose open tag is <tag>, e.g. "p" yields
// "paragraph". Matching is case-insensitive.
func KindForTag(tag string) (string, bool) {
	open := "<" + strings.ToLower(tag) + ">"
	for _, kind := range Kinds() {
		if strings.ToLower(registry[kind].Open) == open {
			return kind, true
		}
	}
	return "", false
}
