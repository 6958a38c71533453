// Package tags holds the static table of HTML5 element kinds.
//
// Every kind has a symbolic name that is distinct from its literal HTML tag
// ("bold" is rendered as <b>, "hyperlink" as <a>). A Definition carries the
// literal open and close tag text plus a short description taken from the
// W3C element reference.
//
// # Void Elements
//
// Kinds whose close tag is empty (break, image, input, ...) are void: they
// render without a closing line.
//
//	def, ok := tags.Lookup("break")
//	// def.Open == "<br>", def.Close == "", def.IsVoid() == true
//
// The table is fixed at package initialization and never mutated, so it is
// safe for concurrent reads. The set of kinds is part of the public
// contract: adding or removing a kind is a breaking change.
package tags
