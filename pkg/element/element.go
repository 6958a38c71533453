package element

import (
	"fmt"

	"github.com/vango-dev/html5el/internal/errors"
	"github.com/vango-dev/html5el/pkg/tags"
)

// DefaultIndent is the number of spaces per indentation level.
const DefaultIndent = 4

// Child is the content of an element: Text or *Element.
type Child interface {
	isChild()
}

// Text is a literal text child. It is written verbatim.
type Text string

func (Text) isChild() {}

func (*Element) isChild() {}

// Attr is a single attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the markup tree.
type Element struct {
	kind       string
	def        tags.Definition
	indentSize int
	singleLine bool
	attrs      []Attr
	attrIndex  map[string]int
	children   []Child
}

// Option configures an Element at construction.
type Option func(*Element)

// WithIndent sets the number of spaces used to indent children.
func WithIndent(n int) Option {
	return func(e *Element) {
		e.indentSize = n
	}
}

// WithSingleLine sets the single-line flag.
func WithSingleLine(single bool) Option {
	return func(e *Element) {
		e.singleLine = single
	}
}

// SingleLine is shorthand for WithSingleLine(true).
func SingleLine() Option {
	return WithSingleLine(true)
}

// New creates an element of the given kind.
//
// It fails with ErrUnknownKind when kind is not registered in package tags
// and with ErrInvalidArgument when the indent size is negative.
func New(kind string, opts ...Option) (*Element, error) {
	def, ok := tags.Lookup(kind)
	if !ok {
		err := errors.New("E002").WithDetailf("kind %q is not registered", kind)
		if suggestion, found := tags.KindForTag(kind); found {
			err.WithSuggestion(fmt.Sprintf("Did you mean %q?", suggestion))
		}
		return nil, err
	}

	e := &Element{
		kind:       kind,
		def:        def,
		indentSize: DefaultIndent,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.indentSize < 0 {
		return nil, errors.New("E001").WithDetailf("indent size %d is negative", e.indentSize)
	}

	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(kind string, opts ...Option) *Element {
	e, err := New(kind, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Kind returns the element's kind.
func (e *Element) Kind() string {
	return e.kind
}

// IndentSize returns the number of spaces used to indent children.
func (e *Element) IndentSize() int {
	return e.indentSize
}

// IsSingleLine reports whether the single-line flag is set. The flag only
// takes effect when all direct children are text.
func (e *Element) IsSingleLine() bool {
	return e.singleLine
}

// Help returns the description of the element's kind.
func (e *Element) Help() string {
	return e.def.Doc
}

// AcceptsAttributes reports whether AddAttribute can succeed on this kind.
func (e *Element) AcceptsAttributes() bool {
	return e.kind != "comment" && e.kind != "doctype"
}

// AddAttribute sets an attribute. Attributes render in the order their names
// were first added; setting an existing name replaces its value in place.
//
// Comment and doctype elements have no attribute syntax and fail with
// ErrUnsupportedOperation. Names and values are not validated or escaped.
func (e *Element) AddAttribute(name, value string) error {
	if !e.AcceptsAttributes() {
		return errors.New("E003").WithDetailf("%s elements have no attributes", e.kind)
	}

	if i, ok := e.attrIndex[name]; ok {
		e.attrs[i].Value = value
		return nil
	}
	if e.attrIndex == nil {
		e.attrIndex = make(map[string]int)
	}
	e.attrIndex[name] = len(e.attrs)
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	return nil
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	i, ok := e.attrIndex[name]
	if !ok {
		return "", false
	}
	return e.attrs[i].Value, true
}

// Attributes returns a copy of the attributes in render order.
func (e *Element) Attributes() []Attr {
	if len(e.attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// AddChild appends a child. The child is not copied: later changes to an
// element child show up when the parent is rendered.
//
// A nil child, or a child that contains e (which would make the tree
// cyclic), fails with ErrInvalidArgument.
func (e *Element) AddChild(c Child) error {
	switch c := c.(type) {
	case nil:
		return errors.New("E001").WithDetail("child is nil")
	case *Element:
		if c == nil {
			return errors.New("E001").WithDetail("child element is nil")
		}
		if c.contains(e) {
			return errors.New("E001").WithDetailf("adding %s to %s would create a cycle", c.kind, e.kind)
		}
	}
	e.children = append(e.children, c)
	return nil
}

// AddText appends a text child.
func (e *Element) AddText(s string) {
	e.children = append(e.children, Text(s))
}

// Children returns a copy of the child list.
func (e *Element) Children() []Child {
	if len(e.children) == 0 {
		return nil
	}
	out := make([]Child, len(e.children))
	copy(out, e.children)
	return out
}

// contains reports whether target is e or a descendant of e.
func (e *Element) contains(target *Element) bool {
	if e == target {
		return true
	}
	for _, c := range e.children {
		if el, ok := c.(*Element); ok && el.contains(target) {
			return true
		}
	}
	return false
}

// GoString returns a structural representation for debugging, e.g.
// Element("paragraph", 4, false).
func (e *Element) GoString() string {
	return fmt.Sprintf("Element(%q, %d, %t)", e.kind, e.indentSize, e.singleLine)
}
