package element

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Tree returns an outline of the element tree for debugging:
//
//	html
//	└── body
//	    └── paragraph [class="x"]
//	        └── "hello"
func (e *Element) Tree() string {
	root := treeprint.NewWithRoot(e.label())
	e.addBranches(root)
	return root.String()
}

func (e *Element) addBranches(t treeprint.Tree) {
	for _, c := range e.children {
		switch c := c.(type) {
		case Text:
			t.AddNode(fmt.Sprintf("%q", string(c)))
		case *Element:
			if len(c.children) == 0 {
				t.AddNode(c.label())
				continue
			}
			c.addBranches(t.AddBranch(c.label()))
		}
	}
}

func (e *Element) label() string {
	if len(e.attrs) == 0 {
		return e.kind
	}
	var b strings.Builder
	b.WriteString(e.kind)
	b.WriteString(" [")
	for i, a := range e.attrs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%q", a.Name, a.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// Count returns the number of elements in the tree rooted at e, e included.
func (e *Element) Count() int {
	n := 1
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			n += el.Count()
		}
	}
	return n
}

// Walk calls fn for e and every descendant element in document order. It
// stops descending into an element when fn returns false.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			el.Walk(fn)
		}
	}
}
