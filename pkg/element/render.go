package element

import (
	"io"
	"strings"
)

// Render serializes the element and its descendants.
//
// The open tag comes first, with the attributes spliced in before its first
// '>'. Every line of every child's rendering follows, prefixed with the
// indent and terminated by a newline; the close tag, if the kind has one,
// comes last. In single-line layout (SingleLine set and only text children)
// both indent and newline are empty.
func (e *Element) Render() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

// String implements fmt.Stringer by rendering the element.
func (e *Element) String() string {
	return e.Render()
}

// WriteTo implements io.WriterTo.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.Render())
	return int64(n), err
}

func (e *Element) render(b *strings.Builder) {
	newline, indent := "\n", strings.Repeat(" ", e.indentSize)
	if e.singleLine && e.textOnly() {
		newline, indent = "", ""
	}

	open := e.def.Open
	if len(e.attrs) > 0 {
		open = strings.Replace(open, ">", e.attributeString()+">", 1)
	}
	b.WriteString(open)
	b.WriteString(newline)

	for _, c := range e.children {
		for _, line := range splitLines(renderChild(c)) {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteString(newline)
		}
	}

	if e.def.Close != "" {
		b.WriteString(e.def.Close)
		b.WriteString(newline)
	}
}

// textOnly reports whether every direct child is text. An element without
// children is text-only.
func (e *Element) textOnly() bool {
	for _, c := range e.children {
		if _, ok := c.(Text); !ok {
			return false
		}
	}
	return true
}

func (e *Element) attributeString() string {
	var b strings.Builder
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	return b.String()
}

func renderChild(c Child) string {
	switch c := c.(type) {
	case Text:
		return string(c)
	case *Element:
		return c.Render()
	default:
		return ""
	}
}

// splitLines splits s at "\n", "\r\n" and "\r". Line terminators are
// dropped, a trailing terminator does not produce an empty last line, and
// an empty string has no lines.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}
