package document

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/html5el/internal/errors"
	"github.com/vango-dev/html5el/pkg/element"
)

// Options configures how descriptions become elements.
type Options struct {
	// Defaults are applied to every element before the node's own
	// indent and singleLine settings.
	Defaults []element.Option

	// File names the source in error locations.
	File string
}

// Document is an ordered list of root elements.
type Document struct {
	Nodes []*element.Element
}

// Render concatenates the renderings of the root elements.
func (d *Document) Render() string {
	var b strings.Builder
	for _, n := range d.Nodes {
		b.WriteString(n.Render())
	}
	return b.String()
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	return d.Render()
}

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, n := range d.Nodes {
		written, err := n.WriteTo(w)
		total += written
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Count returns the number of elements in the document.
func (d *Document) Count() int {
	n := 0
	for _, root := range d.Nodes {
		n += root.Count()
	}
	return n
}

// Kinds returns the distinct element kinds of the document in order of
// first appearance.
func (d *Document) Kinds() []string {
	seen := make(map[string]bool)
	var kinds []string
	for _, root := range d.Nodes {
		root.Walk(func(e *element.Element) bool {
			if !seen[e.Kind()] {
				seen[e.Kind()] = true
				kinds = append(kinds, e.Kind())
			}
			return true
		})
	}
	return kinds
}

// Tree returns the debug outline of every root, one after the other.
func (d *Document) Tree() string {
	var b strings.Builder
	for _, n := range d.Nodes {
		b.WriteString(n.Tree())
	}
	return b.String()
}

// Load reads and builds the description at path. The format is chosen by
// extension.
func Load(path string, opts Options) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E024").WithLocation(path, "").Wrap(err)
	}
	if opts.File == "" {
		opts.File = path
	}
	return Parse(data, f, opts)
}

// Decode reads a description from r and builds it.
func Decode(r io.Reader, f Format, opts Options) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E024").WithLocation(opts.File, "").Wrap(err)
	}
	return Parse(data, f, opts)
}

// Parse decodes data in format f and builds the description.
func Parse(data []byte, f Format, opts Options) (*Document, error) {
	desc, err := Unmarshal(data, f)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) && e.Location != nil && e.Location.File == "" {
			e.Location.File = opts.File
		}
		return nil, err
	}
	return Build(desc, opts)
}

// Unmarshal decodes data in format f into a Description without building
// it.
func Unmarshal(data []byte, f Format) (*Description, error) {
	var v any
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, errors.New("E021").WithDetail("json").Wrap(err)
		}
		if dec.More() {
			return nil, errors.New("E021").WithDetail("json: trailing data after the document")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, errors.New("E021").WithDetail("yaml").Wrap(err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, errors.New("E021").WithDetail("toml").Wrap(err)
		}
	default:
		return nil, errors.New("E020").WithDetailf("format %q", f)
	}
	return fromValue(v)
}

// Build creates the element trees of desc.
func Build(desc *Description, opts Options) (*Document, error) {
	doc := &Document{Nodes: make([]*element.Element, 0, len(desc.Nodes))}
	for i, n := range desc.Nodes {
		e, err := buildNode(n, fmt.Sprintf("nodes[%d]", i), opts)
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, e)
	}
	return doc, nil
}

func buildNode(n Node, path string, opts Options) (*element.Element, error) {
	elemOpts := append([]element.Option(nil), opts.Defaults...)
	if n.Indent != nil {
		elemOpts = append(elemOpts, element.WithIndent(*n.Indent))
	}
	if n.SingleLine {
		elemOpts = append(elemOpts, element.SingleLine())
	}

	e, err := element.New(n.Kind, elemOpts...)
	if err != nil {
		return nil, rejected(opts.File, path, err)
	}

	for _, a := range n.Attributes {
		if err := e.AddAttribute(a.Name, a.Value); err != nil {
			return nil, rejected(opts.File, path+".attributes", err)
		}
	}

	for i, c := range n.Children {
		p := fmt.Sprintf("%s.children[%d]", path, i)
		switch c := c.(type) {
		case string:
			e.AddText(c)
		case Node:
			child, err := buildNode(c, p, opts)
			if err != nil {
				return nil, err
			}
			if err := e.AddChild(child); err != nil {
				return nil, rejected(opts.File, p, err)
			}
		case *Node:
			if c == nil {
				return nil, invalid(p, "child is nil").WithLocation(opts.File, p)
			}
			child, err := buildNode(*c, p, opts)
			if err != nil {
				return nil, err
			}
			if err := e.AddChild(child); err != nil {
				return nil, rejected(opts.File, p, err)
			}
		default:
			return nil, invalid(p, fmt.Sprintf("children must be strings or nodes, got %T", c)).WithLocation(opts.File, p)
		}
	}

	return e, nil
}

func rejected(file, path string, err error) *errors.Error {
	return errors.New("E023").WithLocation(file, path).Wrap(err)
}
