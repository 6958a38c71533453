package document

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/vango-dev/html5el/internal/errors"
)

// Description is the declarative form of a document.
type Description struct {
	Nodes []Node `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// Node describes one element.
type Node struct {
	Kind       string      `json:"kind" yaml:"kind" toml:"kind"`
	Indent     *int        `json:"indent,omitempty" yaml:"indent,omitempty" toml:"indent,omitempty"`
	SingleLine bool        `json:"singleLine,omitempty" yaml:"singleLine,omitempty" toml:"singleLine,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty" toml:"attributes,omitempty"`

	// Children holds strings and Nodes.
	Children []any `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Attribute is a name/value pair of a node.
type Attribute struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// Text returns a text child for Node.Children.
func Text(s string) any {
	return s
}

var nodeKeys = map[string]bool{
	"kind":       true,
	"indent":     true,
	"singleLine": true,
	"attributes": true,
	"children":   true,
}

// fromValue converts a generically decoded value into a Description. The
// top level may be {"nodes": [...]}, a single node or a list of nodes.
func fromValue(v any) (*Description, error) {
	switch v := v.(type) {
	case map[string]any:
		if list, ok := v["nodes"]; ok {
			if len(v) != 1 {
				return nil, invalid("", "the top level may only contain \"nodes\"")
			}
			items, ok := list.([]any)
			if !ok {
				return nil, invalid("nodes", "must be a list of nodes")
			}
			return nodesFromList(items, "nodes")
		}
		n, err := nodeFromMap(v, "nodes[0]")
		if err != nil {
			return nil, err
		}
		return &Description{Nodes: []Node{n}}, nil
	case []any:
		return nodesFromList(v, "nodes")
	case nil:
		return &Description{}, nil
	default:
		return nil, invalid("", fmt.Sprintf("expected a node or a list of nodes, got %s", typeName(v)))
	}
}

func nodesFromList(items []any, path string) (*Description, error) {
	d := &Description{Nodes: make([]Node, 0, len(items))}
	for i, item := range items {
		p := fmt.Sprintf("%s[%d]", path, i)
		m, ok := item.(map[string]any)
		if !ok {
			return nil, invalid(p, fmt.Sprintf("root nodes must be nodes, got %s", typeName(item)))
		}
		n, err := nodeFromMap(m, p)
		if err != nil {
			return nil, err
		}
		d.Nodes = append(d.Nodes, n)
	}
	return d, nil
}

func nodeFromMap(m map[string]any, path string) (Node, error) {
	var n Node

	for key := range m {
		if !nodeKeys[key] {
			return n, invalid(path, fmt.Sprintf("unknown field %q", key))
		}
	}

	kind, ok := m["kind"].(string)
	if !ok || kind == "" {
		return n, invalid(path, "\"kind\" is required and must be a string")
	}
	n.Kind = kind

	if raw, ok := m["indent"]; ok {
		indent, err := toInt(raw)
		if err != nil {
			return n, invalid(path+".indent", err.Error())
		}
		n.Indent = &indent
	}

	if raw, ok := m["singleLine"]; ok {
		single, ok := raw.(bool)
		if !ok {
			return n, invalid(path+".singleLine", "must be a boolean")
		}
		n.SingleLine = single
	}

	if raw, ok := m["attributes"]; ok {
		attrs, err := attributesFromValue(raw, path+".attributes")
		if err != nil {
			return n, err
		}
		n.Attributes = attrs
	}

	if raw, ok := m["children"]; ok {
		items, ok := raw.([]any)
		if !ok {
			return n, invalid(path+".children", "must be a list")
		}
		for i, item := range items {
			p := fmt.Sprintf("%s.children[%d]", path, i)
			switch item := item.(type) {
			case string:
				n.Children = append(n.Children, item)
			case map[string]any:
				child, err := nodeFromMap(item, p)
				if err != nil {
					return n, err
				}
				n.Children = append(n.Children, child)
			default:
				return n, invalid(p, fmt.Sprintf("children must be strings or nodes, got %s", typeName(item)))
			}
		}
	}

	return n, nil
}

func attributesFromValue(raw any, path string) ([]Attribute, error) {
	switch raw := raw.(type) {
	case []any:
		attrs := make([]Attribute, 0, len(raw))
		for i, item := range raw {
			p := fmt.Sprintf("%s[%d]", path, i)
			m, ok := item.(map[string]any)
			if !ok {
				return nil, invalid(p, "must be a {name, value} pair")
			}
			name, ok := m["name"].(string)
			if !ok {
				return nil, invalid(p+".name", "must be a string")
			}
			value, err := scalarString(m["value"])
			if err != nil {
				return nil, invalid(p+".value", err.Error())
			}
			if len(m) > 2 {
				return nil, invalid(p, "only \"name\" and \"value\" are allowed")
			}
			attrs = append(attrs, Attribute{Name: name, Value: value})
		}
		return attrs, nil
	case map[string]any:
		names := make([]string, 0, len(raw))
		for name := range raw {
			names = append(names, name)
		}
		sort.Strings(names)
		attrs := make([]Attribute, 0, len(raw))
		for _, name := range names {
			value, err := scalarString(raw[name])
			if err != nil {
				return nil, invalid(path+"."+name, err.Error())
			}
			attrs = append(attrs, Attribute{Name: name, Value: value})
		}
		return attrs, nil
	default:
		return nil, invalid(path, "must be a list of {name, value} pairs or a mapping")
	}
}

// scalarString accepts strings, numbers and booleans, so that YAML values
// such as `colspan: 2` work.
func scalarString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("must be a string, number or boolean, got %s", typeName(v))
	}
}

func toInt(v any) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("must be a whole number, got %v", v)
		}
		return int(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("must be a whole number, got %s", v)
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("must be a number, got %s", typeName(v))
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64, json.Number:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func invalid(path, detail string) *errors.Error {
	return errors.New("E022").WithLocation("", path).WithDetail(detail)
}
