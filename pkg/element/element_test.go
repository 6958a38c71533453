package element

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/html5el/pkg/tags"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e, err := New("paragraph")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Kind() != "paragraph" {
			t.Errorf("Kind = %q, want paragraph", e.Kind())
		}
		if e.IndentSize() != DefaultIndent {
			t.Errorf("IndentSize = %d, want %d", e.IndentSize(), DefaultIndent)
		}
		if e.IsSingleLine() {
			t.Error("IsSingleLine should default to false")
		}
		if len(e.Attributes()) != 0 || len(e.Children()) != 0 {
			t.Error("new element should have no attributes and no children")
		}
	})

	t.Run("with options", func(t *testing.T) {
		e, err := New("div", WithIndent(2), SingleLine())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.IndentSize() != 2 {
			t.Errorf("IndentSize = %d, want 2", e.IndentSize())
		}
		if !e.IsSingleLine() {
			t.Error("IsSingleLine should be true")
		}
	})

	t.Run("zero indent", func(t *testing.T) {
		if _, err := New("div", WithIndent(0)); err != nil {
			t.Errorf("zero indent should be accepted: %v", err)
		}
	})

	t.Run("negative indent", func(t *testing.T) {
		e, err := New("div", WithIndent(-1))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("err = %v, want ErrInvalidArgument", err)
		}
		if e != nil {
			t.Error("element should be nil on error")
		}
	})
}

func TestNewUnknownKind(t *testing.T) {
	for _, kind := range []string{"", "p", "blink", "Paragraph", "heading7", " paragraph"} {
		t.Run(fmt.Sprintf("%q", kind), func(t *testing.T) {
			e, err := New(kind)
			if !errors.Is(err, ErrUnknownKind) {
				t.Fatalf("err = %v, want ErrUnknownKind", err)
			}
			if e != nil {
				t.Error("element should be nil on error")
			}
		})
	}

	t.Run("suggests the kind for a raw tag name", func(t *testing.T) {
		_, err := New("p")
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("err = %T, want *Error", err)
		}
		if e.Code != "E002" {
			t.Errorf("Code = %q, want E002", e.Code)
		}
		if !strings.Contains(e.Suggestion, `"paragraph"`) {
			t.Errorf("Suggestion = %q, want a hint for paragraph", e.Suggestion)
		}
	})
}

func TestMustNew(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew should panic for an unknown kind")
		}
	}()
	MustNew("nope")
}

func TestAddAttribute(t *testing.T) {
	t.Run("insertion order", func(t *testing.T) {
		e := MustNew("div")
		mustAttr(t, e, "id", "a")
		mustAttr(t, e, "class", "b")

		if got := e.Render(); !strings.HasPrefix(got, `<div id="a" class="b">`) {
			t.Errorf("Render() = %q, want prefix %q", got, `<div id="a" class="b">`)
		}
	})

	t.Run("last write wins in first position", func(t *testing.T) {
		e := MustNew("div")
		mustAttr(t, e, "id", "a")
		mustAttr(t, e, "class", "b")
		mustAttr(t, e, "id", "c")

		want := []Attr{{"id", "c"}, {"class", "b"}}
		got := e.Attributes()
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("Attributes() = %v, want %v", got, want)
		}
		if v, ok := e.Attribute("id"); !ok || v != "c" {
			t.Errorf("Attribute(id) = %q, %v", v, ok)
		}
	})

	t.Run("empty value", func(t *testing.T) {
		e := MustNew("input")
		mustAttr(t, e, "disabled", "")
		if got, want := e.Render(), "<input disabled=\"\">\n"; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("no escaping", func(t *testing.T) {
		e := MustNew("hyperlink", SingleLine())
		mustAttr(t, e, "href", `/a?b="c"&d`)
		if got, want := e.Render(), `<a href="/a?b="c"&d"></a>`; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("missing attribute", func(t *testing.T) {
		if _, ok := MustNew("div").Attribute("id"); ok {
			t.Error("Attribute(id) should not be found")
		}
	})
}

func TestAddAttributeUnsupported(t *testing.T) {
	for _, kind := range []string{"comment", "doctype"} {
		t.Run(kind, func(t *testing.T) {
			e := MustNew(kind)
			if e.AcceptsAttributes() {
				t.Error("AcceptsAttributes should be false")
			}
			for _, args := range [][2]string{{"class", "x"}, {"", ""}, {"id", "a"}} {
				err := e.AddAttribute(args[0], args[1])
				if !errors.Is(err, ErrUnsupportedOperation) {
					t.Errorf("AddAttribute(%q, %q) err = %v, want ErrUnsupportedOperation", args[0], args[1], err)
				}
			}
			if len(e.Attributes()) != 0 {
				t.Error("rejected attributes must not be stored")
			}
			before := MustNew(kind).Render()
			if e.Render() != before {
				t.Errorf("Render() changed after rejected attributes: %q", e.Render())
			}
		})
	}
}

func TestAddChild(t *testing.T) {
	t.Run("text and elements in order", func(t *testing.T) {
		e := MustNew("div")
		b := MustNew("bold", SingleLine())
		b.AddText("x")
		mustChild(t, e, Text("one"))
		mustChild(t, e, b)
		e.AddText("two")

		children := e.Children()
		if len(children) != 3 {
			t.Fatalf("len(Children) = %d, want 3", len(children))
		}
		if children[0] != Text("one") || children[1] != b || children[2] != Text("two") {
			t.Errorf("Children = %v", children)
		}
	})

	t.Run("nil child", func(t *testing.T) {
		e := MustNew("div")
		if err := e.AddChild(nil); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("AddChild(nil) err = %v, want ErrInvalidArgument", err)
		}
		var nilElement *Element
		if err := e.AddChild(nilElement); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("AddChild(nil *Element) err = %v, want ErrInvalidArgument", err)
		}
		if len(e.Children()) != 0 {
			t.Error("rejected children must not be stored")
		}
	})

	t.Run("cycles", func(t *testing.T) {
		outer := MustNew("div")
		inner := MustNew("span")
		mustChild(t, outer, inner)

		if err := outer.AddChild(outer); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("self child err = %v, want ErrInvalidArgument", err)
		}
		if err := inner.AddChild(outer); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ancestor child err = %v, want ErrInvalidArgument", err)
		}
		if len(inner.Children()) != 0 || len(outer.Children()) != 1 {
			t.Error("rejected children must not be stored")
		}
	})

	t.Run("same child twice", func(t *testing.T) {
		e := MustNew("unorderedlist")
		li := MustNew("listitem", SingleLine())
		li.AddText("x")
		mustChild(t, e, li)
		mustChild(t, e, li)

		want := "<ul>\n    <li>x</li>\n    <li>x</li>\n</ul>\n"
		if got := e.Render(); got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("no defensive copy", func(t *testing.T) {
		parent := MustNew("div")
		child := MustNew("paragraph", SingleLine())
		mustChild(t, parent, child)
		child.AddText("late")

		want := "<div>\n    <p>late</p>\n</div>\n"
		if got := parent.Render(); got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("children copy", func(t *testing.T) {
		e := MustNew("div")
		e.AddText("a")
		children := e.Children()
		children[0] = Text("b")
		if e.Children()[0] != Text("a") {
			t.Error("Children() should return a copy")
		}
	})
}

func TestHelp(t *testing.T) {
	e := MustNew("paragraph")
	first := e.Help()
	if first != "Defines a paragraph" {
		t.Errorf("Help() = %q", first)
	}

	mustAttr(t, e, "class", "x")
	e.AddText("hello")
	if e.Help() != first {
		t.Errorf("Help() changed after mutation: %q", e.Help())
	}

	for _, kind := range tags.Kinds() {
		def, _ := tags.Lookup(kind)
		if got := MustNew(kind).Help(); got != def.Doc {
			t.Errorf("%s: Help() = %q, want %q", kind, got, def.Doc)
		}
	}
}

func TestGoString(t *testing.T) {
	tests := []struct {
		e    *Element
		want string
	}{
		{MustNew("paragraph"), `Element("paragraph", 4, false)`},
		{MustNew("div", WithIndent(2), SingleLine()), `Element("div", 2, true)`},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf("%#v", tt.e); got != tt.want {
			t.Errorf("%%#v = %s, want %s", got, tt.want)
		}
	}
}

func mustAttr(t *testing.T, e *Element, name, value string) {
	t.Helper()
	if err := e.AddAttribute(name, value); err != nil {
		t.Fatalf("AddAttribute(%q, %q): %v", name, value, err)
	}
}

func mustChild(t *testing.T, e *Element, c Child) {
	t.Helper()
	if err := e.AddChild(c); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
}
