package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/vango-dev/html5el/internal/errors"
	"github.com/vango-dev/html5el/pkg/element"
)

const pageWant = `<!DOCTYPE html>
<html lang="en">
    <body>
        <p class="x">hello</p>
    </body>
</html>
`

var pageSources = map[Format]string{
	FormatJSON: `{
  "nodes": [
    {"kind": "doctype"},
    {
      "kind": "html",
      "attributes": [{"name": "lang", "value": "en"}],
      "children": [
        {
          "kind": "body",
          "children": [
            {
              "kind": "paragraph",
              "singleLine": true,
              "attributes": {"class": "x"},
              "children": ["hello"]
            }
          ]
        }
      ]
    }
  ]
}`,
	FormatYAML: `
nodes:
  - kind: doctype
  - kind: html
    attributes:
      - {name: lang, value: en}
    children:
      - kind: body
        children:
          - kind: paragraph
            singleLine: true
            attributes: {class: x}
            children: [hello]
`,
	FormatTOML: `
[[nodes]]
kind = "doctype"

[[nodes]]
kind = "html"
attributes = [{ name = "lang", value = "en" }]

  [[nodes.children]]
  kind = "body"

    [[nodes.children.children]]
    kind = "paragraph"
    singleLine = true
    attributes = { class = "x" }
    children = ["hello"]
`,
}

func TestParseFormats(t *testing.T) {
	for f, src := range pageSources {
		t.Run(string(f), func(t *testing.T) {
			doc, err := Parse([]byte(src), f, Options{})
			require.NoError(t, err)
			assert.Equal(t, pageWant, doc.Render())
			assert.Equal(t, 4, doc.Count())
			assert.Equal(t, []string{"doctype", "html", "body", "paragraph"}, doc.Kinds())
		})
	}
}

func TestParseTopLevelShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"single node", `{"kind": "break"}`, "<br>\n"},
		{"list of nodes", `[{"kind": "break"}, {"kind": "horizontalruler"}]`, "<br>\n<hr>\n"},
		{"empty nodes", `{"nodes": []}`, ""},
		{"null", `null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.src), FormatJSON, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Render())
		})
	}
}

func TestParseNodeSettings(t *testing.T) {
	src := `
- kind: div
  indent: 2
  attributes:
    - {name: id, value: a}
    - {name: colspan, value: 2}
    - {name: hidden, value: true}
    - {name: id, value: b}
  children:
    - "line one\nline two"
    - kind: span
      singleLine: true
      children: [x]
`
	doc, err := Parse([]byte(src), FormatYAML, Options{})
	require.NoError(t, err)

	want := "<div id=\"b\" colspan=\"2\" hidden=\"true\">\n  line one\n  line two\n  <span>x</span>\n</div>\n"
	assert.Equal(t, want, doc.Render())
}

func TestParseMappingAttributesSorted(t *testing.T) {
	doc, err := Parse([]byte(`{"kind": "div", "attributes": {"b": "2", "a": "1", "c": "3"}}`), FormatJSON, Options{})
	require.NoError(t, err)
	assert.Equal(t, "<div a=\"1\" b=\"2\" c=\"3\">\n</div>\n", doc.Render())
}

func TestParseDefaults(t *testing.T) {
	src := `{"kind": "div", "children": [{"kind": "paragraph", "indent": 4, "children": ["x"]}]}`
	doc, err := Parse([]byte(src), FormatJSON, Options{
		Defaults: []element.Option{element.WithIndent(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "<div>\n <p>\n     x\n </p>\n</div>\n", doc.Render())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		src    string
		code   string
		node   string
		is     error
	}{
		{"malformed json", FormatJSON, `{"kind": `, "E021", "", herrors.ErrDocument},
		{"trailing json", FormatJSON, `{"kind": "div"} {}`, "E021", "", herrors.ErrDocument},
		{"malformed yaml", FormatYAML, "kind: [", "E021", "", herrors.ErrDocument},
		{"malformed toml", FormatTOML, "kind = ", "E021", "", herrors.ErrDocument},
		{"unknown format", Format("xml"), `<p/>`, "E020", "", herrors.ErrDocument},
		{"scalar top level", FormatJSON, `"paragraph"`, "E022", "", herrors.ErrDocument},
		{"missing kind", FormatJSON, `[{"children": []}]`, "E022", "nodes[0]", herrors.ErrDocument},
		{"unknown field", FormatJSON, `{"kind": "div", "tag": "p"}`, "E022", "nodes[0]", herrors.ErrDocument},
		{"extra top-level key", FormatJSON, `{"nodes": [], "x": 1}`, "E022", "", herrors.ErrDocument},
		{"root text", FormatJSON, `["hello"]`, "E022", "nodes[0]", herrors.ErrDocument},
		{"number child", FormatJSON, `{"kind": "div", "children": [1]}`, "E022", "nodes[0].children[0]", herrors.ErrDocument},
		{"children not a list", FormatJSON, `{"kind": "div", "children": "x"}`, "E022", "nodes[0].children", herrors.ErrDocument},
		{"fractional indent", FormatJSON, `{"kind": "div", "indent": 1.5}`, "E022", "nodes[0].indent", herrors.ErrDocument},
		{"string singleLine", FormatJSON, `{"kind": "div", "singleLine": "yes"}`, "E022", "nodes[0].singleLine", herrors.ErrDocument},
		{"list attribute value", FormatJSON, `{"kind": "div", "attributes": {"a": [1]}}`, "E022", "nodes[0].attributes.a", herrors.ErrDocument},
		{"unknown kind", FormatJSON, `{"kind": "div", "children": [{"kind": "p"}]}`, "E023", "nodes[0].children[0]", element.ErrUnknownKind},
		{"negative indent", FormatJSON, `{"kind": "div", "indent": -2}`, "E023", "nodes[0]", element.ErrInvalidArgument},
		{"comment attribute", FormatJSON, `{"kind": "comment", "attributes": {"a": "b"}}`, "E023", "nodes[0].attributes", element.ErrUnsupportedOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.src), tt.format, Options{File: "page." + string(tt.format)})
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, tt.is)
			assert.ErrorIs(t, err, herrors.ErrDocument)

			var e *herrors.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.code, e.Code)
			if tt.node != "" {
				require.NotNil(t, e.Location)
				assert.Equal(t, tt.node, e.Location.Node)
				assert.Equal(t, "page."+string(tt.format), e.Location.File)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	for f, src := range pageSources {
		path := filepath.Join(dir, "page"+f.Extension())
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

		doc, err := Load(path, Options{})
		require.NoError(t, err, f)
		assert.Equal(t, pageWant, doc.Render(), f)
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.json"), Options{})
		var e *herrors.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "E024", e.Code)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "page.xml"), Options{})
		var e *herrors.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "E020", e.Code)
	})

	t.Run("location names the file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("kind: blink\n"), 0o644))

		_, err := Load(path, Options{})
		var e *herrors.Error
		require.True(t, errors.As(err, &e))
		require.NotNil(t, e.Location)
		assert.Equal(t, path, e.Location.File)
		assert.Contains(t, err.Error(), path)
	})
}

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(pageSources[FormatYAML]), FormatYAML, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(pageWant)), n)
	assert.Equal(t, pageWant, buf.String())
	assert.Equal(t, doc.Render(), doc.String())
}

func TestSkeleton(t *testing.T) {
	want := `<!DOCTYPE html>
<html lang="en">
    <head>
        <meta charset="utf-8">
        <title>Hello</title>
    </head>
    <body>
    </body>
</html>
`
	doc, err := Build(Skeleton("Hello"), Options{})
	require.NoError(t, err)
	assert.Equal(t, want, doc.Render())
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, Skeleton("Round trip"), f))

			doc, err := Parse(buf.Bytes(), f, Options{})
			require.NoError(t, err)

			want, err := Build(Skeleton("Round trip"), Options{})
			require.NoError(t, err)
			assert.Equal(t, want.Render(), doc.Render())
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		err := Encode(&bytes.Buffer{}, Skeleton("x"), Format("xml"))
		assert.ErrorIs(t, err, herrors.ErrDocument)
	})
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.json", FormatJSON, true},
		{"dir/a.yaml", FormatYAML, true},
		{"a.YML", FormatYAML, true},
		{"a.toml", FormatTOML, true},
		{"a.html", "", false},
		{"Makefile", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.ok {
			assert.NoError(t, err, tt.path)
			assert.Equal(t, tt.want, got, tt.path)
		} else {
			assert.ErrorIs(t, err, herrors.ErrDocument, tt.path)
		}
		assert.Equal(t, tt.ok, IsDescription(tt.path), tt.path)
	}
}

func TestBuildGoNodes(t *testing.T) {
	desc := &Description{Nodes: []Node{{
		Kind: "unorderedlist",
		Children: []any{
			&Node{Kind: "listitem", SingleLine: true, Children: []any{"a"}},
			Node{Kind: "listitem", SingleLine: true, Children: []any{Text("b")}},
		},
	}}}
	doc, err := Build(desc, Options{})
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n    <li>a</li>\n    <li>b</li>\n</ul>\n", doc.Render())

	_, err = Build(&Description{Nodes: []Node{{Kind: "div", Children: []any{42}}}}, Options{})
	assert.ErrorIs(t, err, herrors.ErrDocument)
}
