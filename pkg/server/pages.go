package server

import (
	"html"

	"github.com/vango-dev/html5el/pkg/document"
)

// The server's own pages are element trees built from descriptions.
// Element text is written verbatim, so dynamic values are escaped here.

func page(title string, body ...any) *document.Description {
	desc := document.Skeleton(html.EscapeString(title))
	root := &desc.Nodes[1]
	bodyNode := root.Children[1].(document.Node)
	bodyNode.Children = body
	root.Children[1] = bodyNode
	return desc
}

func heading(text string) document.Node {
	return document.Node{
		Kind:       "heading1",
		SingleLine: true,
		Children:   []any{html.EscapeString(text)},
	}
}

func indexPage(names []string) *document.Description {
	if len(names) == 0 {
		return page("html5el",
			heading("Documents"),
			document.Node{
				Kind:       "paragraph",
				SingleLine: true,
				Children:   []any{"No document descriptions found."},
			},
		)
	}

	list := document.Node{Kind: "unorderedlist"}
	for _, name := range names {
		list.Children = append(list.Children, document.Node{
			Kind: "listitem",
			Children: []any{document.Node{
				Kind:       "hyperlink",
				SingleLine: true,
				Attributes: []document.Attribute{{Name: "href", Value: "/docs/" + html.EscapeString(name)}},
				Children:   []any{html.EscapeString(name)},
			}},
		})
	}
	return page("html5el", heading("Documents"), list)
}

func errorPage(name string, err error) *document.Description {
	return page(name,
		heading("Cannot render "+name),
		document.Node{
			Kind:       "preformatted",
			SingleLine: true,
			Children:   []any{html.EscapeString(err.Error())},
		},
	)
}

func renderPage(desc *document.Description) string {
	doc, err := document.Build(desc, document.Options{})
	if err != nil {
		// The page descriptions above only use registered kinds.
		panic(err)
	}
	return doc.Render()
}
