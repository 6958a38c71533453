// Package element builds HTML5 markup from a tree of named elements.
//
// An Element references a kind from package tags, holds ordered attributes
// and an ordered list of children. A child is either literal Text or another
// *Element. Render serializes the tree into indented HTML.
//
// # Basic Usage
//
//	html := element.MustNew("html")
//	body := element.MustNew("body")
//	p := element.MustNew("paragraph")
//	p.AddAttribute("class", "x")
//	p.AddText("hello")
//	body.AddChild(p)
//	html.AddChild(body)
//
//	fmt.Print(html.Render())
//	// <html>
//	//     <body>
//	//         <p class="x">
//	//             hello
//	//         </p>
//	//     </body>
//	// </html>
//
// # Layout
//
// Every element indents the lines of its children by its own indent size
// (4 by default); nesting depth accumulates because each level re-indents
// the whole rendering of its children. An element created with SingleLine
// collapses to one line when all of its direct children are text:
//
//	p := element.MustNew("paragraph", element.SingleLine())
//	p.AddText("hi")
//	p.Render() // "<p>hi</p>"
//
// A single element child forces the multi-line layout.
//
// # Escaping
//
// Text and attribute values are written verbatim. Callers are responsible
// for producing valid markup; "<", ">" and quotes pass through unchanged.
//
// # Concurrency
//
// Elements are not safe for concurrent mutation. Rendering does not mutate
// the tree, so a tree that is no longer modified can be rendered from
// several goroutines.
package element
