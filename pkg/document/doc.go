// Package document builds element trees from declarative descriptions.
//
// A description lists the root nodes of a document. Each node names an
// element kind and optionally its layout, attributes and children;
// children are strings or nested nodes. Descriptions can be written in
// JSON, YAML or TOML:
//
//	nodes:
//	  - kind: doctype
//	  - kind: html
//	    attributes:
//	      - {name: lang, value: en}
//	    children:
//	      - kind: body
//	        children:
//	          - kind: paragraph
//	            singleLine: true
//	            children: [hello]
//
// Attributes are applied in list order. A mapping is accepted as well and
// applied in sorted key order, since JSON and TOML objects are unordered.
//
// Load, Decode and Parse return a Document, whose Render concatenates the
// renderings of its roots. Errors carry the path of the offending node
// (e.g. "nodes[1].children[0]") and still match the element sentinels:
//
//	_, err := document.Load("page.yaml", document.Options{})
//	if errors.Is(err, element.ErrUnknownKind) { ... }
package document
