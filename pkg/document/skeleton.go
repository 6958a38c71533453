package document

// Skeleton returns the description of a minimal HTML5 page:
//
//	<!DOCTYPE html>
//	<html lang="en">
//	    <head>
//	        <meta charset="utf-8">
//	        <title>title</title>
//	    </head>
//	    <body>
//	    </body>
//	</html>
func Skeleton(title string) *Description {
	return &Description{
		Nodes: []Node{
			{Kind: "doctype"},
			{
				Kind:       "html",
				Attributes: []Attribute{{Name: "lang", Value: "en"}},
				Children: []any{
					Node{
						Kind: "head",
						Children: []any{
							Node{
								Kind:       "meta",
								Attributes: []Attribute{{Name: "charset", Value: "utf-8"}},
							},
							Node{
								Kind:       "title",
								SingleLine: true,
								Children:   []any{title},
							},
						},
					},
					Node{Kind: "body"},
				},
			},
		},
	}
}
