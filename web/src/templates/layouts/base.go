package layouts

import (
	cmp "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

// StylesheetPath is where the embedded stylesheet is served from.
const StylesheetPath = "/static/comingsoon.css"

// Base wraps page content in a complete HTML5 document.
func Base(title string, body ...cmp.Node) cmp.Node {
	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(title),
		Description: "Website launching soon.",
		Language:    "en",
		Head: []cmp.Node{
			g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
			g.Link(g.Rel("stylesheet"), g.Href(StylesheetPath)),
		},
		Body: body,
	})
}
