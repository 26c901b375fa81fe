package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const (
	// Title is the heading shown on the placeholder page.
	Title = "I'am Launching Soon!"
	// Description is the single paragraph below the heading.
	Description = "Our website is under construction. Follow us on LinkedIn and GitHub for updates."
)

// SocialLink is an outbound profile link rendered on the placeholder page.
type SocialLink struct {
	Name string
	URL  string
}

var socialLinks = []SocialLink{
	{Name: "LinkedIn", URL: "https://www.linkedin.com/in/mustafa-onur-cay-54246a260/"},
	{Name: "GitHub", URL: "https://github.com/Onur-Cay/card-game"},
}

// SocialLinks returns a copy of the outbound links in display order.
func SocialLinks() []SocialLink {
	return append([]SocialLink(nil), socialLinks...)
}

// ComingSoon is the placeholder page content: a heading, a description and
// the outbound social links. It has no inputs and renders the same markup on
// every call.
func ComingSoon() cmp.Node {
	return g.Div(
		g.Class("container"),
		g.Div(
			g.Class("content"),
			g.H1(g.Class("title"), cmp.Text(Title)),
			g.P(g.Class("description"), cmp.Text(Description)),
			g.Div(
				g.Class("social-links"),
				cmp.Map(socialLinks, outboundLink),
			),
		),
	)
}

// outboundLink opens in a new browsing context without leaking the referrer
// or exposing window.opener.
func outboundLink(l SocialLink) cmp.Node {
	return g.A(
		g.Href(l.URL),
		g.Target("_blank"),
		g.Rel("noopener noreferrer"),
		cmp.Text(l.Name),
	)
}
