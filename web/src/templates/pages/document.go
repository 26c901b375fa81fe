package pages

import (
	cmp "maragu.dev/gomponents"

	"github.com/onur-cay/comingsoon/web/src/templates/layouts"
)

// ComingSoonPage is the complete HTML document served at the site root.
func ComingSoonPage() cmp.Node {
	return layouts.Base("Coming Soon", ComingSoon())
}
