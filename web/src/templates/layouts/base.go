// Package layouts holds the outer page shells shared by every page.
package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/view"
	"github.com/openpersona/console/web/src/templates/partials"
)

// Base wraps page content in the full HTML document: head, nav, flash
// banners and toasts.
func Base(title string, flash view.FlashData, nav partials.NavData, toasts cmp.Node, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			),
			g.Body(
				g.Class("bg-gray-50 min-h-screen text-gray-900"),
				partials.Nav(nav),
				g.Main(
					g.Class("container mx-auto px-6 py-8"),
					partials.FlashBanner(flash),
					content,
				),
				toasts,
			),
		),
	)
}
