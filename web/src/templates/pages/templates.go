package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/domain"
)

// TemplateGallery renders the theme gallery (read-only for members).
func TemplateGallery(templates []domain.Template) cmp.Node {
	return g.Div(
		g.H1(g.Class("text-3xl font-bold mb-6"), cmp.Text("Templates")),
		cmp.If(len(templates) == 0,
			g.P(g.Class("text-gray-500"), cmp.Text("No templates available yet.")),
		),
		g.Div(
			g.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-4"),
			cmp.Map(templates, templateCard),
		),
	)
}

func templateCard(t domain.Template) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.Div(
			g.Class("flex items-start justify-between"),
			g.H2(g.Class("text-lg font-semibold"), cmp.Text(t.Name)),
			cmp.If(t.IsPremium,
				g.Span(g.Class("text-xs rounded-full bg-amber-100 text-amber-700 px-2 py-0.5"), cmp.Text("Premium")),
			),
		),
		g.Div(g.Class("text-sm text-gray-500"), cmp.Text(t.Slug)),
	)
}

// AdminTemplates renders the template management page with a create form
// and inline rename per row.
func AdminTemplates(templates []domain.Template) cmp.Node {
	return g.Div(
		g.H1(g.Class("text-3xl font-bold mb-6"), cmp.Text("Templates")),
		g.Form(
			g.Method("post"), g.Action("/app/admin/templates"),
			g.Class("flex gap-3 mb-6"),
			g.Input(
				g.Type("text"), g.Name("name"), g.Placeholder("New template name"),
				g.Class("flex-1 rounded-lg border border-gray-300 px-3 py-2"),
			),
			g.Button(
				g.Type("submit"),
				g.Class("rounded-lg bg-indigo-600 text-white font-semibold px-5 hover:bg-indigo-700"),
				cmp.Text("Create"),
			),
		),
		g.Table(
			g.Class("w-full bg-white rounded-xl shadow overflow-hidden text-sm"),
			g.THead(
				g.Class("bg-gray-100 text-left text-gray-600"),
				g.Tr(
					g.Th(g.Class("px-4 py-2"), cmp.Text("Slug")),
					g.Th(g.Class("px-4 py-2"), cmp.Text("Name")),
					g.Th(g.Class("px-4 py-2"), cmp.Text("Status")),
				),
			),
			g.TBody(cmp.Map(templates, adminTemplateRow)),
		),
	)
}

func adminTemplateRow(t domain.Template) cmp.Node {
	return g.Tr(
		g.Class("border-t border-gray-100"),
		g.Td(g.Class("px-4 py-2 text-gray-500"), cmp.Text(t.Slug)),
		g.Td(
			g.Class("px-4 py-2"),
			g.Form(
				g.Method("post"), g.Action("/app/admin/templates/"+t.Slug),
				g.Class("flex gap-2"),
				g.Input(
					g.Type("text"), g.Name("name"), g.Value(t.Name),
					g.Class("rounded border border-gray-300 px-2 py-1"),
				),
				g.Button(g.Type("submit"), g.Class("text-indigo-600 hover:underline"), cmp.Text("Rename")),
			),
		),
		g.Td(g.Class("px-4 py-2 text-gray-500"), cmp.Text(t.Status)),
	)
}
