package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home renders the public landing page.
func Home(authenticated bool) cmp.Node {
	return g.Div(
		g.Class("max-w-3xl mx-auto text-center mt-16"),
		g.H1(
			g.Class("text-5xl font-extrabold text-gray-900 mb-4"),
			cmp.Text("Your work, beautifully presented."),
		),
		g.P(
			g.Class("text-xl text-gray-600 mb-8"),
			cmp.Text("OpenPersona turns your resume into living portfolio dashboards you can share with a single link."),
		),
		g.Div(
			g.Class("flex justify-center gap-4"),
			cmp.If(authenticated,
				g.A(
					g.Href("/app/dashboards"),
					g.Class("rounded-lg bg-indigo-600 text-white font-semibold px-6 py-3 hover:bg-indigo-700"),
					cmp.Text("Go to your dashboards"),
				),
			),
			cmp.If(!authenticated, cmp.Group{
				g.A(
					g.Href("/app/register"),
					g.Class("rounded-lg bg-indigo-600 text-white font-semibold px-6 py-3 hover:bg-indigo-700"),
					cmp.Text("Get started"),
				),
				g.A(
					g.Href("/app/login"),
					g.Class("rounded-lg border border-gray-300 text-gray-700 font-semibold px-6 py-3 hover:bg-gray-100"),
					cmp.Text("Log in"),
				),
			}),
		),
	)
}
