package pages

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/highlights"
)

// PortfolioData drives the portfolio pipeline page.
type PortfolioData struct {
	Blueprint *domain.Blueprint
	Status    *domain.PortfolioStatus
	Readiness highlights.Readiness
	Insights  []highlights.Detail
}

// Portfolio renders the blueprint, readiness and publish controls.
func Portfolio(data PortfolioData) cmp.Node {
	return g.Div(
		g.H1(g.Class("text-3xl font-bold mb-6"), cmp.Text("Portfolio pipeline")),
		g.Div(
			g.Class("grid lg:grid-cols-2 gap-6"),
			blueprintPanel(data.Blueprint),
			g.Div(
				g.Class("space-y-6"),
				readinessPanel(data.Readiness),
				insightsPanel(data.Insights),
				publishPanel(data.Status),
			),
		),
	)
}

func blueprintPanel(bp *domain.Blueprint) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Blueprint")),
		cmp.If(bp == nil,
			g.P(g.Class("text-sm text-gray-400"), cmp.Text("No blueprint yet. Upload and analyze a resume first.")),
		),
		cmp.If(bp != nil, blueprintBody(bp)),
	)
}

func blueprintBody(bp *domain.Blueprint) cmp.Node {
	if bp == nil {
		return nil
	}
	return cmp.Group{
		cmp.If(bp.Headline != "", g.Div(g.Class("font-medium mb-1"), cmp.Text(bp.Headline))),
		cmp.If(bp.Summary != "", g.P(g.Class("text-gray-600 text-sm"), cmp.Text(bp.Summary))),
		g.Form(
			g.Method("post"), g.Action("/app/portfolio/draft"),
			g.Class("mt-4"),
			g.Button(
				g.Type("submit"),
				g.Class("rounded-lg bg-indigo-600 text-white font-semibold px-4 py-2 hover:bg-indigo-700"),
				cmp.Text("Draft portfolio from blueprint"),
			),
		),
	}
}

func readinessPanel(r highlights.Readiness) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Readiness")),
		g.Div(
			g.Class("flex items-center gap-3 mb-3"),
			g.Div(
				g.Class("text-3xl font-bold text-indigo-700"),
				cmp.Text(strconv.Itoa(r.Percent)+"%"),
			),
			cmp.If(r.Ready,
				g.Span(g.Class("text-xs rounded-full bg-green-100 text-green-700 px-2 py-0.5"), cmp.Text("Ready to publish")),
			),
		),
		cmp.If(r.Summary != "", g.P(g.Class("text-sm text-gray-600 mb-3"), cmp.Text(r.Summary))),
		cmp.If(len(r.Missing) > 0, missingList(r.Missing)),
	)
}

func missingList(missing []highlights.Requirement) cmp.Node {
	return g.Div(
		g.Div(g.Class("text-sm font-medium text-gray-700 mb-1"), cmp.Text("Still missing")),
		g.Ul(
			g.Class("text-sm text-gray-500 space-y-1"),
			cmp.Map(missing, func(req highlights.Requirement) cmp.Node {
				return g.Li(cmp.Text("· " + req.Label))
			}),
		),
	)
}

func insightsPanel(insights []highlights.Detail) cmp.Node {
	if len(insights) == 0 {
		return nil
	}
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Profile insights")),
		g.Ul(
			g.Class("text-sm text-gray-600 space-y-2"),
			cmp.Map(insights, func(d highlights.Detail) cmp.Node {
				return g.Li(cmp.Text(d.Text))
			}),
		),
	)
}

func publishPanel(status *domain.PortfolioStatus) cmp.Node {
	published := status != nil && status.Published
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Publishing")),
		cmp.If(published,
			g.P(g.Class("text-sm text-green-700 mb-3"), cmp.Text("Your portfolio is live.")),
		),
		cmp.If(!published,
			g.P(g.Class("text-sm text-gray-500 mb-3"), cmp.Text("Your portfolio is not published yet.")),
		),
		g.Button(
			hx.Post("/app/portfolio/publish"),
			hx.Confirm("Publish the current draft?"),
			g.Class("rounded-lg bg-indigo-600 text-white font-semibold px-4 py-2 hover:bg-indigo-700"),
			cmp.Text("Publish"),
		),
	)
}
