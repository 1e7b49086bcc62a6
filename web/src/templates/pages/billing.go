package pages

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/domain"
)

// BillingData drives the billing page.
type BillingData struct {
	Plans       []domain.Plan
	CurrentPlan *domain.Plan
}

// Billing renders the plan comparison and upgrade/cancel forms.
func Billing(data BillingData) cmp.Node {
	return g.Div(
		g.H1(g.Class("text-3xl font-bold mb-6"), cmp.Text("Billing")),
		g.Div(
			g.Class("grid md:grid-cols-3 gap-4"),
			cmp.Map(data.Plans, func(p domain.Plan) cmp.Node {
				return planCard(p, data.CurrentPlan)
			}),
		),
		cmp.If(data.CurrentPlan != nil,
			g.Form(
				g.Method("post"), g.Action("/app/billing/cancel"),
				g.Class("mt-8"),
				g.Button(
					g.Type("submit"),
					g.Class("text-sm text-red-600 hover:underline"),
					cmp.Text("Cancel subscription"),
				),
			),
		),
	)
}

func planCard(p domain.Plan, current *domain.Plan) cmp.Node {
	isCurrent := current != nil && current.Name == p.Name
	limit := domain.DashboardLimitFor(&p)
	limitLabel := "Unlimited dashboards"
	if limit != domain.UnlimitedDashboards {
		limitLabel = strconv.Itoa(limit) + " dashboard"
		if limit != 1 {
			limitLabel += "s"
		}
	}
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-6 flex flex-col"),
		g.H2(g.Class("text-xl font-bold mb-1"), cmp.Text(p.Name)),
		g.P(g.Class("text-sm text-gray-500 mb-4"), cmp.Text(limitLabel)),
		g.Ul(
			g.Class("text-sm text-gray-700 space-y-1 mb-6 flex-1"),
			cmp.Map(p.Features, func(f string) cmp.Node {
				return g.Li(cmp.Text("· " + f))
			}),
		),
		cmp.If(isCurrent,
			g.Div(
				g.Class("text-center text-sm font-semibold text-gray-400 py-2"),
				cmp.Text("Current plan"),
			),
		),
		cmp.If(!isCurrent,
			g.Form(
				g.Method("post"), g.Action("/app/billing/upgrade"),
				g.Input(g.Type("hidden"), g.Name("planTier"), g.Value(p.Tier)),
				g.Button(
					g.Type("submit"),
					g.Class("w-full rounded-lg bg-indigo-600 text-white font-semibold py-2 hover:bg-indigo-700"),
					cmp.Text("Switch to "+p.Name),
				),
			),
		),
	)
}
