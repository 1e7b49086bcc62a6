package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/domain"
)

// PublicProfile renders a user's public profile page at /@handle.
// The profile may be nil when the backend read failed; public pages degrade
// to an empty state instead of flashing errors at anonymous visitors.
func PublicProfile(handle string, profile *domain.PublicProfile) cmp.Node {
	if profile == nil {
		return g.Div(
			g.Class("max-w-xl mx-auto mt-16 text-center"),
			g.H1(g.Class("text-2xl font-bold mb-2"), cmp.Text("@"+handle)),
			g.P(g.Class("text-gray-500"), cmp.Text("This profile is not available right now.")),
		)
	}
	return g.Div(
		g.Class("max-w-3xl mx-auto"),
		g.H1(g.Class("text-4xl font-extrabold mb-1"), cmp.Text(displayName(profile))),
		g.Div(g.Class("text-gray-500 mb-2"), cmp.Text("@"+profile.Handle)),
		cmp.If(profile.Headline != "",
			g.P(g.Class("text-lg text-gray-700 mb-8"), cmp.Text(profile.Headline)),
		),
		g.Div(
			g.Class("grid md:grid-cols-2 gap-4"),
			cmp.Map(profile.Dashboards, func(d domain.Dashboard) cmp.Node {
				return g.A(
					g.Href("/@"+profile.Handle+"/"+d.Slug),
					g.Class("bg-white rounded-xl shadow p-5 hover:shadow-md"),
					g.H2(g.Class("text-lg font-semibold"), cmp.Text(d.Title)),
				)
			}),
		),
		cmp.If(len(profile.Dashboards) == 0,
			g.P(g.Class("text-gray-400"), cmp.Text("No public dashboards yet.")),
		),
	)
}

func displayName(profile *domain.PublicProfile) string {
	if profile.Name != "" {
		return profile.Name
	}
	return profile.Handle
}

// PublicDashboard renders one public dashboard in read-only form.
func PublicDashboard(handle string, dashboard *domain.Dashboard) cmp.Node {
	if dashboard == nil {
		return g.Div(
			g.Class("max-w-xl mx-auto mt-16 text-center"),
			g.P(g.Class("text-gray-500"), cmp.Text("This dashboard is not available right now.")),
		)
	}
	return g.Div(
		g.Class("max-w-3xl mx-auto"),
		g.Div(g.Class("text-gray-500 mb-1"), cmp.Text("@"+handle)),
		g.H1(g.Class("text-4xl font-extrabold mb-8"), cmp.Text(dashboard.Title)),
		g.Div(
			g.Class("space-y-6"),
			cmp.If(len(dashboard.Skills) > 0, editorSection("Skills", skillRows(*dashboard))),
			cmp.If(len(dashboard.Projects) > 0, editorSection("Projects", projectRows(*dashboard))),
			cmp.If(len(dashboard.Experiences) > 0, editorSection("Experience", experienceRows(*dashboard))),
			cmp.If(len(dashboard.Education) > 0, editorSection("Education", educationRows(*dashboard))),
			cmp.If(len(dashboard.Links) > 0, editorSection("Links", linkRows(*dashboard))),
		),
	)
}
