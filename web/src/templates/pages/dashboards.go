package pages

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/domain"
)

// DashboardListData drives the dashboards overview page.
type DashboardListData struct {
	Dashboards []domain.Dashboard
	PlanLimit  int
	CanCreate  bool
	PlanName   string
}

// Dashboards renders the dashboards overview with the create form.
func Dashboards(data DashboardListData) cmp.Node {
	return g.Div(
		g.Div(
			g.Class("flex items-center justify-between mb-6"),
			g.H1(g.Class("text-3xl font-bold"), cmp.Text("Your dashboards")),
			planBadge(data),
		),
		createForm(data.CanCreate),
		cmp.If(data.CanCreate, generateForm()),
		g.Div(
			g.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-4 mt-6"),
			cmp.Map(data.Dashboards, dashboardCard),
		),
		cmp.If(len(data.Dashboards) == 0,
			g.P(g.Class("text-gray-500 mt-6"), cmp.Text("No dashboards yet. Create your first one above.")),
		),
	)
}

func planBadge(data DashboardListData) cmp.Node {
	label := "Unlimited dashboards"
	if data.PlanLimit != domain.UnlimitedDashboards {
		label = strconv.Itoa(len(data.Dashboards)) + " of " + strconv.Itoa(data.PlanLimit) + " dashboards"
	}
	name := data.PlanName
	if name == "" {
		name = "Free"
	}
	return g.Div(
		g.Class("text-sm text-gray-500"),
		g.Span(g.Class("font-semibold text-gray-700"), cmp.Text(name)),
		cmp.Text(" · "+label),
	)
}

func createForm(canCreate bool) cmp.Node {
	if !canCreate {
		return g.Div(
			g.Class("rounded-lg bg-amber-50 border border-amber-200 text-amber-800 px-4 py-3"),
			cmp.Text("You've reached your plan's dashboard limit. "),
			g.A(g.Href("/app/billing"), g.Class("underline font-semibold"), cmp.Text("Upgrade to add more.")),
		)
	}
	return g.Form(
		g.Method("post"), g.Action("/app/dashboards"),
		g.Class("flex gap-3"),
		g.Input(
			g.Type("text"), g.Name("title"), g.Placeholder("New dashboard title"),
			g.Class("flex-1 rounded-lg border border-gray-300 px-3 py-2"),
		),
		g.Button(
			g.Type("submit"),
			g.Class("rounded-lg bg-indigo-600 text-white font-semibold px-5 hover:bg-indigo-700"),
			cmp.Text("Create"),
		),
	)
}

func generateForm() cmp.Node {
	return g.Form(
		g.Method("post"), g.Action("/app/dashboards/generate"),
		g.Class("flex gap-3 mt-3"),
		g.Input(
			g.Type("text"), g.Name("prompt"),
			g.Placeholder("Or describe a dashboard and let the agent build it"),
			g.Class("flex-1 rounded-lg border border-gray-300 px-3 py-2"),
		),
		g.Button(
			g.Type("submit"),
			g.Class("rounded-lg border border-indigo-600 text-indigo-600 font-semibold px-5 hover:bg-indigo-50"),
			cmp.Text("Generate"),
		),
	)
}

func dashboardCard(d domain.Dashboard) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.Div(
			g.Class("flex items-start justify-between"),
			g.H2(g.Class("text-lg font-semibold"), cmp.Text(d.Title)),
			cmp.If(d.IsPrimary,
				g.Span(g.Class("text-xs rounded-full bg-indigo-100 text-indigo-700 px-2 py-0.5"), cmp.Text("Primary")),
			),
		),
		g.Div(g.Class("text-sm text-gray-500 mb-4"), cmp.Text("/"+d.Slug+" · "+string(visibilityOrDraft(d)))),
		g.Div(
			g.Class("flex gap-2 text-sm"),
			g.A(
				g.Href("/app/dashboards/"+d.Slug),
				g.Class("rounded-lg border border-gray-300 px-3 py-1.5 hover:bg-gray-100"),
				cmp.Text("Edit"),
			),
			cmp.If(!d.IsPrimary,
				g.Button(
					hx.Post("/app/dashboards/"+d.ID+"/primary"),
					g.Class("rounded-lg border border-gray-300 px-3 py-1.5 hover:bg-gray-100"),
					cmp.Text("Make primary"),
				),
			),
			g.Button(
				hx.Delete("/app/dashboards/"+d.ID),
				hx.Confirm("Delete this dashboard? This cannot be undone."),
				g.Class("rounded-lg border border-red-200 text-red-600 px-3 py-1.5 hover:bg-red-50"),
				cmp.Text("Delete"),
			),
		),
	)
}

func visibilityOrDraft(d domain.Dashboard) domain.Visibility {
	if d.Visibility == "" {
		return domain.VisibilityDraft
	}
	return d.Visibility
}

// DashboardEditData drives the single-dashboard editor.
type DashboardEditData struct {
	Dashboard domain.Dashboard
	Templates []domain.Template
	ActiveTab string
}

// DashboardEditor renders the per-dashboard editing page.
func DashboardEditor(data DashboardEditData) cmp.Node {
	d := data.Dashboard
	return g.Div(
		g.H1(g.Class("text-3xl font-bold mb-2"), cmp.Text(d.Title)),
		g.Div(g.Class("text-gray-500 mb-6"), cmp.Text("/"+d.Slug)),

		g.Div(
			g.Class("grid lg:grid-cols-3 gap-6"),
			g.Div(
				g.Class("lg:col-span-2 space-y-6"),
				editorSection("Skills", skillRows(d)),
				editorSection("Projects", projectRows(d)),
				editorSection("Experience", experienceRows(d)),
				editorSection("Education", educationRows(d)),
				editorSection("Links", linkRows(d)),
			),
			g.Div(
				g.Class("space-y-6"),
				visibilityPanel(d),
				templatePanel(d, data.Templates),
			),
		),
	)
}

func editorSection(title string, rows cmp.Node) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text(title)),
		rows,
	)
}

func skillRows(d domain.Dashboard) cmp.Node {
	if len(d.Skills) == 0 {
		return emptyRow("No skills yet.")
	}
	return g.Ul(
		g.Class("space-y-1 text-gray-700"),
		cmp.Map(d.Skills, func(s domain.Skill) cmp.Node {
			label := s.Name
			if s.Level != "" {
				label += " · " + s.Level
			}
			return g.Li(cmp.Text(label))
		}),
	)
}

func projectRows(d domain.Dashboard) cmp.Node {
	if len(d.Projects) == 0 {
		return emptyRow("No projects yet.")
	}
	return g.Ul(
		g.Class("space-y-2"),
		cmp.Map(d.Projects, func(p domain.Project) cmp.Node {
			return g.Li(
				g.Div(g.Class("font-medium"), cmp.Text(p.Title)),
				cmp.If(p.Description != "",
					g.Div(g.Class("text-sm text-gray-500"), cmp.Text(p.Description)),
				),
			)
		}),
	)
}

func experienceRows(d domain.Dashboard) cmp.Node {
	if len(d.Experiences) == 0 {
		return emptyRow("No experience entries yet.")
	}
	return g.Ul(
		g.Class("space-y-2"),
		cmp.Map(d.Experiences, func(e domain.Experience) cmp.Node {
			return g.Li(
				g.Div(g.Class("font-medium"), cmp.Text(e.RoleName+" at "+e.Company)),
				g.Div(g.Class("text-sm text-gray-500"), cmp.Text(e.Start+" – "+e.End)),
			)
		}),
	)
}

func educationRows(d domain.Dashboard) cmp.Node {
	if len(d.Education) == 0 {
		return emptyRow("No education entries yet.")
	}
	return g.Ul(
		g.Class("space-y-2"),
		cmp.Map(d.Education, func(e domain.Education) cmp.Node {
			return g.Li(
				g.Div(g.Class("font-medium"), cmp.Text(e.School)),
				g.Div(g.Class("text-sm text-gray-500"), cmp.Text(e.Degree)),
			)
		}),
	)
}

func linkRows(d domain.Dashboard) cmp.Node {
	if len(d.Links) == 0 {
		return emptyRow("No links yet.")
	}
	return g.Ul(
		g.Class("space-y-1"),
		cmp.Map(d.Links, func(l domain.Link) cmp.Node {
			return g.Li(
				g.A(g.Href(l.URL), g.Class("text-indigo-600 hover:underline"), cmp.Text(l.Label)),
			)
		}),
	)
}

func emptyRow(text string) cmp.Node {
	return g.P(g.Class("text-sm text-gray-400"), cmp.Text(text))
}

func visibilityPanel(d domain.Dashboard) cmp.Node {
	options := []domain.Visibility{
		domain.VisibilityPublic,
		domain.VisibilityUnlisted,
		domain.VisibilityPrivate,
		domain.VisibilityDraft,
	}
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Visibility")),
		g.Form(
			g.Method("post"), g.Action("/app/dashboards/"+d.ID+"/visibility"),
			g.Class("space-y-3"),
			g.Select(
				g.Name("visibility"),
				g.Class("w-full rounded-lg border border-gray-300 px-3 py-2"),
				cmp.Map(options, func(v domain.Visibility) cmp.Node {
					return g.Option(
						g.Value(string(v)),
						cmp.If(v == visibilityOrDraft(d), g.Selected()),
						cmp.Text(string(v)),
					)
				}),
			),
			g.Button(
				g.Type("submit"),
				g.Class("w-full rounded-lg bg-indigo-600 text-white font-semibold py-2 hover:bg-indigo-700"),
				cmp.Text("Update visibility"),
			),
		),
	)
}

func templatePanel(d domain.Dashboard, templates []domain.Template) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Template")),
		g.Form(
			g.Method("post"), g.Action("/app/dashboards/"+d.ID+"/template"),
			g.Class("space-y-3"),
			g.Select(
				g.Name("templateId"),
				g.Class("w-full rounded-lg border border-gray-300 px-3 py-2"),
				cmp.Map(templates, func(t domain.Template) cmp.Node {
					label := t.Name
					if t.IsPremium {
						label += " (premium)"
					}
					return g.Option(
						g.Value(t.ID),
						cmp.If(t.ID == d.TemplateID, g.Selected()),
						cmp.Text(label),
					)
				}),
			),
			g.Button(
				g.Type("submit"),
				g.Class("w-full rounded-lg border border-gray-300 font-semibold py-2 hover:bg-gray-100"),
				cmp.Text("Apply template"),
			),
		),
	)
}
