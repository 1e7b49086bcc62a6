package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/domain"
)

// AdminUsers renders the admin account management table.
func AdminUsers(users []domain.User) cmp.Node {
	return g.Div(
		g.H1(g.Class("text-3xl font-bold mb-6"), cmp.Text("Accounts")),
		g.Table(
			g.Class("w-full bg-white rounded-xl shadow overflow-hidden text-sm"),
			g.THead(
				g.Class("bg-gray-100 text-left text-gray-600"),
				g.Tr(
					g.Th(g.Class("px-4 py-2"), cmp.Text("Email")),
					g.Th(g.Class("px-4 py-2"), cmp.Text("Handle")),
					g.Th(g.Class("px-4 py-2"), cmp.Text("Plan")),
					g.Th(g.Class("px-4 py-2"), cmp.Text("Role")),
					g.Th(g.Class("px-4 py-2")),
				),
			),
			g.TBody(cmp.Map(users, adminUserRow)),
		),
	)
}

func adminUserRow(u domain.User) cmp.Node {
	planName := "—"
	if u.Plan != nil {
		planName = u.Plan.Name
	}
	return g.Tr(
		g.Class("border-t border-gray-100"),
		g.Td(g.Class("px-4 py-2 font-medium"), cmp.Text(u.Email)),
		g.Td(g.Class("px-4 py-2 text-gray-500"), cmp.Text("@"+u.Handle)),
		g.Td(
			g.Class("px-4 py-2"),
			g.Form(
				g.Method("post"), g.Action("/app/admin/users/"+u.ID+"/plan"),
				g.Class("flex gap-2"),
				g.Select(
					g.Name("plan"),
					g.Class("rounded border border-gray-300 px-2 py-1"),
					planOption("Free", planName),
					planOption("Growth", planName),
					planOption("Scale", planName),
				),
				g.Button(g.Type("submit"), g.Class("text-indigo-600 hover:underline"), cmp.Text("Set")),
			),
		),
		g.Td(g.Class("px-4 py-2 text-gray-500"), cmp.Text(u.Role)),
		g.Td(
			g.Class("px-4 py-2 text-right"),
			g.Button(
				hx.Post("/app/admin/users/"+u.ID+"/block"),
				g.Class("text-amber-600 hover:underline mr-3"),
				cmp.Text("Block"),
			),
			g.Button(
				hx.Delete("/app/admin/users/"+u.ID),
				hx.Confirm("Delete account "+u.Email+"? This cannot be undone."),
				g.Class("text-red-600 hover:underline"),
				cmp.Text("Delete"),
			),
		),
	)
}

func planOption(name, current string) cmp.Node {
	return g.Option(
		g.Value(name),
		cmp.If(name == current, g.Selected()),
		cmp.Text(name),
	)
}
