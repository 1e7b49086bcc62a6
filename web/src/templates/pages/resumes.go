package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/domain"
)

// Resumes renders the resume list with upload and analyze actions.
func Resumes(resumes []domain.Resume) cmp.Node {
	return g.Div(
		g.H1(g.Class("text-3xl font-bold mb-6"), cmp.Text("Your resumes")),
		g.Form(
			g.Method("post"), g.Action("/app/resumes"),
			g.EncType("multipart/form-data"),
			g.Class("bg-white rounded-xl shadow p-5 mb-6 flex items-end gap-3"),
			g.Div(
				g.Class("flex-1"),
				g.Label(g.For("resume"), g.Class("block text-sm font-medium text-gray-700 mb-1"), cmp.Text("Resume (PDF)")),
				g.Input(g.Type("file"), g.Name("resume"), g.ID("resume"), g.Class("w-full")),
			),
			g.Button(
				g.Type("submit"),
				g.Class("rounded-lg bg-indigo-600 text-white font-semibold px-5 py-2 hover:bg-indigo-700"),
				cmp.Text("Upload"),
			),
		),
		resumeList(resumes),
	)
}

func resumeList(resumes []domain.Resume) cmp.Node {
	if len(resumes) == 0 {
		return g.P(g.Class("text-gray-500"), cmp.Text("No resumes uploaded yet."))
	}
	return g.Div(
		g.Class("space-y-3"),
		cmp.Map(resumes, func(r domain.Resume) cmp.Node {
			return g.Div(
				g.Class("bg-white rounded-xl shadow p-4 flex items-center justify-between"),
				g.Div(
					g.Div(g.Class("font-medium"), cmp.Text(r.Filename)),
					cmp.If(r.Status != "",
						g.Div(g.Class("text-sm text-gray-500"), cmp.Text(r.Status)),
					),
				),
				g.Div(
					g.Class("flex gap-3 text-sm"),
					g.A(
						g.Href("/app/resumes/"+r.ID+"/download"),
						g.Class("text-indigo-600 hover:underline"),
						cmp.Text("Download"),
					),
					g.Button(
						hx.Post("/app/resumes/"+r.ID+"/analyze"),
						g.Class("rounded-lg bg-indigo-600 text-white px-3 py-1.5 hover:bg-indigo-700"),
						cmp.Text("Analyze"),
					),
				),
			)
		}),
	)
}
