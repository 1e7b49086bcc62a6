package pages

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/domain"
)

// Files renders the uploaded-files page with the upload form.
func Files(files []domain.File) cmp.Node {
	return g.Div(
		g.H1(g.Class("text-3xl font-bold mb-6"), cmp.Text("Your files")),
		g.Form(
			g.Method("post"), g.Action("/app/files"),
			g.EncType("multipart/form-data"),
			g.Class("bg-white rounded-xl shadow p-5 mb-6 flex items-end gap-3"),
			g.Div(
				g.Class("flex-1"),
				g.Label(g.For("file"), g.Class("block text-sm font-medium text-gray-700 mb-1"), cmp.Text("File")),
				g.Input(g.Type("file"), g.Name("file"), g.ID("file"), g.Class("w-full")),
			),
			g.Div(
				g.Label(g.For("category"), g.Class("block text-sm font-medium text-gray-700 mb-1"), cmp.Text("Category")),
				g.Select(
					g.Name("category"), g.ID("category"),
					g.Class("rounded-lg border border-gray-300 px-3 py-2"),
					g.Option(g.Value("avatar"), cmp.Text("Avatar")),
					g.Option(g.Value("project"), cmp.Text("Project")),
					g.Option(g.Value("document"), cmp.Text("Document")),
				),
			),
			g.Button(
				g.Type("submit"),
				g.Class("rounded-lg bg-indigo-600 text-white font-semibold px-5 py-2 hover:bg-indigo-700"),
				cmp.Text("Upload"),
			),
		),
		fileTable(files),
	)
}

func fileTable(files []domain.File) cmp.Node {
	if len(files) == 0 {
		return g.P(g.Class("text-gray-500"), cmp.Text("No files uploaded yet."))
	}
	return g.Table(
		g.Class("w-full bg-white rounded-xl shadow overflow-hidden text-sm"),
		g.THead(
			g.Class("bg-gray-100 text-left text-gray-600"),
			g.Tr(
				g.Th(g.Class("px-4 py-2"), cmp.Text("Filename")),
				g.Th(g.Class("px-4 py-2"), cmp.Text("Category")),
				g.Th(g.Class("px-4 py-2"), cmp.Text("Size")),
				g.Th(g.Class("px-4 py-2")),
			),
		),
		g.TBody(
			cmp.Map(files, func(f domain.File) cmp.Node {
				return g.Tr(
					g.Class("border-t border-gray-100"),
					g.Td(g.Class("px-4 py-2 font-medium"), cmp.Text(f.Filename)),
					g.Td(g.Class("px-4 py-2 text-gray-500"), cmp.Text(f.Category)),
					g.Td(g.Class("px-4 py-2 text-gray-500"), cmp.Text(formatSize(f.Size))),
					g.Td(
						g.Class("px-4 py-2 text-right"),
						g.A(
							g.Href("/app/files/"+f.ID+"/download"),
							g.Class("text-indigo-600 hover:underline mr-3"),
							cmp.Text("Download"),
						),
						g.Button(
							hx.Delete("/app/files/"+f.ID),
							hx.Confirm("Delete "+f.Filename+"?"),
							g.Class("text-red-600 hover:underline"),
							cmp.Text("Delete"),
						),
					),
				)
			}),
		),
	)
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return strconv.FormatInt(size>>20, 10) + " MB"
	case size >= 1<<10:
		return strconv.FormatInt(size>>10, 10) + " KB"
	case size > 0:
		return strconv.FormatInt(size, 10) + " B"
	}
	return "—"
}
