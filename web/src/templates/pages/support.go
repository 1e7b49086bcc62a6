package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/highlights"
)

// SupportData feeds the career-support page. MatchReport and CopilotReply
// are filled in when the corresponding form was just submitted.
type SupportData struct {
	Highlights     highlights.Highlights
	JobDescription string
	MatchReport    string
	CopilotMessage string
	CopilotReply   string
}

// Support renders the AI career-support page: highlights, talking points,
// momentum, and the job-match and copilot forms.
func Support(data SupportData) cmp.Node {
	return g.Div(
		g.H1(g.Class("text-3xl font-bold mb-6"), cmp.Text("Career support")),
		g.Div(
			g.Class("grid lg:grid-cols-2 gap-6"),
			momentsPanel(data.Highlights.Moments),
			g.Div(
				g.Class("space-y-6"),
				talkingPointsPanel(data.Highlights.TalkingPoints),
				momentumPanel(data.Highlights.Momentum),
			),
			jobMatchPanel(data),
			copilotPanel(data),
		),
	)
}

func momentsPanel(moments []highlights.Moment) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Career moments")),
		cmp.If(len(moments) == 0,
			g.P(g.Class("text-sm text-gray-400"), cmp.Text("Nothing surfaced yet. Upload a resume to get started.")),
		),
		g.Ul(
			g.Class("space-y-3"),
			cmp.Map(moments, func(m highlights.Moment) cmp.Node {
				return g.Li(
					cmp.If(m.Title != "", g.Div(g.Class("font-medium"), cmp.Text(m.Title))),
					cmp.If(!m.Detail.Empty(),
						g.Div(g.Class("text-sm text-gray-600"), cmp.Text(m.Detail.Text)),
					),
				)
			}),
		),
	)
}

func talkingPointsPanel(points []highlights.TalkingPoint) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Talking points")),
		cmp.If(len(points) == 0,
			g.P(g.Class("text-sm text-gray-400"), cmp.Text("No talking points yet.")),
		),
		g.Ul(
			g.Class("space-y-2"),
			cmp.Map(points, func(p highlights.TalkingPoint) cmp.Node {
				return g.Li(
					g.Div(cmp.Text(p.Text.Text)),
					cmp.If(!p.Context.Empty(),
						g.Div(g.Class("text-sm text-gray-500"), cmp.Text(p.Context.Text)),
					),
				)
			}),
		),
	)
}

func momentumPanel(momentum highlights.Detail) cmp.Node {
	if momentum.Empty() {
		return nil
	}
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Momentum")),
		g.P(g.Class("text-gray-700"), cmp.Text(momentum.Text)),
	)
}

func jobMatchPanel(data SupportData) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Job match")),
		g.Form(
			g.Method("post"),
			g.Action("/app/support/match"),
			g.Textarea(
				g.Name("jobDescription"),
				g.Class("w-full border rounded p-2 text-sm"),
				g.Rows("6"),
				g.Placeholder("Paste a job description to score your profile against it"),
				cmp.Text(data.JobDescription),
			),
			g.Div(g.Class("mt-3"), submitButton("Run match")),
		),
		cmp.If(data.MatchReport != "",
			g.Pre(
				g.Class("mt-4 bg-gray-50 rounded p-3 text-xs overflow-x-auto"),
				cmp.Text(data.MatchReport),
			),
		),
	)
}

func copilotPanel(data SupportData) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-5"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text("Career copilot")),
		g.Form(
			g.Method("post"),
			g.Action("/app/support/ask"),
			g.Div(
				g.Class("flex gap-2"),
				g.Input(
					g.Type("text"),
					g.Name("message"),
					g.Class("flex-1 border rounded p-2 text-sm"),
					g.Placeholder("Ask anything about your career"),
					g.Value(data.CopilotMessage),
				),
				submitButton("Ask"),
			),
		),
		cmp.If(data.CopilotReply != "",
			g.P(g.Class("mt-4 text-gray-700 whitespace-pre-wrap"), cmp.Text(data.CopilotReply)),
		),
	)
}
