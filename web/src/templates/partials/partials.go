// Package partials holds the shared page fragments: flash banners, the
// navigation shell, and toast notifications.
package partials

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/internal/view"
)

// NavData drives the navigation shell.
type NavData struct {
	Authenticated    bool
	IsAdmin          bool
	UserName         string
	SidebarCollapsed bool
}

// FlashBanner renders one-shot success and error messages.
func FlashBanner(flash view.FlashData) cmp.Node {
	if len(flash.Success) == 0 && len(flash.Error) == 0 {
		return nil
	}
	return g.Div(
		g.Class("space-y-2 mb-6"),
		cmp.Map(flash.Success, func(msg string) cmp.Node {
			return g.Div(
				g.Class("rounded-lg bg-green-50 border border-green-200 text-green-800 px-4 py-3"),
				cmp.Text(msg),
			)
		}),
		cmp.Map(flash.Error, func(msg string) cmp.Node {
			return g.Div(
				g.Class("rounded-lg bg-red-50 border border-red-200 text-red-800 px-4 py-3"),
				cmp.Text(msg),
			)
		}),
	)
}

// Toasts renders queued transient notifications. Each toast carries an
// htmx-powered dismiss button that removes it server-side.
func Toasts(notifications []session.Notification) cmp.Node {
	if len(notifications) == 0 {
		return nil
	}
	return g.Div(
		g.ID("toasts"),
		g.Class("fixed bottom-4 right-4 space-y-2 z-50"),
		cmp.Map(notifications, func(n session.Notification) cmp.Node {
			return g.Div(
				g.Class("toast-enter rounded-lg bg-gray-900 text-white px-4 py-3 shadow-lg flex items-center gap-3"),
				g.Div(
					g.Div(g.Class("font-semibold"), cmp.Text(n.Title)),
					cmp.If(n.Message != "",
						g.Div(g.Class("text-sm text-gray-300"), cmp.Text(n.Message)),
					),
				),
				g.Button(
					g.Class("text-gray-400 hover:text-white"),
					hx.Post("/app/notifications/"+n.ID+"/dismiss"),
					hx.Target("#toasts"),
					hx.Swap("outerHTML"),
					cmp.Text("✕"),
				),
			)
		}),
	)
}

// Nav renders the top navigation bar.
func Nav(data NavData) cmp.Node {
	return g.Nav(
		g.Class("bg-white border-b border-gray-200 px-6 py-3 flex items-center justify-between"),
		g.A(g.Href("/"), g.Class("text-xl font-bold text-indigo-700"), cmp.Text("OpenPersona")),
		g.Div(
			g.Class("flex items-center gap-4 text-sm text-gray-700"),
			cmp.If(data.Authenticated, authedLinks(data)),
			cmp.If(!data.Authenticated, anonLinks()),
		),
	)
}

func authedLinks(data NavData) cmp.Node {
	return cmp.Group{
		g.A(g.Href("/app/dashboards"), g.Class("hover:text-indigo-700"), cmp.Text("Dashboards")),
		g.A(g.Href("/app/files"), g.Class("hover:text-indigo-700"), cmp.Text("Files")),
		g.A(g.Href("/app/resumes"), g.Class("hover:text-indigo-700"), cmp.Text("Resumes")),
		g.A(g.Href("/app/portfolio"), g.Class("hover:text-indigo-700"), cmp.Text("Portfolio")),
		g.A(g.Href("/app/support"), g.Class("hover:text-indigo-700"), cmp.Text("Support")),
		g.A(g.Href("/app/templates"), g.Class("hover:text-indigo-700"), cmp.Text("Templates")),
		g.A(g.Href("/app/billing"), g.Class("hover:text-indigo-700"), cmp.Text("Billing")),
		cmp.If(data.IsAdmin,
			g.A(g.Href("/app/admin/users"), g.Class("text-amber-700 hover:text-amber-900"), cmp.Text("Admin")),
		),
		g.Span(g.Class("text-gray-400"), cmp.Text(data.UserName)),
		g.A(g.Href("/app/logout"), g.Class("text-gray-500 hover:text-gray-900"), cmp.Text("Log out")),
	}
}

func anonLinks() cmp.Node {
	return cmp.Group{
		g.A(g.Href("/app/login"), g.Class("hover:text-indigo-700"), cmp.Text("Log in")),
		g.A(g.Href("/app/register"), g.Class("rounded-lg bg-indigo-600 text-white px-3 py-1.5 hover:bg-indigo-700"), cmp.Text("Sign up")),
	}
}
