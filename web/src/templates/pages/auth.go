package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/openpersona/console/internal/view/dto/auth"
)

// Login renders the login form.
func Login(data auth.LoginData) cmp.Node {
	return authCard("Log in to OpenPersona",
		cmp.If(data.SessionExpired,
			g.Div(
				g.Class("rounded-lg bg-amber-50 border border-amber-200 text-amber-800 px-4 py-3 mb-4"),
				cmp.Text("Your session expired. Please log in again."),
			),
		),
		g.Form(
			g.Method("post"), g.Action("/app/login"),
			g.Class("space-y-4"),
			textField("email", "Email", "email", data.Email),
			textField("password", "Password", "password", ""),
			submitButton("Log in"),
		),
		g.Div(
			g.Class("mt-4 text-sm text-gray-500 flex justify-between"),
			g.A(g.Href("/app/forgot-password"), g.Class("hover:text-indigo-700"), cmp.Text("Forgot password?")),
			g.A(g.Href("/app/register"), g.Class("hover:text-indigo-700"), cmp.Text("Create an account")),
		),
	)
}

// Register renders the signup form.
func Register(data auth.RegisterData) cmp.Node {
	return authCard("Create your account",
		g.Form(
			g.Method("post"), g.Action("/app/register"),
			g.Class("space-y-4"),
			textField("name", "Name", "text", data.Name),
			textField("handle", "Handle", "text", data.Handle),
			textField("email", "Email", "email", data.Email),
			textField("password", "Password", "password", ""),
			textField("password_confirm", "Confirm password", "password", ""),
			submitButton("Sign up"),
		),
		g.Div(
			g.Class("mt-4 text-sm text-gray-500"),
			g.A(g.Href("/app/login"), g.Class("hover:text-indigo-700"), cmp.Text("Already have an account? Log in")),
		),
	)
}

// ForgotPassword renders the reset-link request form.
func ForgotPassword(data auth.ForgotPasswordData) cmp.Node {
	return authCard("Reset your password",
		g.P(
			g.Class("text-gray-600 mb-4"),
			cmp.Text("Enter your email and we'll send you a link to reset your password."),
		),
		g.Form(
			g.Method("post"), g.Action("/app/forgot-password"),
			g.Class("space-y-4"),
			textField("email", "Email", "email", data.Email),
			submitButton("Send reset link"),
		),
	)
}

// ResetPassword renders the new-password form with the token hidden inside.
func ResetPassword(data auth.ResetPasswordData) cmp.Node {
	return authCard("Choose a new password",
		g.Form(
			g.Method("post"), g.Action("/app/reset-password"),
			g.Class("space-y-4"),
			g.Input(g.Type("hidden"), g.Name("token"), g.Value(data.Token)),
			textField("password", "New password", "password", ""),
			textField("password_confirm", "Confirm password", "password", ""),
			submitButton("Reset password"),
		),
	)
}

func authCard(heading string, children ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("max-w-md mx-auto mt-12"),
		g.Div(
			g.Class("bg-white shadow-xl rounded-xl p-8"),
			g.H1(g.Class("text-2xl font-bold text-gray-900 mb-6"), cmp.Text(heading)),
			cmp.Group(children),
		),
	)
}

func textField(name, label, typ, value string) cmp.Node {
	return g.Div(
		g.Label(g.For(name), g.Class("block text-sm font-medium text-gray-700 mb-1"), cmp.Text(label)),
		g.Input(
			g.Type(typ), g.Name(name), g.ID(name), g.Value(value),
			g.Class("w-full rounded-lg border border-gray-300 px-3 py-2 focus:outline-none focus:ring-2 focus:ring-indigo-500"),
		),
	)
}

func submitButton(label string) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Class("w-full rounded-lg bg-indigo-600 text-white font-semibold py-2.5 hover:bg-indigo-700"),
		cmp.Text(label),
	)
}
