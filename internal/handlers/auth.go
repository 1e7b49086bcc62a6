package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/middleware"
	appsession "github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/internal/view"
	"github.com/openpersona/console/internal/view/dto/auth"
	"github.com/openpersona/console/web/src/templates/pages"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	api   *apiclient.Client
	store *appsession.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(api *apiclient.Client, store *appsession.Store) *AuthHandler {
	return &AuthHandler{api: api, store: store}
}

// LoginGet renders the login page (GET /app/login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	data := auth.LoginData{
		Email:          consumeFormEmail(c),
		SessionExpired: c.QueryParam("session") == "expired",
	}
	return render(c, h.store, "Login", pages.Login(data))
}

// LoginPost exchanges the submitted credentials for a backend session.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	// 1. Bind and validate the submission before any network call.
	var form auth.LoginForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Invalid request format.")
		return c.Redirect(http.StatusSeeOther, "/app/login")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, validationMessage(err))
		stashFormEmail(c, form.Email)
		return c.Redirect(http.StatusSeeOther, "/app/login")
	}

	creds := apiclient.Credentials{
		Email:    form.Email,
		Password: form.Password,
	}

	backendSession, err := h.api.Auth.Login(c.Request().Context(), creds)
	if err != nil {
		logger := middleware.FromContext(c.Request().Context())
		logger.Warn("Failed login attempt", "email", creds.Email, "error", err)

		if apiclient.IsUnauthorized(err) || apiclient.IsStatus(err, http.StatusBadRequest) {
			view.SetFlashError(c, "Invalid email or password.")
		} else {
			view.SetFlashError(c, "Could not reach the server. Please try again.")
		}

		// Preserve the submitted email for the next render of the form.
		stashFormEmail(c, creds.Email)
		return c.Redirect(http.StatusSeeOther, "/app/login")
	}

	h.store.SignIn(backendSession)

	view.SetFlashSuccess(c, "Logged in successfully!")
	return c.Redirect(http.StatusSeeOther, "/app/dashboards")
}

// RegisterGet renders the registration page (GET /app/register).
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	data := auth.RegisterData{
		Email: consumeFormEmail(c),
	}
	return render(c, h.store, "Register", pages.Register(data))
}

// RegisterPost handles the form submission for creating a new account.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	// 1. Bind and validate the submission before any network call.
	var form auth.RegisterForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Invalid request format.")
		return c.Redirect(http.StatusSeeOther, "/app/register")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, validationMessage(err))
		stashFormEmail(c, form.Email)
		return c.Redirect(http.StatusSeeOther, "/app/register")
	}

	creds := apiclient.Credentials{
		Email:    form.Email,
		Password: form.Password,
		Name:     form.Name,
	}

	backendSession, err := h.api.Auth.Register(c.Request().Context(), creds)
	if err != nil {
		logger := middleware.FromContext(c.Request().Context())

		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			view.SetFlashError(c, "An account with this email already exists.")
		} else {
			logger.Error("Error creating account", "error", err)
			view.SetFlashError(c, "Could not create your account.")
		}
		stashFormEmail(c, form.Email)
		return c.Redirect(http.StatusSeeOther, "/app/register")
	}

	h.store.SignIn(backendSession)

	view.SetFlashSuccess(c, "Account created successfully!")
	return c.Redirect(http.StatusSeeOther, "/app/dashboards")
}

// Logout clears the local session and tells the backend to drop it.
func (h *AuthHandler) Logout(c echo.Context) error {
	// Best-effort: the local session is wiped even if the backend call
	// fails, since the token is gone either way.
	if err := h.api.Auth.Logout(c.Request().Context()); err != nil {
		logger := middleware.FromContext(c.Request().Context())
		logger.Warn("Backend logout failed", "error", err)
	}
	h.store.Logout()

	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/app/login")
}

// ForgotPasswordGet renders the reset-link request page.
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	return render(c, h.store, "Forgot Password", pages.ForgotPassword(auth.ForgotPasswordData{}))
}

// ForgotPasswordPost requests a reset email from the backend.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	email := c.FormValue("email")

	if err := h.api.Auth.ForgotPassword(c.Request().Context(), email); err != nil {
		// Show a generic message regardless, to avoid email enumeration.
		logger := middleware.FromContext(c.Request().Context())
		logger.Info("Forgot-password request failed, hiding from user", "email", email, "error", err)
	}

	view.SetFlashSuccess(c, "If an account with that email exists, a password reset link has been sent.")
	return c.Redirect(http.StatusSeeOther, "/app/forgot-password")
}

// ResetPasswordGet renders the new-password page (GET /app/reset-password?token=...).
func (h *AuthHandler) ResetPasswordGet(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		view.SetFlashError(c, "A valid reset token is required to change your password.")
		return c.Redirect(http.StatusSeeOther, "/app/forgot-password")
	}
	return render(c, h.store, "Reset Password", pages.ResetPassword(auth.ResetPasswordData{Token: token}))
}

// ResetPasswordPost completes the reset with the emailed token.
func (h *AuthHandler) ResetPasswordPost(c echo.Context) error {
	var form auth.ResetPasswordForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Invalid request format.")
		return c.Redirect(http.StatusSeeOther, "/app/forgot-password")
	}
	token := form.Token
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, validationMessage(err))
		if token == "" {
			return c.Redirect(http.StatusSeeOther, "/app/forgot-password")
		}
		return c.Redirect(http.StatusSeeOther, "/app/reset-password?token="+token)
	}

	if err := h.api.Auth.ResetPassword(c.Request().Context(), token, form.Password); err != nil {
		logger := middleware.FromContext(c.Request().Context())
		logger.Warn("Password reset failed", "error", err)
		view.SetFlashError(c, "Could not reset your password. The link may have expired.")
		return c.Redirect(http.StatusSeeOther, "/app/reset-password?token="+token)
	}

	view.SetFlashSuccess(c, "Your password has been reset. Please log in with your new password.")
	return c.Redirect(http.StatusSeeOther, "/app/login")
}

// stashFormEmail keeps the submitted email across a redirect so the form
// can be pre-filled on the next render.
func stashFormEmail(c echo.Context, email string) {
	sess, _ := session.Get("flash-session", c)
	sess.AddFlash(email, "form_email")
	_ = sess.Save(c.Request(), c.Response())
}

// consumeFormEmail retrieves and clears a stashed form email.
func consumeFormEmail(c echo.Context) string {
	var email string
	if sess, err := session.Get("flash-session", c); err == nil {
		if flashes := sess.Flashes("form_email"); len(flashes) > 0 {
			if val, ok := flashes[0].(string); ok {
				email = val
			}
		}
		// Save to persist the clearing of the consumed flash.
		_ = sess.Save(c.Request(), c.Response())
	}
	return email
}
