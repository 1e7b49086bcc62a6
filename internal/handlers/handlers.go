// Package handlers holds the echo handlers for the console's pages. Each
// handler fetches from the backend through the API client, folds results
// into the session store, and renders gomponents pages.
package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/internal/view"
	"github.com/openpersona/console/web/src/templates/layouts"
	"github.com/openpersona/console/web/src/templates/partials"
)

// render wraps page content in the base layout with flashes, nav state and
// queued toasts, and writes the response.
func render(c echo.Context, store *session.Store, title string, content cmp.Node) error {
	flashes := view.GetFlashData(c)

	nav := partials.NavData{
		Authenticated:    store.Authenticated(),
		IsAdmin:          store.IsAdmin(),
		SidebarCollapsed: store.SidebarCollapsed(),
	}
	if user := store.User(); user != nil {
		nav.UserName = user.Name
		if nav.UserName == "" {
			nav.UserName = user.Email
		}
	}

	toasts := partials.Toasts(store.DrainNotifications())

	finalComponent := layouts.Base(title, flashes, nav, toasts, content)

	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return finalComponent.Render(c.Response().Writer)
}

// validationMessage turns a c.Validate failure into a flash-friendly
// sentence for the first field that failed.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch f := verrs[0]; f.Field() {
		case "Email":
			return "Enter a valid email address."
		case "Password":
			if f.Tag() == "min" {
				return "Password must be at least 8 characters long."
			}
			return "A password is required."
		case "PasswordConfirm":
			return "Passwords do not match."
		case "Title":
			return "A dashboard title is required (120 characters max)."
		case "Token":
			return "A valid reset token is required to change your password."
		}
	}
	return "Please check the form and try again."
}

// NotificationHandler dismisses toasts from the htmx buttons.
type NotificationHandler struct {
	store *session.Store
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(store *session.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// DismissPost removes one toast and re-renders the toast stack.
func (h *NotificationHandler) DismissPost(c echo.Context) error {
	h.store.RemoveNotification(c.Param("id"))

	remaining := partials.Toasts(h.store.Notifications())
	if remaining == nil {
		return c.HTML(http.StatusOK, `<div id="toasts"></div>`)
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return remaining.Render(c.Response().Writer)
}
