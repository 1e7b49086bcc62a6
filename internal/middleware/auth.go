package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/session"
)

// RequireAuth protects routes that need a signed-in session. A 401 from the
// backend may have cleared the store between requests; the pending redirect
// check picks that up before anything else renders.
func RequireAuth(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if target := store.PendingRedirect(); target != "" {
				return c.Redirect(http.StatusSeeOther, target)
			}

			if !store.Authenticated() {
				return c.Redirect(http.StatusSeeOther, "/app/login")
			}

			// A token with a readable exp claim in the past will only bounce
			// off the backend; log out proactively instead.
			if store.TokenExpired() {
				store.Logout()
				return c.Redirect(http.StatusSeeOther, session.ExpiredRedirect)
			}

			return next(c)
		}
	}
}

// RequireAdmin protects the admin routes. The backend enforces authorization
// on every call regardless; this only keeps the pages out of normal menus.
func RequireAdmin(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !store.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}
