package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/middleware"
	"github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/web/src/templates/pages"
)

// PublicHandler handles the no-auth public pages at /@handle. Read failures
// degrade to an empty state here; anonymous visitors get no flash errors.
type PublicHandler struct {
	api   *apiclient.Client
	store *session.Store
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(api *apiclient.Client, store *session.Store) *PublicHandler {
	return &PublicHandler{api: api, store: store}
}

// ProfileGet renders a public profile (GET /@:handle).
func (h *PublicHandler) ProfileGet(c echo.Context) error {
	ctx := c.Request().Context()
	handle := c.Param("handle")

	profile, err := h.api.Public.Profile(ctx, handle)
	if err != nil {
		middleware.FromContext(ctx).Info("Public profile unavailable", "handle", handle, "error", err)
		profile = nil
	}

	return render(c, h.store, "@"+handle, pages.PublicProfile(handle, profile))
}

// DashboardGet renders one public dashboard (GET /@:handle/:slug).
func (h *PublicHandler) DashboardGet(c echo.Context) error {
	ctx := c.Request().Context()
	handle := c.Param("handle")
	slug := c.Param("slug")

	dashboard, err := h.api.Public.Dashboard(ctx, handle, slug)
	if err != nil {
		middleware.FromContext(ctx).Info("Public dashboard unavailable", "handle", handle, "slug", slug, "error", err)
		dashboard = nil
	}

	title := "@" + handle
	if dashboard != nil {
		title = dashboard.Title
	}
	return render(c, h.store, title, pages.PublicDashboard(handle, dashboard))
}
