package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/middleware"
	"github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/internal/view"
	"github.com/openpersona/console/web/src/templates/pages"
)

// TemplateHandler handles the theme gallery and its admin management page.
type TemplateHandler struct {
	api   *apiclient.Client
	store *session.Store
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(api *apiclient.Client, store *session.Store) *TemplateHandler {
	return &TemplateHandler{api: api, store: store}
}

// GalleryGet renders the theme gallery (GET /app/templates).
func (h *TemplateHandler) GalleryGet(c echo.Context) error {
	ctx := c.Request().Context()

	templates, err := h.api.Templates.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to load templates", "error", err)
		view.SetFlashError(c, "Could not load the template gallery.")
		templates = h.store.Templates()
	} else {
		h.store.SetTemplates(templates)
	}

	return render(c, h.store, "Templates", pages.TemplateGallery(templates))
}

// AdminListGet renders the admin template management page
// (GET /app/admin/templates). Unlike the gallery this includes drafts.
func (h *TemplateHandler) AdminListGet(c echo.Context) error {
	ctx := c.Request().Context()

	templates, err := h.api.Templates.AdminList(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to load admin templates", "error", err)
		view.SetFlashError(c, "Could not load templates.")
	}

	return render(c, h.store, "Templates", pages.AdminTemplates(templates))
}

// AdminCreatePost creates a template (POST /app/admin/templates).
func (h *TemplateHandler) AdminCreatePost(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.FormValue("name")

	tpl := &domain.Template{Name: name, Slug: domain.SafeSlug(name)}
	if _, err := h.api.Templates.AdminCreate(ctx, tpl); err != nil {
		middleware.FromContext(ctx).Error("Template create failed", "name", name, "error", err)
		view.SetFlashError(c, "Could not create the template.")
	} else {
		view.SetFlashSuccess(c, "Template created.")
	}

	return c.Redirect(http.StatusSeeOther, "/app/admin/templates")
}

// AdminUpdatePost renames a template (POST /app/admin/templates/:slug).
func (h *TemplateHandler) AdminUpdatePost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	tpl := &domain.Template{Slug: slug, Name: c.FormValue("name")}
	if _, err := h.api.Templates.AdminUpdate(ctx, slug, tpl); err != nil {
		middleware.FromContext(ctx).Error("Template update failed", "slug", slug, "error", err)
		view.SetFlashError(c, "Could not update the template.")
	} else {
		view.SetFlashSuccess(c, "Template updated.")
	}

	return c.Redirect(http.StatusSeeOther, "/app/admin/templates")
}
