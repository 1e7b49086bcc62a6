package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/middleware"
	"github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/internal/view"
	"github.com/openpersona/console/web/src/templates/pages"
)

// DashboardHandler handles the dashboards overview and editor pages.
type DashboardHandler struct {
	api   *apiclient.Client
	store *session.Store
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(api *apiclient.Client, store *session.Store) *DashboardHandler {
	return &DashboardHandler{api: api, store: store}
}

// ListGet renders the dashboards overview (GET /app/dashboards).
func (h *DashboardHandler) ListGet(c echo.Context) error {
	ctx := c.Request().Context()

	dashboards, err := h.api.Dashboards.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to load dashboards", "error", err)
		view.SetFlashError(c, "Could not load your dashboards.")
		dashboards = h.store.Dashboards()
	} else {
		h.store.SetDashboards(dashboards)
	}

	planName := ""
	if plan := h.store.Plan(); plan != nil {
		planName = plan.Name
	}

	data := pages.DashboardListData{
		Dashboards: dashboards,
		PlanLimit:  h.store.PlanLimit(),
		CanCreate:  h.store.CanCreateDashboard(),
		PlanName:   planName,
	}
	return render(c, h.store, "Dashboards", pages.Dashboards(data))
}

// CreatePost creates a dashboard from the overview form.
func (h *DashboardHandler) CreatePost(c echo.Context) error {
	ctx := c.Request().Context()

	// Soft client-side gate; the backend enforces the real quota.
	if err := h.store.EnsureCanCreateDashboard(); err != nil {
		middleware.FromContext(ctx).Info("Dashboard create blocked", "error", err)
		view.SetFlashError(c, "You've reached your plan's dashboard limit. Upgrade to add more.")
		return c.Redirect(http.StatusSeeOther, "/app/dashboards")
	}

	title := c.FormValue("title")
	req := apiclient.CreateDashboardRequest{
		Title: title,
		Slug:  title,
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, validationMessage(err))
		return c.Redirect(http.StatusSeeOther, "/app/dashboards")
	}

	created, err := h.api.Dashboards.Create(ctx, req)
	if err != nil {
		middleware.FromContext(ctx).Error("Dashboard create failed", "title", title, "error", err)
		view.SetFlashError(c, "Save failed")
		return c.Redirect(http.StatusSeeOther, "/app/dashboards")
	}

	h.store.AddDashboard(*created)
	view.SetFlashSuccess(c, "Dashboard created.")
	return c.Redirect(http.StatusSeeOther, "/app/dashboards/"+created.Slug)
}

// GeneratePost has the backend agent build a dashboard from the profile
// (POST /app/dashboards/generate). The same quota applies as for manual
// creation.
func (h *DashboardHandler) GeneratePost(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.store.EnsureCanCreateDashboard(); err != nil {
		middleware.FromContext(ctx).Info("Dashboard generate blocked", "error", err)
		view.SetFlashError(c, "You've reached your plan's dashboard limit. Upgrade to add more.")
		return c.Redirect(http.StatusSeeOther, "/app/dashboards")
	}

	generated, err := h.api.Agent.GenerateDashboard(ctx, apiclient.GenerateDashboardRequest{
		Prompt: c.FormValue("prompt"),
	})
	if err != nil {
		middleware.FromContext(ctx).Error("Dashboard generation failed", "error", err)
		view.SetFlashError(c, "The agent could not generate a dashboard.")
		return c.Redirect(http.StatusSeeOther, "/app/dashboards")
	}

	h.store.AddDashboard(*generated)
	view.SetFlashSuccess(c, "Dashboard generated.")
	return c.Redirect(http.StatusSeeOther, "/app/dashboards/"+generated.Slug)
}

// EditGet renders the editor for one dashboard (GET /app/dashboards/:slug).
func (h *DashboardHandler) EditGet(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	dashboard, lookupErr := h.store.DashboardBySlug(slug)
	if errors.Is(lookupErr, domain.ErrNotFound) {
		// Direct navigation without a warm cache; refetch the list.
		if dashboards, err := h.api.Dashboards.List(ctx); err == nil {
			h.store.SetDashboards(dashboards)
			dashboard, lookupErr = h.store.DashboardBySlug(slug)
		}
	}
	if lookupErr != nil {
		view.SetFlashError(c, "Dashboard not found.")
		return c.Redirect(http.StatusSeeOther, "/app/dashboards")
	}

	// The list payload can be shallow; the detail call fills in sections.
	if detail, err := h.api.Dashboards.Detail(ctx, dashboard.ID); err == nil {
		dashboard = detail
		h.store.UpdateDashboard(detail.ID, func(d *domain.Dashboard) { *d = *detail })
	}

	templates, err := h.api.Templates.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("Failed to load templates", "error", err)
		templates = h.store.Templates()
	} else {
		h.store.SetTemplates(templates)
	}

	data := pages.DashboardEditData{
		Dashboard: *dashboard,
		Templates: templates,
		ActiveTab: h.store.ActiveTab(),
	}
	return render(c, h.store, dashboard.Title, pages.DashboardEditor(data))
}

// DeletePost removes a dashboard (htmx DELETE /app/dashboards/:id).
func (h *DashboardHandler) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.api.Dashboards.Remove(ctx, id); err != nil {
		middleware.FromContext(ctx).Error("Dashboard delete failed", "id", id, "error", err)
		view.SetFlashError(c, "Could not delete the dashboard.")
		return htmxRedirect(c, "/app/dashboards")
	}

	h.store.RemoveDashboard(id)
	view.SetFlashSuccess(c, "Dashboard deleted.")
	return htmxRedirect(c, "/app/dashboards")
}

// VisibilityPost updates a dashboard's visibility from the editor panel.
func (h *DashboardHandler) VisibilityPost(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	visibility := domain.Visibility(c.FormValue("visibility"))

	if err := h.api.Dashboards.SetVisibility(ctx, id, visibility); err != nil {
		middleware.FromContext(ctx).Error("Visibility update failed", "id", id, "error", err)
		view.SetFlashError(c, "Could not update visibility.")
	} else {
		h.store.UpdateDashboard(id, func(d *domain.Dashboard) { d.Visibility = visibility })
		view.SetFlashSuccess(c, "Visibility updated.")
	}

	return c.Redirect(http.StatusSeeOther, h.editPathByID(id))
}

// TemplatePost applies a template from the editor panel.
func (h *DashboardHandler) TemplatePost(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	templateID := c.FormValue("templateId")

	if err := h.api.Dashboards.SetTemplate(ctx, id, templateID); err != nil {
		middleware.FromContext(ctx).Error("Template update failed", "id", id, "error", err)
		view.SetFlashError(c, "Could not apply the template.")
	} else {
		h.store.UpdateDashboard(id, func(d *domain.Dashboard) { d.TemplateID = templateID })
		view.SetFlashSuccess(c, "Template applied.")
	}

	return c.Redirect(http.StatusSeeOther, h.editPathByID(id))
}

// PrimaryPost marks a dashboard as primary (htmx POST /app/dashboards/:id/primary).
func (h *DashboardHandler) PrimaryPost(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.api.Dashboards.SetPrimary(ctx, id); err != nil {
		middleware.FromContext(ctx).Error("Set primary failed", "id", id, "error", err)
		view.SetFlashError(c, "Could not update the primary dashboard.")
		return htmxRedirect(c, "/app/dashboards")
	}

	// Only one dashboard is primary at a time.
	for _, d := range h.store.Dashboards() {
		wasPrimary := d.IsPrimary
		isNow := d.ID == id
		if wasPrimary != isNow {
			h.store.UpdateDashboard(d.ID, func(dd *domain.Dashboard) { dd.IsPrimary = isNow })
		}
	}

	view.SetFlashSuccess(c, "Primary dashboard updated.")
	return htmxRedirect(c, "/app/dashboards")
}

func (h *DashboardHandler) editPathByID(id string) string {
	for _, d := range h.store.Dashboards() {
		if d.ID == id {
			return "/app/dashboards/" + d.Slug
		}
	}
	return "/app/dashboards"
}

// htmxRedirect answers an htmx-initiated request with a client-side
// redirect, falling back to a normal redirect for plain form posts.
func htmxRedirect(c echo.Context, target string) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", target)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, target)
}
