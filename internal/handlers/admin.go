package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/middleware"
	"github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/internal/view"
	"github.com/openpersona/console/web/src/templates/pages"
)

// AdminHandler handles the account management pages. The backend checks
// admin rights on every call; these handlers just surface the results.
type AdminHandler struct {
	api   *apiclient.Client
	store *session.Store
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(api *apiclient.Client, store *session.Store) *AdminHandler {
	return &AdminHandler{api: api, store: store}
}

// UsersGet renders the accounts table (GET /app/admin/users).
func (h *AdminHandler) UsersGet(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.api.Admin.Users(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to load accounts", "error", err)
		view.SetFlashError(c, "Could not load accounts.")
	}

	return render(c, h.store, "Accounts", pages.AdminUsers(users))
}

// PlanPost changes an account's subscription tier.
func (h *AdminHandler) PlanPost(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("id")
	plan := c.FormValue("plan")

	if err := h.api.Admin.UpdatePlan(ctx, userID, plan); err != nil {
		middleware.FromContext(ctx).Error("Admin plan change failed", "user_id", userID, "error", err)
		view.SetFlashError(c, "Could not change that account's plan.")
	} else {
		view.SetFlashSuccess(c, "Plan updated.")
	}
	return c.Redirect(http.StatusSeeOther, "/app/admin/users")
}

// BlockPost blocks an account (htmx POST /app/admin/users/:id/block).
func (h *AdminHandler) BlockPost(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("id")

	if err := h.api.Admin.BlockUser(ctx, userID, true); err != nil {
		middleware.FromContext(ctx).Error("Admin block failed", "user_id", userID, "error", err)
		view.SetFlashError(c, "Could not block that account.")
	} else {
		view.SetFlashSuccess(c, "Account blocked.")
	}
	return htmxRedirect(c, "/app/admin/users")
}

// DeletePost removes an account (htmx DELETE /app/admin/users/:id).
func (h *AdminHandler) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("id")

	if err := h.api.Admin.DeleteUser(ctx, userID); err != nil {
		middleware.FromContext(ctx).Error("Admin delete failed", "user_id", userID, "error", err)
		view.SetFlashError(c, "Could not delete that account.")
	} else {
		view.SetFlashSuccess(c, "Account deleted.")
	}
	return htmxRedirect(c, "/app/admin/users")
}
