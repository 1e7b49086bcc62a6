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

// BillingHandler handles the plans and subscription page.
type BillingHandler struct {
	api   *apiclient.Client
	store *session.Store
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(api *apiclient.Client, store *session.Store) *BillingHandler {
	return &BillingHandler{api: api, store: store}
}

// PlansGet renders the billing page (GET /app/billing).
func (h *BillingHandler) PlansGet(c echo.Context) error {
	ctx := c.Request().Context()

	plans, err := h.api.Billing.Plans(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to load plans", "error", err)
		view.SetFlashError(c, "Could not load the available plans.")
	}

	data := pages.BillingData{
		Plans:       plans,
		CurrentPlan: h.store.Plan(),
	}
	return render(c, h.store, "Billing", pages.Billing(data))
}

// UpgradePost requests a plan change and refreshes the session's plan.
func (h *BillingHandler) UpgradePost(c echo.Context) error {
	ctx := c.Request().Context()
	planTier := c.FormValue("planTier")

	if err := h.api.Billing.Upgrade(ctx, planTier, c.FormValue("paymentMethod")); err != nil {
		middleware.FromContext(ctx).Error("Plan upgrade failed", "tier", planTier, "error", err)
		view.SetFlashError(c, "Could not change your plan. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/app/billing")
	}

	// The backend owns the plan; re-read the session to pick up the change.
	if me, err := h.api.Auth.Me(ctx); err == nil && me.User != nil {
		h.store.SetUser(me.User)
		if me.Plan != nil {
			h.store.SetPlan(me.Plan)
		}
	}

	view.SetFlashSuccess(c, "Your plan has been updated.")
	return c.Redirect(http.StatusSeeOther, "/app/billing")
}

// CancelPost requests a subscription cancellation.
func (h *BillingHandler) CancelPost(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.api.Billing.Cancel(ctx, c.FormValue("reason")); err != nil {
		middleware.FromContext(ctx).Error("Cancellation failed", "error", err)
		view.SetFlashError(c, "Could not cancel your subscription. Please contact support.")
		return c.Redirect(http.StatusSeeOther, "/app/billing")
	}

	h.store.SetPlan(nil)
	view.SetFlashSuccess(c, "Your subscription has been cancelled.")
	return c.Redirect(http.StatusSeeOther, "/app/billing")
}
