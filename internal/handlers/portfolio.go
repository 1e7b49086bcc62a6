package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/highlights"
	"github.com/openpersona/console/internal/middleware"
	"github.com/openpersona/console/internal/normalize"
	"github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/internal/view"
	"github.com/openpersona/console/web/src/templates/pages"
)

// PortfolioHandler handles the blueprint-to-published-dashboard pipeline.
type PortfolioHandler struct {
	api   *apiclient.Client
	store *session.Store
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(api *apiclient.Client, store *session.Store) *PortfolioHandler {
	return &PortfolioHandler{api: api, store: store}
}

// StatusGet renders the pipeline page (GET /app/portfolio).
func (h *PortfolioHandler) StatusGet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	blueprint, err := h.api.Portfolio.Blueprint(ctx)
	if err != nil {
		// A missing blueprint just means no resume was analyzed yet.
		if !apiclient.IsNotFound(err) {
			logger.Error("Failed to load blueprint", "error", err)
			view.SetFlashError(c, "Could not load your portfolio blueprint.")
		}
		blueprint = h.store.Blueprint()
	} else {
		h.store.SetBlueprint(blueprint)
	}

	status, err := h.api.Portfolio.Status(ctx)
	if err != nil {
		if !apiclient.IsNotFound(err) {
			logger.Error("Failed to load portfolio status", "error", err)
		}
		status = h.store.PortfolioStatus()
	} else {
		h.store.SetPortfolioStatus(status)
	}

	var readiness highlights.Readiness
	if status != nil {
		readiness = highlights.InterpretReadiness(status.Readiness)
	}

	// Profile insights are decoration; a failing agent never blocks the page.
	var insights []highlights.Detail
	if raw, err := h.api.Agent.Insights(ctx); err == nil {
		for _, item := range normalize.RecordsLoose(raw, "insights") {
			if d := highlights.CoerceDetail(item); !d.Empty() {
				insights = append(insights, d)
			}
		}
	} else {
		logger.Warn("Failed to load profile insights", "error", err)
	}

	data := pages.PortfolioData{
		Blueprint: blueprint,
		Status:    status,
		Readiness: readiness,
		Insights:  insights,
	}
	return render(c, h.store, "Portfolio", pages.Portfolio(data))
}

// DraftPost asks the backend to draft portfolio content from the blueprint.
func (h *PortfolioHandler) DraftPost(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.api.Portfolio.Draft(ctx, nil); err != nil {
		middleware.FromContext(ctx).Error("Portfolio draft failed", "error", err)
		view.SetFlashError(c, "Could not draft your portfolio. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/app/portfolio")
	}

	view.SetFlashSuccess(c, "Draft created from your blueprint.")
	return c.Redirect(http.StatusSeeOther, "/app/portfolio")
}

// PublishPost takes the current draft live (htmx POST /app/portfolio/publish).
func (h *PortfolioHandler) PublishPost(c echo.Context) error {
	ctx := c.Request().Context()

	status, err := h.api.Portfolio.Publish(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Portfolio publish failed", "error", err)
		view.SetFlashError(c, "Could not publish your portfolio.")
		return htmxRedirect(c, "/app/portfolio")
	}

	h.store.SetPortfolioStatus(status)
	view.SetFlashSuccess(c, "Your portfolio is live!")
	return htmxRedirect(c, "/app/portfolio")
}
