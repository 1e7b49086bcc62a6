package handlers

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/highlights"
	"github.com/openpersona/console/internal/middleware"
	"github.com/openpersona/console/internal/session"
	"github.com/openpersona/console/internal/view"
	"github.com/openpersona/console/web/src/templates/pages"
)

// SupportHandler handles the AI career-support page.
type SupportHandler struct {
	api   *apiclient.Client
	store *session.Store
}

// NewSupportHandler creates a new SupportHandler.
func NewSupportHandler(api *apiclient.Client, store *session.Store) *SupportHandler {
	return &SupportHandler{api: api, store: store}
}

// HighlightsGet renders the career-support page (GET /app/support).
// The raw payload shape varies by backend version, so everything goes
// through the sanitizer before rendering.
func (h *SupportHandler) HighlightsGet(c echo.Context) error {
	return h.renderPage(c, pages.SupportData{})
}

// JobMatchPost scores the profile against a pasted job description and
// re-renders the page with the report inline (POST /app/support/match).
func (h *SupportHandler) JobMatchPost(c echo.Context) error {
	ctx := c.Request().Context()
	description := strings.TrimSpace(c.FormValue("jobDescription"))

	data := pages.SupportData{JobDescription: description}
	if description == "" {
		view.SetFlashError(c, "Paste a job description first.")
		return h.renderPage(c, data)
	}

	report, err := h.api.Support.JobMatch(ctx, apiclient.JobMatchRequest{JobDescription: description})
	if err != nil {
		middleware.FromContext(ctx).Error("Job match failed", "error", err)
		view.SetFlashError(c, "The job match did not complete.")
		return h.renderPage(c, data)
	}

	data.MatchReport = indentJSON(report)
	return h.renderPage(c, data)
}

// CopilotPost asks the career copilot one question and re-renders the
// page with the reply inline (POST /app/support/ask).
func (h *SupportHandler) CopilotPost(c echo.Context) error {
	ctx := c.Request().Context()
	message := strings.TrimSpace(c.FormValue("message"))

	data := pages.SupportData{CopilotMessage: message}
	if message == "" {
		view.SetFlashError(c, "Ask a question first.")
		return h.renderPage(c, data)
	}

	resp, err := h.api.Support.Copilot(ctx, apiclient.CopilotRequest{Message: message})
	if err != nil {
		middleware.FromContext(ctx).Error("Copilot request failed", "error", err)
		view.SetFlashError(c, "The copilot did not answer.")
		return h.renderPage(c, data)
	}

	data.CopilotReply = resp.Reply
	return h.renderPage(c, data)
}

func (h *SupportHandler) renderPage(c echo.Context, data pages.SupportData) error {
	ctx := c.Request().Context()

	raw, err := h.api.Support.Highlights(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to load highlights", "error", err)
		view.SetFlashError(c, "Could not load your career highlights.")
	}

	data.Highlights = highlights.Sanitize(raw)
	return render(c, h.store, "Career support", pages.Support(data))
}

func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
