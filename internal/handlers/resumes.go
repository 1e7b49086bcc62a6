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

// ResumeHandler handles the resume upload and analysis page.
type ResumeHandler struct {
	api   *apiclient.Client
	store *session.Store
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(api *apiclient.Client, store *session.Store) *ResumeHandler {
	return &ResumeHandler{api: api, store: store}
}

// ListGet renders the resumes page (GET /app/resumes).
func (h *ResumeHandler) ListGet(c echo.Context) error {
	ctx := c.Request().Context()

	resumes, err := h.api.Resume.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to load resumes", "error", err)
		view.SetFlashError(c, "Could not load your resumes.")
		resumes = h.store.Resumes()
	} else {
		h.store.SetResumes(resumes)
	}

	return render(c, h.store, "Resumes", pages.Resumes(resumes))
}

// UploadPost forwards a resume upload to the backend.
func (h *ResumeHandler) UploadPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		view.SetFlashError(c, "Please choose a resume to upload.")
		return c.Redirect(http.StatusSeeOther, "/app/resumes")
	}
	if fileHeader.Size > maxUploadSize {
		view.SetFlashError(c, "That file is too large (25 MB max).")
		return c.Redirect(http.StatusSeeOther, "/app/resumes")
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded resume", "error", err)
		view.SetFlashError(c, "Could not read the uploaded file.")
		return c.Redirect(http.StatusSeeOther, "/app/resumes")
	}
	defer src.Close()

	uploaded, err := h.api.Resume.Upload(ctx, fileHeader.Filename, src)
	if err != nil {
		logger.Error("Resume upload failed", "filename", fileHeader.Filename, "error", err)
		view.SetFlashError(c, "Upload failed. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/app/resumes")
	}

	h.store.AddResume(*uploaded)
	view.SetFlashSuccess(c, "Uploaded "+uploaded.Filename+".")
	return c.Redirect(http.StatusSeeOther, "/app/resumes")
}

// DownloadGet redirects to a signed URL for the resume.
func (h *ResumeHandler) DownloadGet(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	signed, err := h.api.Resume.SignedURL(ctx, id)
	if err != nil {
		middleware.FromContext(ctx).Error("Signed URL request failed", "id", id, "error", err)
		view.SetFlashError(c, "Could not generate a download link.")
		return c.Redirect(http.StatusSeeOther, "/app/resumes")
	}

	return c.Redirect(http.StatusTemporaryRedirect, signed.URL)
}

// AnalyzePost kicks off a backend analysis of one resume (htmx POST).
func (h *ResumeHandler) AnalyzePost(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if _, err := h.api.Resume.Analyze(ctx, apiclient.AnalyzeRequest{ResumeID: id}); err != nil {
		middleware.FromContext(ctx).Error("Resume analysis failed", "id", id, "error", err)
		view.SetFlashError(c, "Analysis failed. Please try again.")
		return htmxRedirect(c, "/app/resumes")
	}

	h.store.AddNotification("Analysis started", "We'll fold the results into your portfolio blueprint.")
	return htmxRedirect(c, "/app/portfolio")
}
