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

// maxUploadSize caps what the console forwards to the backend.
const maxUploadSize = 25 << 20 // 25 MB

// FileHandler handles the uploaded-files page.
type FileHandler struct {
	api   *apiclient.Client
	store *session.Store
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(api *apiclient.Client, store *session.Store) *FileHandler {
	return &FileHandler{api: api, store: store}
}

// ListGet renders the files page (GET /app/files).
func (h *FileHandler) ListGet(c echo.Context) error {
	ctx := c.Request().Context()

	files, err := h.api.Files.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to load files", "error", err)
		view.SetFlashError(c, "Could not load your files.")
		files = h.store.Files()
	} else {
		h.store.SetFiles(files)
	}

	return render(c, h.store, "Files", pages.Files(files))
}

// UploadPost forwards a multipart upload to the backend.
func (h *FileHandler) UploadPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		view.SetFlashError(c, "Please choose a file to upload.")
		return c.Redirect(http.StatusSeeOther, "/app/files")
	}
	if fileHeader.Size > maxUploadSize {
		view.SetFlashError(c, "That file is too large (25 MB max).")
		return c.Redirect(http.StatusSeeOther, "/app/files")
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", "error", err)
		view.SetFlashError(c, "Could not read the uploaded file.")
		return c.Redirect(http.StatusSeeOther, "/app/files")
	}
	defer src.Close()

	uploaded, err := h.api.Files.Upload(ctx, apiclient.FileUpload{
		Filename: fileHeader.Filename,
		Category: c.FormValue("category"),
		Content:  src,
	})
	if err != nil {
		logger.Error("File upload failed", "filename", fileHeader.Filename, "error", err)
		view.SetFlashError(c, "Upload failed. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/app/files")
	}

	h.store.AddFile(*uploaded)
	view.SetFlashSuccess(c, "Uploaded "+uploaded.Filename+".")
	return c.Redirect(http.StatusSeeOther, "/app/files")
}

// DownloadGet redirects to a signed URL for the file.
func (h *FileHandler) DownloadGet(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	signed, err := h.api.Files.SignedURL(ctx, id)
	if err != nil {
		middleware.FromContext(ctx).Error("Signed URL request failed", "id", id, "error", err)
		view.SetFlashError(c, "Could not generate a download link.")
		return c.Redirect(http.StatusSeeOther, "/app/files")
	}

	return c.Redirect(http.StatusTemporaryRedirect, signed.URL)
}

// DeletePost removes a file (htmx DELETE /app/files/:id).
func (h *FileHandler) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.api.Files.Remove(ctx, id); err != nil {
		middleware.FromContext(ctx).Error("File delete failed", "id", id, "error", err)
		view.SetFlashError(c, "Could not delete the file.")
		return htmxRedirect(c, "/app/files")
	}

	h.store.RemoveFile(id)
	view.SetFlashSuccess(c, "File deleted.")
	return htmxRedirect(c, "/app/files")
}
