package apiclient

import (
	"context"
	"io"
	"net/http"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/normalize"
)

// FileService covers /api/files.
type FileService struct {
	client *Client
}

// List returns the user's uploaded files.
func (s *FileService) List(ctx context.Context) ([]domain.File, error) {
	raw, err := s.client.getRaw(ctx, "/api/files")
	if err != nil {
		return nil, err
	}
	return normalize.Slice[domain.File](raw, "files")
}

// SignedURL returns a time-limited download link for a file.
func (s *FileService) SignedURL(ctx context.Context, id string) (*domain.SignedURL, error) {
	var signed domain.SignedURL
	if err := s.client.get(ctx, "/api/files/"+id+"/url", &signed); err != nil {
		return nil, err
	}
	return &signed, nil
}

// Remove deletes a file and its backend-held bytes.
func (s *FileService) Remove(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/files/"+id, nil, nil)
}

// FileUpload describes one upload. DashboardSlug optionally ties the file
// to a dashboard.
type FileUpload struct {
	Filename      string
	Category      string
	DashboardSlug string
	Content       io.Reader
}

// Upload streams a file to the backend as multipart form data.
func (s *FileService) Upload(ctx context.Context, up FileUpload) (*domain.File, error) {
	fields := map[string]string{
		"category":      up.Category,
		"dashboardSlug": up.DashboardSlug,
	}
	var file domain.File
	if err := s.client.doMultipart(ctx, "/api/files/upload", "file", up.Filename, up.Content, fields, &file); err != nil {
		return nil, err
	}
	return &file, nil
}
