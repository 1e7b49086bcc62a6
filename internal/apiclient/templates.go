package apiclient

import (
	"context"
	"net/http"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/normalize"
)

// TemplateService covers /api/templates and its admin variants.
type TemplateService struct {
	client *Client
}

// List returns the template gallery.
func (s *TemplateService) List(ctx context.Context) ([]domain.Template, error) {
	raw, err := s.client.getRaw(ctx, "/api/templates")
	if err != nil {
		return nil, err
	}
	return normalize.Slice[domain.Template](raw, "templates")
}

// Get returns a single template by slug.
func (s *TemplateService) Get(ctx context.Context, slug string) (*domain.Template, error) {
	var tpl domain.Template
	if err := s.client.get(ctx, "/api/templates/"+slug, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// AdminList returns all templates including unpublished ones.
func (s *TemplateService) AdminList(ctx context.Context) ([]domain.Template, error) {
	raw, err := s.client.getRaw(ctx, "/api/admin/templates")
	if err != nil {
		return nil, err
	}
	return normalize.Slice[domain.Template](raw, "templates")
}

// AdminCreate registers a new template.
func (s *TemplateService) AdminCreate(ctx context.Context, tpl *domain.Template) (*domain.Template, error) {
	var created domain.Template
	if err := s.client.do(ctx, http.MethodPost, "/api/admin/templates", tpl, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AdminUpdate replaces a template by slug.
func (s *TemplateService) AdminUpdate(ctx context.Context, slug string, tpl *domain.Template) (*domain.Template, error) {
	var updated domain.Template
	if err := s.client.do(ctx, http.MethodPut, "/api/admin/templates/"+slug, tpl, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
