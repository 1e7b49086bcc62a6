package apiclient

import (
	"context"
	"net/http"

	"github.com/openpersona/console/internal/domain"
)

// ProfileService covers /api/profile.
type ProfileService struct {
	client *Client
}

// Get returns the authenticated user's profile.
func (s *ProfileService) Get(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.client.get(ctx, "/api/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update patches profile fields. The payload is passed through untouched;
// the backend owns the schema.
func (s *ProfileService) Update(ctx context.Context, patch map[string]any) (*domain.User, error) {
	var user domain.User
	if err := s.client.do(ctx, http.MethodPatch, "/api/profile", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateHandle changes the user's public handle.
func (s *ProfileService) UpdateHandle(ctx context.Context, handle string) (*domain.User, error) {
	var user domain.User
	body := map[string]string{"handle": handle}
	if err := s.client.do(ctx, http.MethodPatch, "/api/profile/handle", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetTemplate changes the profile-level template selection.
func (s *ProfileService) SetTemplate(ctx context.Context, templateID string) error {
	body := map[string]string{"templateId": templateID}
	return s.client.do(ctx, http.MethodPatch, "/api/profile/template", body, nil)
}
