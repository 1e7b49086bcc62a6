package apiclient

import (
	"context"

	"github.com/openpersona/console/internal/domain"
)

// PublicService covers the no-auth public reads under /api/public.
type PublicService struct {
	client *Client
}

// Profile returns a user's public profile by handle.
func (s *PublicService) Profile(ctx context.Context, handle string) (*domain.PublicProfile, error) {
	var profile domain.PublicProfile
	if err := s.client.get(ctx, "/api/public/@"+handle, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Dashboard returns one public dashboard by handle and slug.
func (s *PublicService) Dashboard(ctx context.Context, handle, slug string) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	if err := s.client.get(ctx, "/api/public/@"+handle+"/"+slug, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
