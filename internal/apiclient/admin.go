package apiclient

import (
	"context"
	"net/http"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/normalize"
)

// AdminService covers /api/admin/users. All of these require an admin
// session; the backend enforces that, not the console.
type AdminService struct {
	client *Client
}

// Users lists all accounts.
func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	raw, err := s.client.getRaw(ctx, "/api/admin/users")
	if err != nil {
		return nil, err
	}
	return normalize.Slice[domain.User](raw, "users")
}

// UpdatePlan changes a user's subscription tier.
func (s *AdminService) UpdatePlan(ctx context.Context, userID, planName string) error {
	body := map[string]string{"plan": planName}
	return s.client.do(ctx, http.MethodPatch, "/api/admin/users/"+userID+"/plan", body, nil)
}

// BlockUser blocks or unblocks an account.
func (s *AdminService) BlockUser(ctx context.Context, userID string, blocked bool) error {
	body := map[string]bool{"blocked": blocked}
	return s.client.do(ctx, http.MethodPatch, "/api/admin/users/"+userID+"/block", body, nil)
}

// DeleteUser removes an account entirely.
func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/admin/users/"+userID, nil, nil)
}
