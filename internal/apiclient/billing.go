package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/normalize"
)

// BillingService covers /api/billing. The console only reads plans and
// forwards upgrade/cancel intents; payment enforcement is backend-owned.
type BillingService struct {
	client *Client
}

// Plans lists the available subscription tiers.
func (s *BillingService) Plans(ctx context.Context) ([]domain.Plan, error) {
	raw, err := s.client.getRaw(ctx, "/api/billing/plans")
	if err != nil {
		return nil, err
	}
	return normalize.Slice[domain.Plan](raw, "plans")
}

// Subscription returns the user's current subscription, raw.
func (s *BillingService) Subscription(ctx context.Context) (json.RawMessage, error) {
	return s.client.getRaw(ctx, "/api/billing/subscription")
}

// History lists recent billing events.
func (s *BillingService) History(ctx context.Context, limit int) (json.RawMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.client.getRaw(ctx, fmt.Sprintf("/api/billing/history?limit=%d", limit))
}

// Upgrade requests a plan change.
func (s *BillingService) Upgrade(ctx context.Context, planTier, paymentMethod string) error {
	body := map[string]string{"planTier": planTier, "paymentMethod": paymentMethod}
	return s.client.do(ctx, http.MethodPost, "/api/billing/upgrade", body, nil)
}

// Cancel requests a subscription cancellation.
func (s *BillingService) Cancel(ctx context.Context, reason string) error {
	body := map[string]string{"reason": reason}
	return s.client.do(ctx, http.MethodPost, "/api/billing/cancel", body, nil)
}
