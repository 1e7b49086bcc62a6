package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/normalize"
)

// PortfolioService covers /api/portfolio: the AI-assisted pipeline from
// resume blueprint to published dashboard.
type PortfolioService struct {
	client *Client
}

// Blueprint returns the backend-generated summary used to seed content.
func (s *PortfolioService) Blueprint(ctx context.Context) (*domain.Blueprint, error) {
	var bp domain.Blueprint
	if err := s.client.get(ctx, "/api/portfolio/blueprint", &bp); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Status reports where the portfolio sits in the draft/publish pipeline.
func (s *PortfolioService) Status(ctx context.Context) (*domain.PortfolioStatus, error) {
	var status domain.PortfolioStatus
	if err := s.client.get(ctx, "/api/portfolio/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Templates lists the templates offered for generated portfolios.
func (s *PortfolioService) Templates(ctx context.Context) ([]domain.Template, error) {
	raw, err := s.client.getRaw(ctx, "/api/portfolio/templates")
	if err != nil {
		return nil, err
	}
	return normalize.Slice[domain.Template](raw, "templates")
}

// Draft asks the backend to draft portfolio content from the blueprint.
func (s *PortfolioService) Draft(ctx context.Context, payload map[string]any) (json.RawMessage, error) {
	var result json.RawMessage
	if err := s.client.do(ctx, http.MethodPost, "/api/portfolio/draft", payload, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Save persists edited draft content.
func (s *PortfolioService) Save(ctx context.Context, payload map[string]any) error {
	return s.client.do(ctx, http.MethodPost, "/api/portfolio/save", payload, nil)
}

// Publish takes the current draft live.
func (s *PortfolioService) Publish(ctx context.Context) (*domain.PortfolioStatus, error) {
	var status domain.PortfolioStatus
	if err := s.client.do(ctx, http.MethodPost, "/api/portfolio/publish", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// EnhanceTextRequest asks the backend to rewrite a text fragment.
type EnhanceTextRequest struct {
	Text string `json:"text" validate:"required"`
	Tone string `json:"tone,omitempty"`
}

// EnhanceTextResponse carries the rewritten text.
type EnhanceTextResponse struct {
	Text string `json:"text"`
}

// EnhanceText runs one text fragment through the backend's rewriter.
func (s *PortfolioService) EnhanceText(ctx context.Context, req EnhanceTextRequest) (*EnhanceTextResponse, error) {
	var resp EnhanceTextResponse
	if err := s.client.do(ctx, http.MethodPost, "/api/portfolio/enhance-text", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteDashboard removes a generated dashboard through the portfolio
// pipeline (distinct from DashboardService.Remove).
func (s *PortfolioService) DeleteDashboard(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/portfolio/dashboard/"+id, nil, nil)
}
