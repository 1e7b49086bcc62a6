package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/openpersona/console/internal/domain"
)

// AgentService covers /api/agent: the backend's generation agent.
type AgentService struct {
	client *Client
}

// Insights returns AI profile insights, raw.
func (s *AgentService) Insights(ctx context.Context) (json.RawMessage, error) {
	return s.client.getRaw(ctx, "/api/agent/profile-insights")
}

// GenerateDashboardRequest steers a full dashboard generation.
type GenerateDashboardRequest struct {
	Prompt     string `json:"prompt,omitempty"`
	TemplateID string `json:"templateId,omitempty"`
}

// GenerateDashboard asks the agent to build a dashboard from the profile.
func (s *AgentService) GenerateDashboard(ctx context.Context, req GenerateDashboardRequest) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	if err := s.client.do(ctx, http.MethodPost, "/api/agent/generate-dashboard", req, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// Suggestions asks the agent for improvement suggestions on a payload the
// backend defines (section content, usually).
func (s *AgentService) Suggestions(ctx context.Context, payload map[string]any) (json.RawMessage, error) {
	var result json.RawMessage
	if err := s.client.do(ctx, http.MethodPost, "/api/agent/suggestions", payload, &result); err != nil {
		return nil, err
	}
	return result, nil
}
