package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
)

// SupportService covers /api/support: AI career-support features.
type SupportService struct {
	client *Client
}

// Highlights returns the AI-generated career highlights payload, raw.
// Its shape is loose; internal/highlights sanitizes it for display.
func (s *SupportService) Highlights(ctx context.Context) (json.RawMessage, error) {
	return s.client.getRaw(ctx, "/api/support/highlights")
}

// JobMatchRequest scores the user's profile against a job posting.
type JobMatchRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
}

// JobMatch runs a job-match analysis.
func (s *SupportService) JobMatch(ctx context.Context, req JobMatchRequest) (json.RawMessage, error) {
	var result json.RawMessage
	if err := s.client.do(ctx, http.MethodPost, "/api/support/job-match", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CopilotRequest is a free-form question for the career copilot.
type CopilotRequest struct {
	Message string `json:"message" validate:"required"`
}

// CopilotResponse is the copilot's answer.
type CopilotResponse struct {
	Reply string `json:"reply"`
}

// Copilot sends one message to the career copilot.
func (s *SupportService) Copilot(ctx context.Context, req CopilotRequest) (*CopilotResponse, error) {
	var resp CopilotResponse
	if err := s.client.do(ctx, http.MethodPost, "/api/support/copilot", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
