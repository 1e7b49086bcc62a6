package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/normalize"
)

// ResumeService covers /api/resume.
type ResumeService struct {
	client *Client
}

// List returns the user's uploaded resumes.
func (s *ResumeService) List(ctx context.Context) ([]domain.Resume, error) {
	raw, err := s.client.getRaw(ctx, "/api/resume")
	if err != nil {
		return nil, err
	}
	return normalize.Slice[domain.Resume](raw, "resumes")
}

// Upload streams a resume document to the backend.
func (s *ResumeService) Upload(ctx context.Context, filename string, content io.Reader) (*domain.Resume, error) {
	var resume domain.Resume
	if err := s.client.doMultipart(ctx, "/api/resume/upload", "resume", filename, content, nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// SignedURL returns a time-limited download link for a resume.
func (s *ResumeService) SignedURL(ctx context.Context, id string) (*domain.SignedURL, error) {
	var signed domain.SignedURL
	if err := s.client.get(ctx, "/api/resume/"+id+"/url", &signed); err != nil {
		return nil, err
	}
	return &signed, nil
}

// AnalyzeRequest selects which resume to analyze and against what.
type AnalyzeRequest struct {
	ResumeID       string `json:"resumeId,omitempty"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// Analyze kicks off a backend resume analysis. The result shape is owned by
// the analysis service, so it stays raw for the caller to interpret.
func (s *ResumeService) Analyze(ctx context.Context, req AnalyzeRequest) (json.RawMessage, error) {
	var result json.RawMessage
	if err := s.client.do(ctx, http.MethodPost, "/api/resume/analyze", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}
