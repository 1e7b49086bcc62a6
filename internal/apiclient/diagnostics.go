package apiclient

import (
	"context"
	"encoding/json"
)

// DiagnosticsService covers the backend's health surface.
type DiagnosticsService struct {
	client *Client
}

// Health pings the backend's /health endpoint.
func (s *DiagnosticsService) Health(ctx context.Context) error {
	return s.client.get(ctx, "/health", nil)
}

// Pulse returns the diagnostics pulse payload, raw.
func (s *DiagnosticsService) Pulse(ctx context.Context) (json.RawMessage, error) {
	return s.client.getRaw(ctx, "/api/diagnostics/pulse")
}
