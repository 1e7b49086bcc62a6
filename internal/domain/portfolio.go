package domain

import "encoding/json"

// Blueprint is the backend-generated structured summary of a user's
// resume/profile used to seed portfolio content. The section payloads are
// opaque to the console.
type Blueprint struct {
	Summary  string          `json:"summary,omitempty"`
	Headline string          `json:"headline,omitempty"`
	Sections json.RawMessage `json:"sections,omitempty"`
}

// PortfolioStatus reports where a user's portfolio sits in the
// draft/publish pipeline.
type PortfolioStatus struct {
	State       string          `json:"state,omitempty"`
	Published   bool            `json:"published,omitempty"`
	DashboardID string          `json:"dashboardId,omitempty"`
	Readiness   json.RawMessage `json:"readiness,omitempty"`
}

// PublicProfile is the no-auth view of a user's profile served at
// /api/public/@handle.
type PublicProfile struct {
	Handle     string      `json:"handle"`
	Name       string      `json:"name,omitempty"`
	Headline   string      `json:"headline,omitempty"`
	Dashboards []Dashboard `json:"dashboards,omitempty"`
}
