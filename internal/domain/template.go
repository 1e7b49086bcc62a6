package domain

import "encoding/json"

// Template is a read-mostly, admin-mutable portfolio theme.
// ThemeConfig is opaque JSON owned by the backend.
type Template struct {
	ID          string          `json:"id,omitempty"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	ThemeConfig json.RawMessage `json:"themeConfig,omitempty"`
	IsPremium   bool            `json:"isPremium,omitempty"`
	Status      string          `json:"status,omitempty"`
}
