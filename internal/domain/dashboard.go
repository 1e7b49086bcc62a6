package domain

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// Visibility controls who can see a dashboard.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
	VisibilityDraft    Visibility = "draft"
)

// Valid reports whether v is one of the visibility states the backend accepts.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate, VisibilityDraft:
		return true
	}
	return false
}

// Dashboard is a user-authored public page composed of sections.
// Relationships (owner, template) are implicit via the backend's own
// authorization; nothing is cross-checked client-side.
type Dashboard struct {
	ID          string          `json:"id"`
	Title       string          `json:"title" validate:"required,min=1,max=120"`
	Slug        string          `json:"slug"`
	Visibility  Visibility      `json:"visibility,omitempty"`
	Layout      json.RawMessage `json:"layout,omitempty"`
	TemplateID  string          `json:"templateId,omitempty"`
	IsPrimary   bool            `json:"isPrimary,omitempty"`
	Skills      []Skill         `json:"skills,omitempty"`
	Projects    []Project       `json:"projects,omitempty"`
	Experiences []Experience    `json:"experiences,omitempty"`
	Education   []Education     `json:"education,omitempty"`
	Links       []Link          `json:"links,omitempty"`
}

// Validate runs validation checks on the Dashboard struct using the defined tags.
func (d *Dashboard) Validate() error {
	return validatorInstance.Struct(d)
}

// Skill is a single skill entry on a dashboard.
type Skill struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Project is a single project entry on a dashboard.
type Project struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Experience is a single work-history entry on a dashboard.
type Experience struct {
	ID       string `json:"id,omitempty"`
	Company  string `json:"company"`
	RoleName string `json:"role,omitempty"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Education is a single education entry on a dashboard.
type Education struct {
	ID     string `json:"id,omitempty"`
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// Link is an outbound link entry on a dashboard.
type Link struct {
	ID    string `json:"id,omitempty"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SafeSlug reduces a title or user-entered slug to a URL-safe form.
// Collisions are not checked here; the backend rejects duplicates.
func SafeSlug(s string) string {
	return slug.Make(s)
}
