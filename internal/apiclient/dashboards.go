package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/normalize"
)

// DashboardService covers /api/dashboards and its nested sub-resources.
type DashboardService struct {
	client *Client
}

// List returns all of the user's dashboards. The backend wraps this
// collection inconsistently, so the payload goes through the normalizer.
func (s *DashboardService) List(ctx context.Context) ([]domain.Dashboard, error) {
	raw, err := s.client.getRaw(ctx, "/api/dashboards")
	if err != nil {
		return nil, err
	}
	return normalize.Slice[domain.Dashboard](raw, "dashboards")
}

// Current returns the user's primary dashboard.
func (s *DashboardService) Current(ctx context.Context) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	if err := s.client.get(ctx, "/api/dashboards/current", &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// CreateDashboardRequest is the create payload.
type CreateDashboardRequest struct {
	Title      string            `json:"title" validate:"required,min=1,max=120"`
	Slug       string            `json:"slug,omitempty"`
	Visibility domain.Visibility `json:"visibility,omitempty"`
	TemplateID string            `json:"templateId,omitempty"`
}

// Create makes a new dashboard. The slug is reduced to its URL-safe form;
// collisions are the backend's problem.
func (s *DashboardService) Create(ctx context.Context, req CreateDashboardRequest) (*domain.Dashboard, error) {
	if req.Slug != "" {
		req.Slug = domain.SafeSlug(req.Slug)
	}
	var dashboard domain.Dashboard
	if err := s.client.do(ctx, http.MethodPost, "/api/dashboards/create", req, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// Detail fetches one dashboard by id.
func (s *DashboardService) Detail(ctx context.Context, id string) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	if err := s.client.get(ctx, "/api/dashboards/"+id, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// Update patches top-level dashboard fields.
func (s *DashboardService) Update(ctx context.Context, id string, patch map[string]any) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	if err := s.client.do(ctx, http.MethodPut, "/api/dashboards/"+id, patch, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// FullSave replaces the entire dashboard document in one call. The
// document is checked locally first so an obviously broken save never
// makes the round trip.
func (s *DashboardService) FullSave(ctx context.Context, id string, dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	if err := dashboard.Validate(); err != nil {
		return nil, err
	}
	var saved domain.Dashboard
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/save", id), dashboard, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Remove deletes a dashboard.
func (s *DashboardService) Remove(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/dashboards/"+id, nil, nil)
}

// SetTemplate switches the dashboard's template.
func (s *DashboardService) SetTemplate(ctx context.Context, id, templateID string) error {
	body := map[string]string{"templateId": templateID}
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/template", id), body, nil)
}

// SetVisibility changes who can see the dashboard.
func (s *DashboardService) SetVisibility(ctx context.Context, id string, visibility domain.Visibility) error {
	if !visibility.Valid() {
		return domain.ErrInvalidVisibility
	}
	body := map[string]string{"visibility": string(visibility)}
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/visibility", id), body, nil)
}

// SetSectionVisibility toggles a single section on a dashboard.
func (s *DashboardService) SetSectionVisibility(ctx context.Context, id, section string, visible bool) error {
	body := map[string]any{"section": section, "visible": visible}
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/section-visibility", id), body, nil)
}

// SetPrimary marks the dashboard as the user's primary one.
func (s *DashboardService) SetPrimary(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/primary", id), nil, nil)
}

// SetImage assigns an uploaded image to an image slot on the dashboard.
func (s *DashboardService) SetImage(ctx context.Context, id, imageType, imageURL string) error {
	body := map[string]string{"imageType": imageType, "imageUrl": imageURL}
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/image", id), body, nil)
}

// AddSkill appends a skill to the dashboard.
func (s *DashboardService) AddSkill(ctx context.Context, id string, skill domain.Skill) (*domain.Skill, error) {
	var created domain.Skill
	if err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("/api/dashboards/%s/skills", id), skill, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSkill replaces a skill entry.
func (s *DashboardService) UpdateSkill(ctx context.Context, id, skillID string, skill domain.Skill) error {
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/skills/%s", id, skillID), skill, nil)
}

// DeleteSkill removes a skill entry.
func (s *DashboardService) DeleteSkill(ctx context.Context, id, skillID string) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/dashboards/%s/skills/%s", id, skillID), nil, nil)
}

// AddProject appends a project to the dashboard.
func (s *DashboardService) AddProject(ctx context.Context, id string, project domain.Project) (*domain.Project, error) {
	var created domain.Project
	if err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("/api/dashboards/%s/projects", id), project, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject replaces a project entry.
func (s *DashboardService) UpdateProject(ctx context.Context, id, projectID string, project domain.Project) error {
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/projects/%s", id, projectID), project, nil)
}

// DeleteProject removes a project entry.
func (s *DashboardService) DeleteProject(ctx context.Context, id, projectID string) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/dashboards/%s/projects/%s", id, projectID), nil, nil)
}

// AddExperience appends a work-history entry to the dashboard.
func (s *DashboardService) AddExperience(ctx context.Context, id string, exp domain.Experience) (*domain.Experience, error) {
	var created domain.Experience
	if err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("/api/dashboards/%s/experiences", id), exp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateExperience replaces a work-history entry.
func (s *DashboardService) UpdateExperience(ctx context.Context, id, expID string, exp domain.Experience) error {
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/experiences/%s", id, expID), exp, nil)
}

// DeleteExperience removes a work-history entry.
func (s *DashboardService) DeleteExperience(ctx context.Context, id, expID string) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/dashboards/%s/experiences/%s", id, expID), nil, nil)
}

// AddEducation appends an education entry to the dashboard.
func (s *DashboardService) AddEducation(ctx context.Context, id string, edu domain.Education) (*domain.Education, error) {
	var created domain.Education
	if err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("/api/dashboards/%s/education", id), edu, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEducation replaces an education entry.
func (s *DashboardService) UpdateEducation(ctx context.Context, id, eduID string, edu domain.Education) error {
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/education/%s", id, eduID), edu, nil)
}

// DeleteEducation removes an education entry.
func (s *DashboardService) DeleteEducation(ctx context.Context, id, eduID string) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/dashboards/%s/education/%s", id, eduID), nil, nil)
}

// AddLink appends an outbound link to the dashboard.
func (s *DashboardService) AddLink(ctx context.Context, id string, link domain.Link) (*domain.Link, error) {
	var created domain.Link
	if err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("/api/dashboards/%s/links", id), link, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateLink replaces an outbound link.
func (s *DashboardService) UpdateLink(ctx context.Context, id, linkID string, link domain.Link) error {
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/dashboards/%s/links/%s", id, linkID), link, nil)
}

// DeleteLink removes an outbound link.
func (s *DashboardService) DeleteLink(ctx context.Context, id, linkID string) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/dashboards/%s/links/%s", id, linkID), nil, nil)
}

// Reorder rearranges one of the dashboard's item collections.
// itemType names the collection ("skills", "projects", ...).
func (s *DashboardService) Reorder(ctx context.Context, id, itemType string, ids []string) error {
	body := map[string]any{"type": itemType, "ids": ids}
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/api/dashboards/%s/reorder", id), body, nil)
}
