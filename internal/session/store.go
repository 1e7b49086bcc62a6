// Package session holds the console's per-user application state: identity,
// cached backend collections, and transient UI state. It is the single
// source of truth read and written by handlers and the CLI, replacing the
// original client's module-level store singleton with an injected instance.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/openpersona/console/internal/authevents"
	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/pubsub"
)

// ExpiredRedirect is where an unauthorized broadcast sends the user.
const ExpiredRedirect = "/app/login?session=expired"

// Notification is a transient user-facing toast.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
}

// Store is the in-memory + persisted application state. All methods are
// safe for concurrent use; collection mutators are last-writer-wins with no
// rollback, so a failed network call that was expected to accompany a
// mutation leaves store and server diverged until the next full reload.
type Store struct {
	mu sync.RWMutex

	// Identity.
	user    *domain.User
	token   string
	plan    *domain.Plan
	isAdmin bool

	// Cached collections, refetched per page load.
	dashboards []domain.Dashboard
	templates  []domain.Template
	files      []domain.File
	resumes    []domain.Resume

	blueprint       *domain.Blueprint
	portfolioStatus *domain.PortfolioStatus

	// UI state.
	activeTab        string
	sidebarCollapsed bool
	loading          map[string]bool
	notifications    []Notification

	// Set by the unauthorized handler, consumed by the next request.
	pendingRedirect string

	fs           afero.Fs
	snapshotPath string
	publisher    pubsub.Publisher
	logger       *slog.Logger
	unsubscribe  func()
}

// Option configures a Store.
type Option func(*Store)

// WithPublisher attaches an event publisher; session lifecycle and toast
// events are published best-effort.
func WithPublisher(pub pubsub.Publisher) Option {
	return func(s *Store) { s.publisher = pub }
}

// WithBus subscribes the store to unauthorized broadcasts from the given
// bus. Without this option the store never reacts to 401s on its own.
func WithBus(bus *authevents.Bus) Option {
	return func(s *Store) {
		s.unsubscribe = bus.SubscribeUnauthorized(s.HandleUnauthorized)
	}
}

// New creates a Store backed by the given filesystem, rehydrating any
// previously persisted snapshot from snapshotPath.
func New(fs afero.Fs, snapshotPath string, opts ...Option) *Store {
	s := &Store{
		activeTab:    "overview",
		loading:      make(map[string]bool),
		fs:           fs,
		snapshotPath: snapshotPath,
		logger:       slog.Default().With("component", "session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.rehydrate(); err != nil {
		s.logger.Warn("Could not rehydrate session snapshot", "path", snapshotPath, "error", err)
	}
	return s
}

// Close detaches the store from the auth-event bus.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// --- Identity ---

// SetUser stores the user and derives plan and admin state from it,
// keeping any previously known plan when the user record carries none.
func (s *Store) SetUser(user *domain.User) {
	s.mu.Lock()
	s.user = user
	if user != nil && user.Plan != nil {
		s.plan = user.Plan
	}
	s.isAdmin = user.Admin()
	s.mu.Unlock()
	s.persist()
}

// SetToken stores the bearer token.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.persist()
}

// SetPlan stores the subscription plan.
func (s *Store) SetPlan(plan *domain.Plan) {
	s.mu.Lock()
	s.plan = plan
	s.mu.Unlock()
	s.persist()
}

// SignIn applies a full session in one step and announces it.
func (s *Store) SignIn(session *domain.Session) {
	if session == nil {
		return
	}
	s.mu.Lock()
	s.token = session.Token
	s.user = session.User
	s.isAdmin = session.IsAdmin || session.User.Admin()
	if session.Plan != nil {
		s.plan = session.Plan
	} else if session.User != nil && session.User.Plan != nil {
		s.plan = session.User.Plan
	}
	userID := s.userIDLocked()
	s.mu.Unlock()

	s.persist()
	s.publish(pubsub.Message{Topic: pubsub.TopicSessionSignedIn, UserID: userID})
}

// Logout clears identity and all cached backend state.
func (s *Store) Logout() {
	s.mu.Lock()
	userID := s.userIDLocked()
	s.user = nil
	s.token = ""
	s.plan = nil
	s.isAdmin = false
	s.dashboards = nil
	s.files = nil
	s.resumes = nil
	s.blueprint = nil
	s.portfolioStatus = nil
	s.mu.Unlock()

	s.persist()
	s.publish(pubsub.Message{Topic: pubsub.TopicSessionCleared, UserID: userID})
}

// HandleUnauthorized reacts to a 401 broadcast: wipe the session, queue a
// toast, and point the next navigation at the login page.
func (s *Store) HandleUnauthorized() {
	s.Logout()
	s.AddNotification("Session expired", "Please login again to continue.")

	s.mu.Lock()
	s.pendingRedirect = ExpiredRedirect
	s.mu.Unlock()
}

// PendingRedirect returns and clears the forced navigation target, if any.
func (s *Store) PendingRedirect() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.pendingRedirect
	s.pendingRedirect = ""
	return target
}

// Token implements apiclient.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user, or nil when signed out.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Plan returns the current plan, or nil when unknown.
func (s *Store) Plan() *domain.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan
}

// IsAdmin reports whether the current session has admin rights.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}

// Authenticated reports whether a token is present. It says nothing about
// the token still being accepted by the backend.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

func (s *Store) userIDLocked() string {
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// --- Collections ---

// SetDashboards replaces the cached dashboard list.
func (s *Store) SetDashboards(dashboards []domain.Dashboard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboards = dashboards
}

// Dashboards returns a copy of the cached dashboard list.
func (s *Store) Dashboards() []domain.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Dashboard, len(s.dashboards))
	copy(out, s.dashboards)
	return out
}

// AddDashboard appends to the cached list.
func (s *Store) AddDashboard(d domain.Dashboard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboards = append(s.dashboards, d)
}

// UpdateDashboard applies mutate to the dashboard with the given id.
// Unknown ids are ignored, matching the original's map-and-skip behavior.
func (s *Store) UpdateDashboard(id string, mutate func(*domain.Dashboard)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.dashboards {
		if s.dashboards[i].ID == id {
			mutate(&s.dashboards[i])
			return
		}
	}
}

// RemoveDashboard drops the dashboard with the given id.
func (s *Store) RemoveDashboard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.dashboards[:0]
	for _, d := range s.dashboards {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.dashboards = kept
}

// DashboardBySlug looks up a cached dashboard by slug, returning
// domain.ErrNotFound when the cache holds no match.
func (s *Store) DashboardBySlug(slug string) (*domain.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.dashboards {
		if d.Slug == slug {
			dash := d
			return &dash, nil
		}
	}
	return nil, domain.ErrNotFound
}

// DashboardCount returns the number of cached dashboards.
func (s *Store) DashboardCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dashboards)
}

// PlanLimit returns the dashboard quota for the current plan.
func (s *Store) PlanLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.DashboardLimitFor(s.plan)
}

// CanCreateDashboard is the soft client-side gate on dashboard creation.
// The backend is the real enforcement.
func (s *Store) CanCreateDashboard() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dashboards) < domain.DashboardLimitFor(s.plan)
}

// EnsureCanCreateDashboard is CanCreateDashboard as a checkable error.
func (s *Store) EnsureCanCreateDashboard() error {
	if !s.CanCreateDashboard() {
		return domain.ErrPlanLimitReached
	}
	return nil
}

// SetTemplates replaces the cached template list.
func (s *Store) SetTemplates(templates []domain.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = templates
}

// Templates returns a copy of the cached template list.
func (s *Store) Templates() []domain.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// SetFiles replaces the cached file list.
func (s *Store) SetFiles(files []domain.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = files
}

// Files returns a copy of the cached file list.
func (s *Store) Files() []domain.File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.File, len(s.files))
	copy(out, s.files)
	return out
}

// AddFile appends to the cached file list.
func (s *Store) AddFile(f domain.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, f)
}

// RemoveFile drops the file with the given id.
func (s *Store) RemoveFile(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.files[:0]
	for _, f := range s.files {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	s.files = kept
}

// SetResumes replaces the cached resume list.
func (s *Store) SetResumes(resumes []domain.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes = resumes
}

// Resumes returns a copy of the cached resume list.
func (s *Store) Resumes() []domain.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Resume, len(s.resumes))
	copy(out, s.resumes)
	return out
}

// AddResume appends to the cached resume list.
func (s *Store) AddResume(r domain.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes = append(s.resumes, r)
}

// SetBlueprint caches the portfolio blueprint.
func (s *Store) SetBlueprint(bp *domain.Blueprint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blueprint = bp
}

// Blueprint returns the cached blueprint, or nil.
func (s *Store) Blueprint() *domain.Blueprint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blueprint
}

// SetPortfolioStatus caches the portfolio pipeline status.
func (s *Store) SetPortfolioStatus(status *domain.PortfolioStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolioStatus = status
}

// PortfolioStatus returns the cached pipeline status, or nil.
func (s *Store) PortfolioStatus() *domain.PortfolioStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolioStatus
}

// --- UI state ---

// SetActiveTab records the active dashboard tab.
func (s *Store) SetActiveTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
}

// ActiveTab returns the active dashboard tab.
func (s *Store) ActiveTab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// ToggleSidebar flips the persisted sidebar flag.
func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	s.sidebarCollapsed = !s.sidebarCollapsed
	s.mu.Unlock()
	s.persist()
}

// SidebarCollapsed returns the persisted sidebar flag.
func (s *Store) SidebarCollapsed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarCollapsed
}

// SetLoading flags an operation as in flight. There is no timeout: a hung
// backend call leaves the flag set, exactly as the original behaved.
func (s *Store) SetLoading(key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value {
		s.loading[key] = true
	} else {
		delete(s.loading, key)
	}
}

// Loading reports whether the named operation is in flight.
func (s *Store) Loading(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[key]
}

// AddNotification queues a toast and returns its id.
func (s *Store) AddNotification(title, message string) string {
	n := Notification{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
	}
	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()

	s.publish(pubsub.Message{Topic: pubsub.TopicToast, Payload: []byte(n.Title)})
	return n.ID
}

// Notifications returns a copy of the queued toasts.
func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// RemoveNotification drops one toast by id.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// ClearNotifications drops all queued toasts.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}

// DrainNotifications returns all queued toasts and clears the queue.
func (s *Store) DrainNotifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notifications
	s.notifications = nil
	return out
}

func (s *Store) publish(msg pubsub.Message) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), msg); err != nil {
		s.logger.Error("Failed to publish session event", "topic", msg.Topic, "error", err)
	}
}
