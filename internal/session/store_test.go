package session_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpersona/console/internal/authevents"
	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/session"
)

func newTestStore(t *testing.T, opts ...session.Option) *session.Store {
	t.Helper()
	store := session.New(afero.NewMemMapFs(), "/state/session.json", opts...)
	t.Cleanup(store.Close)
	return store
}

func planNamed(name string) *domain.Plan {
	return &domain.Plan{Name: name}
}

func TestPlanGate(t *testing.T) {
	cases := []struct {
		name     string
		plan     *domain.Plan
		existing int
		limit    int
		canAdd   bool
	}{
		{"No plan allows a single dashboard", nil, 0, 1, true},
		{"No plan blocks the second dashboard", nil, 1, 1, false},
		{"Free plan blocks the second dashboard", planNamed("Free"), 1, 1, false},
		{"Growth plan allows five", planNamed("Growth"), 4, 5, true},
		{"Growth plan blocks the sixth", planNamed("Growth Monthly"), 5, 5, false},
		{"Scale plan is effectively unlimited", planNamed("Scale Annual"), 250, domain.UnlimitedDashboards, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			store.SetPlan(tc.plan)

			dashboards := make([]domain.Dashboard, tc.existing)
			store.SetDashboards(dashboards)

			assert.Equal(t, tc.limit, store.PlanLimit())
			assert.Equal(t, tc.canAdd, store.CanCreateDashboard())
		})
	}
}

func TestSignInDerivesState(t *testing.T) {
	t.Run("Plan and admin flag come from the user when absent on the session", func(t *testing.T) {
		store := newTestStore(t)
		store.SignIn(&domain.Session{
			Token: "tok-1",
			User:  &domain.User{ID: "u1", Email: "a@b.c", Role: "admin", Plan: planNamed("Growth")},
		})

		assert.Equal(t, "tok-1", store.Token())
		assert.True(t, store.IsAdmin())
		require.NotNil(t, store.Plan())
		assert.Equal(t, "Growth", store.Plan().Name)
		assert.True(t, store.Authenticated())
	})

	t.Run("Nil session is ignored", func(t *testing.T) {
		store := newTestStore(t)
		store.SignIn(nil)
		assert.False(t, store.Authenticated())
	})
}

func TestLogoutClearsEverything(t *testing.T) {
	store := newTestStore(t)
	store.SignIn(&domain.Session{Token: "tok", User: &domain.User{ID: "u1", Email: "a@b.c"}})
	store.SetDashboards([]domain.Dashboard{{ID: "d1"}})
	store.SetFiles([]domain.File{{ID: "f1"}})
	store.SetResumes([]domain.Resume{{ID: "r1"}})
	store.SetBlueprint(&domain.Blueprint{})

	store.Logout()

	assert.False(t, store.Authenticated())
	assert.Nil(t, store.User())
	assert.Nil(t, store.Plan())
	assert.Empty(t, store.Dashboards())
	assert.Empty(t, store.Files())
	assert.Empty(t, store.Resumes())
	assert.Nil(t, store.Blueprint())
}

func TestUnauthorizedBroadcast(t *testing.T) {
	t.Run("401 broadcast wipes the session and queues a redirect", func(t *testing.T) {
		bus := authevents.NewBus()
		store := newTestStore(t, session.WithBus(bus))
		store.SignIn(&domain.Session{Token: "stale", User: &domain.User{ID: "u1", Email: "a@b.c"}})

		bus.EmitUnauthorized()

		assert.False(t, store.Authenticated(), "session should be cleared")
		assert.Equal(t, session.ExpiredRedirect, store.PendingRedirect())
		assert.Empty(t, store.PendingRedirect(), "redirect is consumed on read")

		notes := store.Notifications()
		require.Len(t, notes, 1)
		assert.Equal(t, "Session expired", notes[0].Title)
	})

	t.Run("Closed store no longer reacts to the bus", func(t *testing.T) {
		bus := authevents.NewBus()
		store := session.New(afero.NewMemMapFs(), "/state/session.json", session.WithBus(bus))
		store.SetToken("tok")

		store.Close()
		bus.EmitUnauthorized()

		assert.True(t, store.Authenticated(), "unsubscribed store keeps its token")
	})
}

func TestDashboardMutators(t *testing.T) {
	store := newTestStore(t)
	store.SetDashboards([]domain.Dashboard{{ID: "d1", Title: "One"}, {ID: "d2", Title: "Two"}})

	t.Run("Update mutates the matching dashboard only", func(t *testing.T) {
		store.UpdateDashboard("d2", func(d *domain.Dashboard) { d.Title = "Renamed" })
		dashboards := store.Dashboards()
		assert.Equal(t, "One", dashboards[0].Title)
		assert.Equal(t, "Renamed", dashboards[1].Title)
	})

	t.Run("Update on an unknown id is a no-op", func(t *testing.T) {
		store.UpdateDashboard("missing", func(d *domain.Dashboard) { d.Title = "X" })
		assert.Equal(t, 2, store.DashboardCount())
	})

	t.Run("Remove drops by id", func(t *testing.T) {
		store.RemoveDashboard("d1")
		dashboards := store.Dashboards()
		require.Len(t, dashboards, 1)
		assert.Equal(t, "d2", dashboards[0].ID)
	})

	t.Run("Add appends", func(t *testing.T) {
		store.AddDashboard(domain.Dashboard{ID: "d3"})
		assert.Equal(t, 2, store.DashboardCount())
	})
}

func TestDashboardBySlug(t *testing.T) {
	store := newTestStore(t)
	store.SetDashboards([]domain.Dashboard{{ID: "d1", Slug: "main-page"}})

	found, err := store.DashboardBySlug("main-page")
	require.NoError(t, err)
	assert.Equal(t, "d1", found.ID)

	_, err = store.DashboardBySlug("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnsureCanCreateDashboard(t *testing.T) {
	store := newTestStore(t)
	store.SetPlan(planNamed("Free"))

	assert.NoError(t, store.EnsureCanCreateDashboard())

	store.SetDashboards([]domain.Dashboard{{ID: "d1"}})
	assert.ErrorIs(t, store.EnsureCanCreateDashboard(), domain.ErrPlanLimitReached)
}

func TestNotifications(t *testing.T) {
	store := newTestStore(t)

	id := store.AddNotification("Saved", "Dashboard saved.")
	store.AddNotification("Heads up", "")
	require.Len(t, store.Notifications(), 2)

	store.RemoveNotification(id)
	notes := store.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, "Heads up", notes[0].Title)

	drained := store.DrainNotifications()
	assert.Len(t, drained, 1)
	assert.Empty(t, store.Notifications())
}

func TestLoadingFlags(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.Loading("dashboards"))
	store.SetLoading("dashboards", true)
	assert.True(t, store.Loading("dashboards"))
	store.SetLoading("dashboards", false)
	assert.False(t, store.Loading("dashboards"))
}
