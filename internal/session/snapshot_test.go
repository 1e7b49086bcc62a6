package session_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/session"
)

func TestSnapshotRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	const path = "/state/session.json"

	first := session.New(fs, path)
	first.SignIn(&domain.Session{
		Token: "tok-1",
		User:  &domain.User{ID: "u1", Email: "a@b.c", Plan: planNamed("Growth")},
	})
	first.ToggleSidebar()
	first.SetDashboards([]domain.Dashboard{{ID: "d1"}})
	first.Close()

	second := session.New(fs, path)
	t.Cleanup(second.Close)

	assert.Equal(t, "tok-1", second.Token())
	require.NotNil(t, second.User())
	assert.Equal(t, "u1", second.User().ID)
	require.NotNil(t, second.Plan())
	assert.Equal(t, "Growth", second.Plan().Name)
	assert.True(t, second.SidebarCollapsed())
	assert.Empty(t, second.Dashboards(), "cached collections are not persisted")
}

func TestSnapshotLogoutPersists(t *testing.T) {
	fs := afero.NewMemMapFs()
	const path = "/state/session.json"

	first := session.New(fs, path)
	first.SetToken("tok-1")
	first.Logout()
	first.Close()

	second := session.New(fs, path)
	t.Cleanup(second.Close)
	assert.False(t, second.Authenticated(), "logout must clear the persisted token too")
}

func TestSnapshotCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	const path = "/state/session.json"
	require.NoError(t, afero.WriteFile(fs, path, []byte("{not json"), 0o600))

	store := session.New(fs, path)
	t.Cleanup(store.Close)
	assert.False(t, store.Authenticated(), "corrupt snapshot falls back to a fresh session")
}

func TestSnapshotExcludesUIState(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := session.New(fs, "/state/session.json")
	t.Cleanup(store.Close)

	store.SetActiveTab("files")
	store.AddNotification("Saved", "")

	snap := store.Snapshot()
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.False(t, snap.SidebarCollapsed)
}
