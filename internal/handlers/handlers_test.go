package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/authevents"
	"github.com/openpersona/console/internal/server"
	appsession "github.com/openpersona/console/internal/session"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// testEnv wires an echo instance, a session store and an API client against
// a fake backend.
type testEnv struct {
	e     *echo.Echo
	api   *apiclient.Client
	store *appsession.Store
	bus   *authevents.Bus
}

func newTestEnv(t *testing.T, backend http.Handler) *testEnv {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	bus := authevents.NewBus()
	store := appsession.New(afero.NewMemMapFs(), "/state/session.json", appsession.WithBus(bus))
	t.Cleanup(store.Close)

	api := apiclient.New(srv.URL,
		apiclient.WithBus(bus),
		apiclient.WithTokenSource(store),
	)

	e := echo.New()
	e.Validator = server.NewValidator()
	cookieStore := sessions.NewCookieStore([]byte(testSessionSecret))
	e.Use(session.Middleware(cookieStore))

	return &testEnv{e: e, api: api, store: store, bus: bus}
}

// assertFlashMessage checks for a specific flash message in the session.
func assertFlashMessage(t *testing.T, req *http.Request, key, expectedMessage string) {
	t.Helper()

	cookieStore := sessions.NewCookieStore([]byte(testSessionSecret))
	sess, _ := cookieStore.Get(req, "flash-session")

	flashes := sess.Flashes(key)
	assert.NotEmpty(t, flashes, "expected flash message but found none for key: %s", key)
	if len(flashes) > 0 {
		assert.Equal(t, expectedMessage, flashes[0])
	}
}
