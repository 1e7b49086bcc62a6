package server_test

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
	"github.com/openpersona/console/internal/config"
	"github.com/openpersona/console/internal/server"
	appsession "github.com/openpersona/console/internal/session"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	bus := authevents.NewBus()
	store := appsession.New(afero.NewMemMapFs(), "/state/session.json", appsession.WithBus(bus))
	t.Cleanup(store.Close)

	e := echo.New()
	e.Validator = server.NewValidator()
	cookieStore := sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))
	e.Use(session.Middleware(cookieStore))

	s := &server.Server{
		E:     e,
		Cfg:   &config.Config{APIBaseURL: "http://localhost:4000", Addr: ":0", SessionSecret: "x"},
		Store: store,
		API:   apiclient.New("http://localhost:4000", apiclient.WithBus(bus), apiclient.WithTokenSource(store)),
		Bus:   bus,
	}
	s.RegisterRoutes()
	return s
}

func TestRoutes(t *testing.T) {
	t.Run("health endpoint answers OK", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("console routes require a session", func(t *testing.T) {
		s := newTestServer(t)

		for _, path := range []string{"/app/dashboards", "/app/files", "/app/resumes", "/app/billing"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code, path)
			assert.Equal(t, "/app/login", rec.Header().Get("Location"), path)
		}
	})

	t.Run("admin routes reject non-admin sessions", func(t *testing.T) {
		s := newTestServer(t)
		s.Store.SetToken("opaque-token")

		req := httptest.NewRequest(http.MethodGet, "/app/admin/users", nil)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("login page renders anonymously", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/app/login", nil)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Log in to OpenPersona")
	})
}
