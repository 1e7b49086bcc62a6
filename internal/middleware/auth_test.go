package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/openpersona/console/internal/authevents"
	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/middleware"
	"github.com/openpersona/console/internal/session"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	store := session.New(afero.NewMemMapFs(), "/state/session.json")
	t.Cleanup(store.Close)
	return store
}

func serveProtected(store *session.Store, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/app/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/app/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous request redirects to login", func(t *testing.T) {
		store := newStore(t)
		rec := serveProtected(store, middleware.RequireAuth(store))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/app/login", rec.Header().Get("Location"))
	})

	t.Run("authenticated request passes through", func(t *testing.T) {
		store := newStore(t)
		store.SetToken("opaque-token")
		rec := serveProtected(store, middleware.RequireAuth(store))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("pending redirect from a 401 broadcast wins over everything", func(t *testing.T) {
		bus := authevents.NewBus()
		store := session.New(afero.NewMemMapFs(), "/state/session.json", session.WithBus(bus))
		t.Cleanup(store.Close)
		store.SetToken("tok")

		bus.EmitUnauthorized()
		rec := serveProtected(store, middleware.RequireAuth(store))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, session.ExpiredRedirect, rec.Header().Get("Location"))
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("non-admin gets a 403", func(t *testing.T) {
		store := newStore(t)
		store.SetToken("tok")
		rec := serveProtected(store, middleware.RequireAdmin(store))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes through", func(t *testing.T) {
		store := newStore(t)
		store.SetUser(&domain.User{ID: "u1", Email: "a@b.c", Role: "admin"})
		rec := serveProtected(store, middleware.RequireAdmin(store))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
