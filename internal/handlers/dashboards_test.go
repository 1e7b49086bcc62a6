package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/handlers"
)

func postForm(e *echo.Echo, path string, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return req, rec
}

func TestDashboardCreatePost(t *testing.T) {
	t.Run("blocks creation at the plan limit without calling the backend", func(t *testing.T) {
		var backendHit bool
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			backendHit = true
		}))

		// Free plan allows one dashboard; the cache already holds one.
		env.store.SetDashboards([]domain.Dashboard{{ID: "d1", Title: "One", Slug: "one"}})

		handler := handlers.NewDashboardHandler(env.api, env.store)
		env.e.POST("/app/dashboards", handler.CreatePost)

		form := url.Values{}
		form.Set("title", "Second")
		req, rec := postForm(env.e, "/app/dashboards", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/app/dashboards", rec.Header().Get("Location"))
		assert.False(t, backendHit, "the quota check should short-circuit before any network call")
		assertFlashMessage(t, req, "error", "You've reached your plan's dashboard limit. Upgrade to add more.")
	})

	t.Run("an empty title is rejected by the validator without a backend call", func(t *testing.T) {
		var backendHit bool
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			backendHit = true
		}))
		env.store.SetPlan(&domain.Plan{Name: "Growth"})

		handler := handlers.NewDashboardHandler(env.api, env.store)
		env.e.POST("/app/dashboards", handler.CreatePost)

		req, rec := postForm(env.e, "/app/dashboards", url.Values{})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.False(t, backendHit)
		assertFlashMessage(t, req, "error", "A dashboard title is required (120 characters max).")
	})

	t.Run("flashes Save failed when the backend rejects the create", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
		}))
		env.store.SetPlan(&domain.Plan{Name: "Growth"})

		handler := handlers.NewDashboardHandler(env.api, env.store)
		env.e.POST("/app/dashboards", handler.CreatePost)

		form := url.Values{}
		form.Set("title", "My Page")
		req, rec := postForm(env.e, "/app/dashboards", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assertFlashMessage(t, req, "error", "Save failed")
		assert.Zero(t, env.store.DashboardCount(), "failed create must not land in the cache")
	})

	t.Run("adds the created dashboard to the cache and redirects to the editor", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/dashboards/create", r.URL.Path)
			w.Write([]byte(`{"id":"d9","title":"My Page","slug":"my-page"}`))
		}))
		env.store.SetPlan(&domain.Plan{Name: "Growth"})

		handler := handlers.NewDashboardHandler(env.api, env.store)
		env.e.POST("/app/dashboards", handler.CreatePost)

		form := url.Values{}
		form.Set("title", "My Page")
		_, rec := postForm(env.e, "/app/dashboards", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/app/dashboards/my-page", rec.Header().Get("Location"))
		require.Equal(t, 1, env.store.DashboardCount())
		assert.Equal(t, "d9", env.store.Dashboards()[0].ID)
	})
}

func TestDashboardListGet(t *testing.T) {
	t.Run("renders dashboards from a wrapped payload and caches them", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"dashboards":[{"id":"d1","title":"One","slug":"one"},{"id":"d2","title":"Two","slug":"two"}]}`))
		}))
		env.store.SetToken("tok")

		handler := handlers.NewDashboardHandler(env.api, env.store)
		env.e.GET("/app/dashboards", handler.ListGet)

		req := httptest.NewRequest(http.MethodGet, "/app/dashboards", nil)
		rec := httptest.NewRecorder()
		env.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "One")
		assert.Contains(t, rec.Body.String(), "Two")
		assert.Equal(t, 2, env.store.DashboardCount())
	})

	t.Run("a 401 clears the session through the broadcast", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"token expired"}`))
		}))
		env.store.SetToken("stale")

		handler := handlers.NewDashboardHandler(env.api, env.store)
		env.e.GET("/app/dashboards", handler.ListGet)

		req := httptest.NewRequest(http.MethodGet, "/app/dashboards", nil)
		rec := httptest.NewRecorder()
		env.e.ServeHTTP(rec, req)

		assert.False(t, env.store.Authenticated(), "the unauthorized broadcast should wipe the session")
		assert.NotEmpty(t, env.store.PendingRedirect(), "the next request should be bounced to login")
	})
}

func TestDashboardDelete(t *testing.T) {
	t.Run("htmx delete removes from cache and sends HX-Redirect", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		env.store.SetDashboards([]domain.Dashboard{{ID: "d1", Slug: "one"}})

		handler := handlers.NewDashboardHandler(env.api, env.store)
		env.e.DELETE("/app/dashboards/:id", handler.DeletePost)

		req := httptest.NewRequest(http.MethodDelete, "/app/dashboards/d1", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		env.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/app/dashboards", rec.Header().Get("HX-Redirect"))
		assert.Zero(t, env.store.DashboardCount())
	})
}
