package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openpersona/console/internal/handlers"
)

func TestSupportHighlightsGet(t *testing.T) {
	t.Run("renders sanitized moments from a loose payload", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/support/highlights", r.URL.Path)
			w.Write([]byte(`{"moments":[{"title":"Shipped v2","detail":{"text":"Led the rollout"}}]}`))
		}))
		env.store.SetToken("tok")

		handler := handlers.NewSupportHandler(env.api, env.store)
		env.e.GET("/app/support", handler.HighlightsGet)

		req := httptest.NewRequest(http.MethodGet, "/app/support", nil)
		rec := httptest.NewRecorder()
		env.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Shipped v2")
		assert.Contains(t, rec.Body.String(), "Led the rollout")
	})
}

func TestSupportJobMatchPost(t *testing.T) {
	t.Run("renders the match report inline", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/support/job-match":
				w.Write([]byte(`{"score":82}`))
			case "/api/support/highlights":
				w.Write([]byte(`{}`))
			}
		}))
		env.store.SetToken("tok")

		handler := handlers.NewSupportHandler(env.api, env.store)
		env.e.POST("/app/support/match", handler.JobMatchPost)

		form := url.Values{}
		form.Set("jobDescription", "Senior Gopher wanted")
		_, rec := postForm(env.e, "/app/support/match", form)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `&#34;score&#34;: 82`)
	})

	t.Run("an empty description never reaches the backend", func(t *testing.T) {
		var matchHit bool
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/support/job-match" {
				matchHit = true
			}
			w.Write([]byte(`{}`))
		}))
		env.store.SetToken("tok")

		handler := handlers.NewSupportHandler(env.api, env.store)
		env.e.POST("/app/support/match", handler.JobMatchPost)

		_, rec := postForm(env.e, "/app/support/match", url.Values{})

		// The page renders in the same request, so the flash shows up
		// in the body instead of surviving in the session.
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, matchHit)
		assert.Contains(t, rec.Body.String(), "Paste a job description first.")
	})
}

func TestSupportCopilotPost(t *testing.T) {
	t.Run("shows the copilot reply", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/support/copilot":
				w.Write([]byte(`{"reply":"Lead with the migration project."}`))
			case "/api/support/highlights":
				w.Write([]byte(`{}`))
			}
		}))
		env.store.SetToken("tok")

		handler := handlers.NewSupportHandler(env.api, env.store)
		env.e.POST("/app/support/ask", handler.CopilotPost)

		form := url.Values{}
		form.Set("message", "What should I highlight?")
		_, rec := postForm(env.e, "/app/support/ask", form)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Lead with the migration project.")
	})
}
