package apiclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/authevents"
	"github.com/openpersona/console/internal/domain"
)

// newTestClient wires a client against an httptest server with a fixed token
// and an isolated bus.
func newTestClient(t *testing.T, handler http.Handler, token string) (*apiclient.Client, *authevents.Bus) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	bus := authevents.NewBus()
	client := apiclient.New(srv.URL,
		apiclient.WithBus(bus),
		apiclient.WithTokenSource(apiclient.TokenSourceFunc(func() string { return token })),
	)
	return client, bus
}

func TestClientAuthHeader(t *testing.T) {
	t.Run("Bearer header is sent when a token is present", func(t *testing.T) {
		var gotAuth string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"token":"tok-1","user":{"email":"a@b.c"}}`))
		})
		client, _ := newTestClient(t, handler, "tok-1")

		_, err := client.Auth.Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-1", gotAuth)
	})

	t.Run("No Authorization header without a token", func(t *testing.T) {
		var hasAuth bool
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasAuth = r.Header["Authorization"]
			w.Write([]byte(`{}`))
		})
		client, _ := newTestClient(t, handler, "")

		_, err := client.Auth.Me(context.Background())
		require.NoError(t, err)
		assert.False(t, hasAuth, "anonymous requests should carry no Authorization header")
	})
}

func TestClientErrorHandling(t *testing.T) {
	t.Run("Non-2xx yields an APIError with status and parsed message", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"error":"slug already taken"}`))
		})
		client, _ := newTestClient(t, handler, "tok")

		_, err := client.Dashboards.Create(context.Background(), apiclient.CreateDashboardRequest{Title: "My Page"})
		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
		assert.Equal(t, "slug already taken", apiErr.Message)
		assert.JSONEq(t, `{"error":"slug already taken"}`, string(apiErr.Body))
	})

	t.Run("Unparsable error body falls back to status text", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>nope</html>"))
		})
		client, _ := newTestClient(t, handler, "tok")

		err := client.Files.Remove(context.Background(), "f1")
		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
		assert.Equal(t, "Bad Gateway", apiErr.Message)
	})

	t.Run("401 broadcasts unauthorized before returning", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"token expired"}`))
		})
		client, bus := newTestClient(t, handler, "stale")

		var fired int
		bus.SubscribeUnauthorized(func() { fired++ })

		_, err := client.Dashboards.List(context.Background())
		assert.True(t, apiclient.IsUnauthorized(err), "caller should still see the 401")
		assert.Equal(t, 1, fired, "unauthorized broadcast should fire exactly once")
	})

	t.Run("Other statuses do not broadcast", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		client, bus := newTestClient(t, handler, "tok")

		var fired int
		bus.SubscribeUnauthorized(func() { fired++ })

		err := client.Files.Remove(context.Background(), "f1")
		assert.True(t, apiclient.IsStatus(err, http.StatusForbidden))
		assert.Zero(t, fired, "403 must not trigger the unauthorized broadcast")
	})

	t.Run("Transport failure is not an APIError", func(t *testing.T) {
		client := apiclient.New("http://127.0.0.1:1", apiclient.WithBus(authevents.NewBus()))
		_, err := client.Dashboards.List(context.Background())
		require.Error(t, err)
		var apiErr *apiclient.APIError
		assert.False(t, errors.As(err, &apiErr), "network errors should stay distinguishable from HTTP errors")
	})
}

func TestClientBodyHandling(t *testing.T) {
	t.Run("204 yields no error and no decode attempt", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		client, _ := newTestClient(t, handler, "tok")

		err := client.Dashboards.Remove(context.Background(), "d1")
		assert.NoError(t, err)
	})

	t.Run("Unparsable success body is treated as empty", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})
		client, _ := newTestClient(t, handler, "tok")

		session, err := client.Auth.Me(context.Background())
		require.NoError(t, err)
		assert.Empty(t, session.Token)
	})
}

func TestDashboardList(t *testing.T) {
	t.Run("Wrapped items payload normalizes to two dashboards", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/dashboards", r.URL.Path)
			w.Write([]byte(`{"items":[{"id":"d1","title":"One"},{"id":"d2","title":"Two"}]}`))
		})
		client, _ := newTestClient(t, handler, "tok")

		dashboards, err := client.Dashboards.List(context.Background())
		require.NoError(t, err)
		require.Len(t, dashboards, 2)
		assert.Equal(t, "d1", dashboards[0].ID)
		assert.Equal(t, "Two", dashboards[1].Title)
	})

	t.Run("Bare array payload works identically", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":"d1"},{"id":"d2"}]`))
		})
		client, _ := newTestClient(t, handler, "tok")

		dashboards, err := client.Dashboards.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, dashboards, 2)
	})
}

func TestDashboardCreate(t *testing.T) {
	t.Run("Slug is reduced to URL-safe form before sending", func(t *testing.T) {
		var body string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			body = string(raw)
			w.Write([]byte(`{"id":"d1","title":"My Page","slug":"my-page"}`))
		})
		client, _ := newTestClient(t, handler, "tok")

		created, err := client.Dashboards.Create(context.Background(), apiclient.CreateDashboardRequest{
			Title: "My Page",
			Slug:  "My Pagé!!",
		})
		require.NoError(t, err)
		assert.Contains(t, body, `"slug":"my-page"`)
		assert.Equal(t, "d1", created.ID)
	})
}

func TestDashboardFullSave(t *testing.T) {
	t.Run("A dashboard without a title never makes the round trip", func(t *testing.T) {
		var backendHit bool
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			backendHit = true
		})
		client, _ := newTestClient(t, handler, "tok")

		_, err := client.Dashboards.FullSave(context.Background(), "d1", &domain.Dashboard{ID: "d1"})
		require.Error(t, err)
		assert.False(t, backendHit)
	})
}

func TestFileUpload(t *testing.T) {
	t.Run("Multipart upload carries file, fields and auth header", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/files/upload", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "avatar", r.FormValue("category"))
			assert.Equal(t, "my-page", r.FormValue("dashboardSlug"))

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "photo.png", header.Filename)
			contents, _ := io.ReadAll(file)
			assert.Equal(t, "fake-png-bytes", string(contents))

			w.Write([]byte(`{"id":"f1","filename":"photo.png"}`))
		})
		client, _ := newTestClient(t, handler, "tok")

		file, err := client.Files.Upload(context.Background(), apiclient.FileUpload{
			Filename:      "photo.png",
			Category:      "avatar",
			DashboardSlug: "my-page",
			Content:       strings.NewReader("fake-png-bytes"),
		})
		require.NoError(t, err)
		assert.Equal(t, "f1", file.ID)
	})
}
