package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpersona/console/internal/handlers"
)

func TestLoginPost(t *testing.T) {
	t.Run("successful login stores the session and redirects to dashboards", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","email":"a@b.c","plan":{"name":"Growth"}}}`))
		}))

		handler := handlers.NewAuthHandler(env.api, env.store)
		env.e.POST("/app/login", handler.LoginPost)

		form := url.Values{}
		form.Set("email", "a@b.c")
		form.Set("password", "password123")
		req, rec := postForm(env.e, "/app/login", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/app/dashboards", rec.Header().Get("Location"))
		assert.Equal(t, "tok-1", env.store.Token())
		require.NotNil(t, env.store.Plan())
		assert.Equal(t, "Growth", env.store.Plan().Name)
		assertFlashMessage(t, req, "success", "Logged in successfully!")
	})

	t.Run("rejected credentials flash an error and keep the session empty", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid credentials"}`))
		}))

		handler := handlers.NewAuthHandler(env.api, env.store)
		env.e.POST("/app/login", handler.LoginPost)

		form := url.Values{}
		form.Set("email", "a@b.c")
		form.Set("password", "wrong-password")
		req, rec := postForm(env.e, "/app/login", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/app/login", rec.Header().Get("Location"))
		assert.False(t, env.store.Authenticated())
		assertFlashMessage(t, req, "error", "Invalid email or password.")
	})
}

func TestRegisterPost(t *testing.T) {
	t.Run("sets error flash on password mismatch without a backend call", func(t *testing.T) {
		var backendHit bool
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			backendHit = true
		}))

		handler := handlers.NewAuthHandler(env.api, env.store)
		env.e.POST("/app/register", handler.RegisterPost)

		form := url.Values{}
		form.Set("email", "test@example.com")
		form.Set("password", "password123")
		form.Set("password_confirm", "wrongpassword")
		req, rec := postForm(env.e, "/app/register", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.False(t, backendHit)
		assertFlashMessage(t, req, "error", "Passwords do not match.")
	})

	t.Run("a short password is rejected by the validator without a backend call", func(t *testing.T) {
		var backendHit bool
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			backendHit = true
		}))

		handler := handlers.NewAuthHandler(env.api, env.store)
		env.e.POST("/app/register", handler.RegisterPost)

		form := url.Values{}
		form.Set("email", "test@example.com")
		form.Set("password", "abc")
		form.Set("password_confirm", "abc")
		req, rec := postForm(env.e, "/app/register", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/app/register", rec.Header().Get("Location"))
		assert.False(t, backendHit)
		assertFlashMessage(t, req, "error", "Password must be at least 8 characters long.")
	})

	t.Run("a malformed email is rejected by the validator", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		handler := handlers.NewAuthHandler(env.api, env.store)
		env.e.POST("/app/register", handler.RegisterPost)

		form := url.Values{}
		form.Set("email", "not-an-email")
		form.Set("password", "password123")
		form.Set("password_confirm", "password123")
		req, _ := postForm(env.e, "/app/register", form)

		assertFlashMessage(t, req, "error", "Enter a valid email address.")
	})

	t.Run("duplicate email surfaces the conflict message", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"email taken"}`))
		}))

		handler := handlers.NewAuthHandler(env.api, env.store)
		env.e.POST("/app/register", handler.RegisterPost)

		form := url.Values{}
		form.Set("email", "taken@example.com")
		form.Set("password", "password123")
		form.Set("password_confirm", "password123")
		req, _ := postForm(env.e, "/app/register", form)

		assertFlashMessage(t, req, "error", "An account with this email already exists.")
	})

	t.Run("successful registration signs the user in", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"token":"tok-9","user":{"id":"u9","email":"new@example.com"}}`))
		}))

		handler := handlers.NewAuthHandler(env.api, env.store)
		env.e.POST("/app/register", handler.RegisterPost)

		form := url.Values{}
		form.Set("email", "new@example.com")
		form.Set("password", "password123")
		form.Set("password_confirm", "password123")
		req, rec := postForm(env.e, "/app/register", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.True(t, env.store.Authenticated())
		assertFlashMessage(t, req, "success", "Account created successfully!")
	})
}

func TestLogout(t *testing.T) {
	t.Run("clears the local session even when the backend call fails", func(t *testing.T) {
		env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		env.store.SetToken("tok")

		handler := handlers.NewAuthHandler(env.api, env.store)
		env.e.GET("/app/logout", handler.Logout)

		req := httptest.NewRequest(http.MethodGet, "/app/logout", nil)
		rec := httptest.NewRecorder()
		env.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.False(t, env.store.Authenticated())
	})
}
