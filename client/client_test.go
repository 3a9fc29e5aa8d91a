package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodify/moodctl/client"
	"github.com/moodify/moodctl/session"
)

// recorded captures what the fake backend saw for one request.
type recorded struct {
	Method string
	Path   string
	Query  string
	Auth   string
	HasReq bool // X-Request-ID present
}

// fakeBackend is an in-process stand-in for the Moodify API. Handlers
// are registered per test; every request is recorded.
type fakeBackend struct {
	srv  *httptest.Server
	mux  *chi.Mux
	seen []recorded
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{mux: chi.NewRouter()}
	record := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fb.seen = append(fb.seen, recorded{
				Method: r.Method,
				Path:   r.URL.Path,
				Query:  r.URL.RawQuery,
				Auth:   r.Header.Get("Authorization"),
				HasReq: r.Header.Get("X-Request-ID") != "",
			})
			next.ServeHTTP(w, r)
		})
	}
	fb.mux.Use(record)
	fb.srv = httptest.NewServer(fb.mux)
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *fakeBackend) last(t *testing.T) recorded {
	t.Helper()
	require.NotEmpty(t, fb.seen, "expected at least one request")
	return fb.seen[len(fb.seen)-1]
}

func jsonHandler(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if v == nil {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}
}

func newClient(fb *fakeBackend, store session.Store) *client.Client {
	return client.New(client.Config{
		BaseURL:  fb.srv.URL,
		Sessions: store,
		Logger:   zerolog.Nop(),
	})
}

func TestAuthorizationHeaderPresentIffSession(t *testing.T) {
	fb := newFakeBackend(t)
	fb.mux.Get("/posts", jsonHandler(http.StatusOK, client.Page[client.Post]{}))

	t.Run("no session, no header", func(t *testing.T) {
		c := newClient(fb, session.NewMemoryStore())
		_, err := c.ListPosts(context.Background(), 0, 10)
		require.NoError(t, err)
		got := fb.last(t)
		assert.Empty(t, got.Auth)
		assert.Equal(t, "page=0&size=10", got.Query)
	})

	t.Run("session present, bearer header", func(t *testing.T) {
		store := session.NewMemoryStore()
		require.NoError(t, store.Save(session.Session{Token: "t1", ID: 5, Username: "alice"}))
		c := newClient(fb, store)
		_, err := c.ListPosts(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Equal(t, "Bearer t1", fb.last(t).Auth)
	})

	t.Run("empty token counts as absent", func(t *testing.T) {
		store := session.NewMemoryStore()
		require.NoError(t, store.Save(session.Session{Username: "ghost"}))
		c := newClient(fb, store)
		_, err := c.ListPosts(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Empty(t, fb.last(t).Auth)
	})
}

func TestEveryRequestCarriesRequestID(t *testing.T) {
	fb := newFakeBackend(t)
	fb.mux.Get("/posts", jsonHandler(http.StatusOK, client.Page[client.Post]{}))

	c := newClient(fb, session.NewMemoryStore())
	_, err := c.ListPosts(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.True(t, fb.last(t).HasReq)
}

func TestLoginThenCreatePostCarriesToken(t *testing.T) {
	fb := newFakeBackend(t)
	fb.mux.Post("/auth/login", jsonHandler(http.StatusOK, map[string]any{
		"token": "t1", "id": 5, "username": "alice", "roles": []string{"ROLE_USER"},
	}))
	fb.mux.Post("/posts", jsonHandler(http.StatusCreated, client.Post{ID: 1, Content: "hi"}))

	store := session.NewMemoryStore()
	c := newClient(fb, store)

	sess, err := c.Login(context.Background(), client.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, session.Session{Token: "t1", ID: 5, Username: "alice", Roles: []string{"ROLE_USER"}}, sess)

	// Login does not write the store; the flow does.
	assert.Empty(t, fb.last(t).Auth)
	require.NoError(t, store.Save(sess))

	_, err = c.CreatePost(context.Background(), client.PostRequest{Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer t1", fb.last(t).Auth)
}

func TestErrorBodyDecodedIntoAPIError(t *testing.T) {
	fb := newFakeBackend(t)
	fb.mux.Post("/auth/register", jsonHandler(http.StatusBadRequest, map[string]string{
		"message": "Username is already taken",
	}))
	fb.mux.Get("/posts/{id}", jsonHandler(http.StatusNotFound, map[string]string{
		"error": "post not found",
	}))

	c := newClient(fb, session.NewMemoryStore())

	_, err := c.Register(context.Background(), client.RegisterRequest{Username: "alice"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Username is already taken", apiErr.Message)
	assert.NotEmpty(t, apiErr.RequestID)

	_, err = c.GetPost(context.Background(), 42)
	assert.True(t, client.IsNotFound(err))
	assert.Equal(t, "post not found", client.ErrorMessage(err, "fallback"))
}

func TestTransportFailurePropagatedUnchanged(t *testing.T) {
	store := session.NewMemoryStore()
	c := client.New(client.Config{
		// Nothing listens here; the dial error must reach the caller
		// without being wrapped into an APIError.
		BaseURL:  "http://127.0.0.1:1",
		Sessions: store,
		Logger:   zerolog.Nop(),
	})
	_, err := c.ListPosts(context.Background(), 0, 10)
	require.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "could not reach server", client.ErrorMessage(err, "could not reach server"))
}

func TestDefaultBaseURLFallback(t *testing.T) {
	c := client.New(client.Config{Sessions: session.NewMemoryStore(), Logger: zerolog.Nop()})
	assert.Equal(t, client.DefaultBaseURL, c.BaseURL())
}
