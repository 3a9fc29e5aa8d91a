package cmd

import (
	"context"
	"encoding/json"
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

func TestCheckSelfDelete(t *testing.T) {
	admin := session.Session{Token: "t1", ID: 5, Roles: []string{session.RoleAdmin}}
	assert.Error(t, checkSelfDelete(admin, 5))
	assert.NoError(t, checkSelfDelete(admin, 6))
}

func TestSelfDeleteRejectedBeforeDispatch(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	sess := session.Session{Token: "t1", ID: 5, Username: "root", Roles: []string{session.RoleAdmin}}
	require.NoError(t, store.Save(sess))
	api := client.New(client.Config{BaseURL: srv.URL, Sessions: store, Logger: zerolog.Nop()})

	// The flow checks before shaping any request.
	if err := checkSelfDelete(sess, 5); err == nil {
		_ = api.DeleteUser(context.Background(), 5)
	}
	assert.Zero(t, requests, "self-delete must never reach the backend")
}

func TestFetchUsersPageStepsBackWhenPageEmptied(t *testing.T) {
	mux := chi.NewRouter()
	mux.Get("/admin/users", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		switch page {
		case "2":
			// The last user on this page was just deleted.
			json.NewEncoder(w).Encode(client.Page[client.User]{
				Content: nil, TotalPages: 2, Number: 2, Last: true,
			})
		default:
			json.NewEncoder(w).Encode(client.Page[client.User]{
				Content:    []client.User{{ID: 7, Username: "carol"}},
				TotalPages: 2, Number: 1, Last: true,
			})
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := session.NewMemoryStore()
	require.NoError(t, store.Save(session.Session{Token: "t1", ID: 1, Roles: []string{session.RoleAdmin}}))
	api := client.New(client.Config{BaseURL: srv.URL, Sessions: store, Logger: zerolog.Nop()})

	page, err := fetchUsersPage(context.Background(), api, 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "carol", page.Content[0].Username)
	assert.Equal(t, 1, page.Number)
}

func TestFetchUsersPageEmptyFirstPageStays(t *testing.T) {
	mux := chi.NewRouter()
	calls := 0
	mux.Get("/admin/users", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client.Page[client.User]{TotalPages: 0, Number: 0, Last: true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := session.NewMemoryStore()
	require.NoError(t, store.Save(session.Session{Token: "t1", ID: 1}))
	api := client.New(client.Config{BaseURL: srv.URL, Sessions: store, Logger: zerolog.Nop()})

	page, err := fetchUsersPage(context.Background(), api, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, 1, calls, "page zero never steps back")
}
