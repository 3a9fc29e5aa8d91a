package session

import (
	"path/filepath"
	"testing"
)

// storeTests runs the common suite against any Store implementation.
func storeTests(t *testing.T, store Store) {
	t.Helper()

	t.Run("SaveAndCurrent", func(t *testing.T) {
		s := Session{
			Token:    "tok-1",
			ID:       5,
			Username: "alice",
			Roles:    []string{"ROLE_USER"},
		}
		if err := store.Save(s); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, ok := store.Current()
		if !ok {
			t.Fatal("expected to find session")
		}
		if got.Token != "tok-1" {
			t.Fatalf("got Token %q, want %q", got.Token, "tok-1")
		}
		if got.ID != 5 {
			t.Fatalf("got ID %d, want 5", got.ID)
		}
		if got.Username != "alice" {
			t.Fatalf("got Username %q, want %q", got.Username, "alice")
		}
		if len(got.Roles) != 1 || got.Roles[0] != "ROLE_USER" {
			t.Fatalf("got Roles %v, want [ROLE_USER]", got.Roles)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		if err := store.Save(Session{Token: "v1", Username: "first"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := store.Save(Session{Token: "v2", Username: "second"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, ok := store.Current()
		if !ok {
			t.Fatal("expected session after overwrite")
		}
		if got.Token != "v2" || got.Username != "second" {
			t.Fatalf("got %+v, want the second record", got)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		if err := store.Save(Session{Token: "tok-del"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		if _, ok := store.Current(); ok {
			t.Fatal("expected absent session after Clear")
		}
	})

	t.Run("ClearIdempotent", func(t *testing.T) {
		if err := store.Clear(); err != nil {
			t.Fatalf("first Clear failed: %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("second Clear failed: %v", err)
		}
	})

	t.Run("EmptyTokenTreatedAsAbsent", func(t *testing.T) {
		if err := store.Save(Session{Token: "", Username: "ghost"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if _, ok := store.Current(); ok {
			t.Fatal("expected tokenless record to count as absent")
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	storeTests(t, NewMemoryStore())
}

func TestBoltStore(t *testing.T) {
	store, err := NewBoltStoreFromFile(filepath.Join(t.TempDir(), "session.db"), nil)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer store.Close()
	storeTests(t, store)
}
