package session

import (
	"errors"
	"os"
	"path/filepath"
)

// errAbsent is internal shorthand for "no well-formed record"; it never
// escapes the package, absence is reported through the bool return.
var errAbsent = errors.New("session: no record")

// Store abstracts session persistence so the record can live on disk
// (default) or in memory (tests, ephemeral runs).
//
// The session record is owned exclusively by the store: login and logout
// flows are the only writers, everything else reads through Current.
type Store interface {
	// Save persists the session as a single record, overwriting any
	// prior record.
	Save(s Session) error
	// Current returns the stored session. The second return value is
	// false when no well-formed record exists. A malformed record is
	// treated as absent and removed; it is never surfaced as an error.
	Current() (Session, bool)
	// Clear removes the record. Clearing an absent record is not an
	// error; Clear is idempotent.
	Clear() error
}

// DefaultPath returns the default location of the on-disk session store,
// ~/.moodctl/session.db. It falls back to a relative path when the home
// directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.db"
	}
	return filepath.Join(home, ".moodctl", "session.db")
}
