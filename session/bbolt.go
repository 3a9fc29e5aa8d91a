package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var (
	authBucket = []byte("auth")
	sessionKey = []byte("session")
)

// BoltStore implements Store backed by a BBolt database. The session
// lives as one JSON record under a fixed bucket and key.
type BoltStore struct {
	db *bbolt.DB
}

var _ Store = (*BoltStore)(nil)

// NewBoltStore returns a Store backed by the given BBolt database.
func NewBoltStore(db *bbolt.DB) *BoltStore {
	return &BoltStore{db: db}
}

// NewBoltStoreFromFile opens a BBolt database at the given path, creating
// parent directories as needed, and returns a new BoltStore.
func NewBoltStoreFromFile(path string, options *bbolt.Options) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating session directory: %w", err)
		}
	}
	db, err := bbolt.Open(path, 0600, options)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	return NewBoltStore(db), nil
}

// Close closes the underlying BBolt database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Save(sess Session) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(authBucket)
		if err != nil {
			return err
		}
		data, err := json.Marshal(sess)
		if err != nil {
			return err
		}
		return b.Put(sessionKey, data)
	})
}

func (s *BoltStore) Current() (Session, bool) {
	var sess Session
	var malformed bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(authBucket)
		if b == nil {
			return errAbsent
		}
		data := b.Get(sessionKey)
		if data == nil {
			return errAbsent
		}
		if err := json.Unmarshal(data, &sess); err != nil {
			malformed = true
			return errAbsent
		}
		return nil
	})
	if malformed {
		// Self-heal: a record we cannot parse is as good as no record.
		_ = s.Clear()
		return Session{}, false
	}
	if err != nil || !sess.Valid() {
		return Session{}, false
	}
	return sess, true
}

func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(authBucket)
		if b == nil {
			return nil
		}
		return b.Delete(sessionKey)
	})
}

// putRaw writes raw bytes under the session key, bypassing JSON
// marshalling. Used by tests to simulate corrupted records.
func (s *BoltStore) putRaw(data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(authBucket)
		if err != nil {
			return err
		}
		return b.Put(sessionKey, data)
	})
}

// hasRecord reports whether any bytes exist under the session key.
func (s *BoltStore) hasRecord() bool {
	var found bool
	_ = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(authBucket)
		if b != nil && b.Get(sessionKey) != nil {
			found = true
		}
		return nil
	})
	return found
}
