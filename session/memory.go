package session

import "sync"

// MemoryStore implements Store entirely in memory. Used by tests and by
// callers that do not want the session to survive the process.
type MemoryStore struct {
	mu   sync.RWMutex
	sess Session
	set  bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	s.set = true
	return nil
}

func (s *MemoryStore) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set || !s.sess.Valid() {
		return Session{}, false
	}
	return s.sess, true
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{}
	s.set = false
	return nil
}
