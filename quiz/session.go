package quiz

import "sync"

// Session is a user's sequential-practice state: the chosen difficulty and
// a 0-based cursor into the difficulty-filtered question list.
type Session struct {
	Difficulty string
	Index      int
}

// sessionStore keeps per-user sessions for the process lifetime. Entries are
// created on level selection and overwritten wholesale on re-selection;
// nothing is evicted.
type sessionStore struct {
	mu sync.RWMutex
	m  map[int64]Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[int64]Session)}
}

func (s *sessionStore) get(userID int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.m[userID]
	return sess, ok
}

// reset starts a fresh session at cursor 0 for the given difficulty.
func (s *sessionStore) reset(userID int64, difficulty string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = Session{Difficulty: difficulty}
}

// advance moves the cursor forward by one and returns the updated session.
// No-op when the user has no session.
func (s *sessionStore) advance(userID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[userID]
	if !ok {
		return Session{}, false
	}
	sess.Index++
	s.m[userID] = sess
	return sess, true
}
