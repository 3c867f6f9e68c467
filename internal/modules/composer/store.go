package composer

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds live sessions in memory. Drafts never outlive the process;
// abandoning one or submitting successfully removes it, and the sweeper
// collects the ones nobody touched for the configured TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Open creates a session for the user and returns it.
func (st *Store) Open(userID, token string, draft PropertyDraft) *Session {
	sess := newSession(uuid.NewString(), userID, token, draft)

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	return sess
}

// Get returns the session if it exists and belongs to the user. Sessions of
// other users look exactly as absent ones to probes, but the caller gets a
// distinct error to map to 403.
func (st *Store) Get(id, userID string) (*Session, error) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.UserID != userID {
		return nil, ErrSessionForbidden
	}
	return sess, nil
}

// Authorize reports whether the user may attach to the session. Used by the
// event stream, which only needs a yes or no.
func (st *Store) Authorize(id, userID string) error {
	_, err := st.Get(id, userID)
	return err
}

// Delete removes the session. Missing ids are a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle longer than the TTL and returns how many went.
// A session mid-submission is never swept.
func (st *Store) Sweep() int {
	now := time.Now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, sess := range st.sessions {
		if sess.isSubmitting() {
			continue
		}
		if sess.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until the context ends.
func (st *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := st.Sweep(); n > 0 {
					log.Printf("composer: swept %d idle sessions", n)
				}
			}
		}
	}()
}
