// ABOUTME: In-memory session store with TTL cleanup and capacity limits.
// ABOUTME: Each session owns a private data subdirectory so generations never collide across sessions.
package session

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/grafo-labs/grafo/executor"
	"github.com/grafo-labs/grafo/model"
)

// Runners holds one executor per model variant.
type Runners struct {
	Graph   executor.Runner
	Digraph executor.Runner
	Network executor.Runner
}

// For returns the runner for a variant.
func (r Runners) For(kind model.Kind) executor.Runner {
	switch kind {
	case model.KindDigraph:
		return r.Digraph
	case model.KindNetwork:
		return r.Network
	default:
		return r.Graph
	}
}

// Store is a thread-safe registry of active sessions.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	dataDir     string
	runners     Runners
	maxSessions int
	ttl         time.Duration
}

// NewStore creates a session store rooted at dataDir.
func NewStore(dataDir string, runners Runners, maxSessions int, ttl time.Duration) *Store {
	return &Store{
		sessions:    make(map[string]*Session),
		dataDir:     dataDir,
		runners:     runners,
		maxSessions: maxSessions,
		ttl:         ttl,
	}
}

// Create registers a fresh empty session for the given variant. When the
// store is at capacity the least recently accessed session is evicted.
func (s *Store) Create(kind model.Kind) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.maxSessions {
		var oldestID string
		var oldestTime time.Time
		for id, sess := range s.sessions {
			if oldestTime.IsZero() || sess.LastAccess.Before(oldestTime) {
				oldestID = id
				oldestTime = sess.LastAccess
			}
		}
		delete(s.sessions, oldestID)
	}

	id := uuid.New().String()
	sess := New(id, kind, filepath.Join(s.dataDir, id), s.runners.For(kind))
	s.sessions[id] = sess
	return sess
}

// Get retrieves a session by ID and updates its LastAccess time.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.LastAccess = time.Now()
	return sess, true
}

// Remove drops a session from the store. Its data directory is left on disk.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Cleanup removes sessions idle longer than the TTL.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.LastAccess.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// StartCleanup starts a background cleanup goroutine and returns a stop function.
func (s *Store) StartCleanup(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				s.Cleanup()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}
