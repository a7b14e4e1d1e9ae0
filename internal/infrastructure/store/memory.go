package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Srujankatukam/job-nova/internal/domain/session"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/metrics"
)

var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExists is returned when creating a session whose id is taken.
	// Defensive: generated ids should never collide.
	ErrSessionExists = errors.New("session already exists")
	// ErrSessionTerminal is returned when updating a session that already
	// reached ready or error.
	ErrSessionTerminal = errors.New("session is in a terminal state")
)

// MemoryStore is a mutex-based in-memory session store. All returned
// sessions are defensive copies, so a snapshot handed to an observer can
// never change under its feet.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	log      zerolog.Logger
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore(log zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*session.Session),
		log:      log.With().Str("component", "session-store").Logger(),
	}
}

var _ session.Store = (*MemoryStore)(nil)

// Create inserts a new pending session.
func (s *MemoryStore) Create(ctx context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[id]; exists {
		return nil, ErrSessionExists
	}

	now := time.Now()
	sess := &session.Session{
		ID:        id,
		Status:    session.StatusPending,
		Payload:   make(map[string]any),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[id] = sess
	metrics.RecordSessionCreated()
	return sess.Clone(), nil
}

// Get retrieves a snapshot of a session by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Update applies one atomic transition: merges the payload, replaces the
// status and returns the committed snapshot. A missing id is an error and
// never creates a phantom entry.
func (s *MemoryStore) Update(ctx context.Context, id string, upd session.StatusUpdate) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.Status.Terminal() {
		return nil, ErrSessionTerminal
	}

	if upd.Progress != nil {
		if sess.Progress != nil && *upd.Progress < *sess.Progress {
			// Progress must be monotonically non-decreasing; a regression
			// means an orchestrator bug.
			s.log.Warn().
				Str("session_id", id).
				Float64("from", *sess.Progress).
				Float64("to", *upd.Progress).
				Msg("progress regression")
		}
		sess.Progress = upd.Progress
	}

	for k, v := range upd.Payload {
		sess.Payload[k] = v
	}

	metrics.RecordStateTransition(string(sess.Status), string(upd.Status))
	sess.Status = upd.Status
	sess.UpdatedAt = time.Now()

	return sess.Clone(), nil
}

// List returns snapshots of all sessions.
func (s *MemoryStore) List(ctx context.Context) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*session.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		result = append(result, sess.Clone())
	}
	return result, nil
}

// Delete removes a session by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	metrics.RecordSessionDeleted()
	return nil
}
