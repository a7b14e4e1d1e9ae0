package session

import "context"

// Store defines the interface for session storage. The orchestrator is the
// only writer; List and Delete exist for the retention reaper.
type Store interface {
	// Create inserts a new pending session with an empty payload and
	// returns its snapshot. Fails if the id already exists.
	Create(ctx context.Context, id string) (*Session, error)

	// Get retrieves a snapshot of a session by ID.
	Get(ctx context.Context, id string) (*Session, error)

	// Update applies one atomic transition and returns the committed
	// snapshot. It must never create a missing session.
	Update(ctx context.Context, id string, upd StatusUpdate) (*Session, error)

	// List returns snapshots of all sessions.
	List(ctx context.Context) ([]*Session, error)

	// Delete removes a session by ID.
	Delete(ctx context.Context, id string) error
}
