package session

import (
	"context"
	"fmt"
	"time"
)

// GenerationJob identifies an avatar generation accepted by the provider.
type GenerationJob struct {
	Ref      string
	Metadata map[string]any
}

// GenerationStatus is the provider's view of an in-flight generation.
type GenerationStatus struct {
	Done        bool
	ArtifactURL string
}

// AvatarProvider is the boundary contract for the avatar generation service.
type AvatarProvider interface {
	StartGeneration(ctx context.Context, text string) (*GenerationJob, error)
	CheckStatus(ctx context.Context, jobRef string) (*GenerationStatus, error)
}

// Room describes a provisioned real-time room.
type Room struct {
	Name string
	URL  string
}

// RoomProvider is the boundary contract for the real-time room service.
type RoomProvider interface {
	CreateRoom(ctx context.Context, name string) (*Room, error)
	// DeleteRoom is best-effort; failures are logged by the adapter, never
	// escalated.
	DeleteRoom(ctx context.Context, name string) bool
	IssueAccessToken(room, identity string, ttl time.Duration) (string, error)
}

// ProviderError wraps any failure talking to an external avatar or room
// service: network errors, timeouts, non-success statuses, malformed
// payloads.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err with the provider and operation that failed.
func NewProviderError(provider, op string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Op: op, Err: err}
}
