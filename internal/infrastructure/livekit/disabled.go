package livekit

import (
	"context"
	"errors"
	"time"

	"github.com/Srujankatukam/job-nova/internal/domain/session"
)

// ErrNotConfigured is returned by the disabled adapter variant.
var ErrNotConfigured = errors.New("livekit credentials are not configured")

// Disabled is the adapter variant wired when LiveKit credentials are
// absent. It satisfies the same contract and fails every call.
type Disabled struct{}

// NewDisabled creates the disabled adapter variant.
func NewDisabled() *Disabled {
	return &Disabled{}
}

var _ session.RoomProvider = (*Disabled)(nil)

// CreateRoom always fails with ErrNotConfigured.
func (Disabled) CreateRoom(ctx context.Context, name string) (*session.Room, error) {
	return nil, session.NewProviderError(providerName, "create_room", ErrNotConfigured)
}

// DeleteRoom always reports failure.
func (Disabled) DeleteRoom(ctx context.Context, name string) bool {
	return false
}

// IssueAccessToken always fails with ErrNotConfigured.
func (Disabled) IssueAccessToken(room, identity string, ttl time.Duration) (string, error) {
	return "", session.NewProviderError(providerName, "issue_token", ErrNotConfigured)
}
