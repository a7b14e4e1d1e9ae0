package tavus

import (
	"context"
	"errors"

	"github.com/Srujankatukam/job-nova/internal/domain/session"
)

// ErrNotConfigured is returned by the disabled adapter variant.
var ErrNotConfigured = errors.New("tavus credentials are not configured")

// Disabled is the adapter variant wired when Tavus credentials are absent.
// It satisfies the same contract and fails every call, so the decision is
// made once at construction instead of inside each method.
type Disabled struct{}

// NewDisabled creates the disabled adapter variant.
func NewDisabled() *Disabled {
	return &Disabled{}
}

var _ session.AvatarProvider = (*Disabled)(nil)

// StartGeneration always fails with ErrNotConfigured.
func (Disabled) StartGeneration(ctx context.Context, text string) (*session.GenerationJob, error) {
	return nil, session.NewProviderError(providerName, "start_generation", ErrNotConfigured)
}

// CheckStatus always fails with ErrNotConfigured.
func (Disabled) CheckStatus(ctx context.Context, jobRef string) (*session.GenerationStatus, error) {
	return nil, session.NewProviderError(providerName, "check_status", ErrNotConfigured)
}

// CreateConversation always fails with ErrNotConfigured.
func (Disabled) CreateConversation(ctx context.Context, name, greeting string) (*Conversation, error) {
	return nil, session.NewProviderError(providerName, "create_conversation", ErrNotConfigured)
}

// GetConversation always fails with ErrNotConfigured.
func (Disabled) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	return nil, session.NewProviderError(providerName, "get_conversation", ErrNotConfigured)
}

// EndConversation always reports failure.
func (Disabled) EndConversation(ctx context.Context, id string) bool {
	return false
}

// SendMessage always fails with ErrNotConfigured.
func (Disabled) SendMessage(ctx context.Context, id, text string) error {
	return session.NewProviderError(providerName, "send_message", ErrNotConfigured)
}
