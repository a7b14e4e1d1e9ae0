package handlers

import (
	"context"
	"time"

	"github.com/Srujankatukam/job-nova/internal/config"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/tavus"
	"github.com/Srujankatukam/job-nova/internal/utils/idgen"
)

// ConversationService is the persona conversation API exposed by the
// Tavus adapter.
type ConversationService interface {
	CreateConversation(ctx context.Context, name, greeting string) (*tavus.Conversation, error)
	GetConversation(ctx context.Context, id string) (*tavus.Conversation, error)
	EndConversation(ctx context.Context, id string) bool
	SendMessage(ctx context.Context, id, text string) error
}

// AvatarHandler handles avatar session and conversation requests.
type AvatarHandler struct {
	service       session.Service
	conversations ConversationService
	rooms         session.RoomProvider
	livekitURL    string
	tokenTTL      time.Duration
}

// NewAvatarHandler creates a new avatar handler.
func NewAvatarHandler(
	service session.Service,
	conversations ConversationService,
	rooms session.RoomProvider,
	cfg *config.Config,
) *AvatarHandler {
	return &AvatarHandler{
		service:       service,
		conversations: conversations,
		rooms:         rooms,
		livekitURL:    cfg.LiveKitURL,
		tokenTTL:      cfg.LiveKitTokenTTL,
	}
}

// StartGeneration creates a new avatar session and kicks off the workflow.
func (h *AvatarHandler) StartGeneration(ctx context.Context, text string) (*session.Session, error) {
	return h.service.StartGeneration(ctx, text)
}

// GetSession retrieves the last committed snapshot for a session.
func (h *AvatarHandler) GetSession(ctx context.Context, id string) (*session.Session, error) {
	return h.service.GetSession(ctx, id)
}

// IssueToken mints a LiveKit access token. A missing identity gets a
// generated one.
func (h *AvatarHandler) IssueToken(room, participant string) (token, url, identity string, err error) {
	identity = participant
	if identity == "" {
		identity, err = idgen.NewID("user", 12)
		if err != nil {
			return "", "", "", err
		}
	}
	token, err = h.rooms.IssueAccessToken(room, identity, h.tokenTTL)
	if err != nil {
		return "", "", "", err
	}
	return token, h.livekitURL, identity, nil
}

// StartConversation creates a Tavus persona conversation.
func (h *AvatarHandler) StartConversation(ctx context.Context, name, greeting string) (*tavus.Conversation, error) {
	return h.conversations.CreateConversation(ctx, name, greeting)
}

// SendMessage forwards a text message to an active conversation.
func (h *AvatarHandler) SendMessage(ctx context.Context, id, text string) error {
	return h.conversations.SendMessage(ctx, id, text)
}

// ConversationStatus reports the current state of a conversation.
func (h *AvatarHandler) ConversationStatus(ctx context.Context, id string) (*tavus.Conversation, error) {
	return h.conversations.GetConversation(ctx, id)
}

// EndConversation ends a conversation and tears down its room. Both steps
// are best-effort.
func (h *AvatarHandler) EndConversation(ctx context.Context, id string) bool {
	ok := h.conversations.EndConversation(ctx, id)
	h.rooms.DeleteRoom(ctx, "tavus_"+id)
	return ok
}
