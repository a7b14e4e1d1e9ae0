package handlers

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/Srujankatukam/job-nova/internal/config"
	"github.com/Srujankatukam/job-nova/internal/domain/job"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Avatar *AvatarHandler
	Job    *JobHandler
	WS     *WSHandler
}

// NewProvider creates a new handler provider.
func NewProvider(
	sessionService session.Service,
	conversations ConversationService,
	rooms session.RoomProvider,
	jobService *job.Service,
	hub *session.Hub,
	cfg *config.Config,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Avatar: NewAvatarHandler(sessionService, conversations, rooms, cfg),
		Job:    NewJobHandler(jobService),
		WS:     NewWSHandler(hub, sessionService, log),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewProvider,
)
