//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/Srujankatukam/job-nova/internal/config"
	"github.com/Srujankatukam/job-nova/internal/domain/job"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/livekit"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/store"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/tavus"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/handlers"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	ProvideAvatarProvider,
	ProvideConversationService,
	ProvideRoomProvider,
	ProvideSessionStore,
	ProvideReaper,

	// Domain providers
	ProvideHub,
	ProvideOrchestrator,
	ProvideSessionService,
	job.NewService,

	// Interface providers
	handlers.NewProvider,
	httpserver.New,

	// Application
	NewApplication,
)

// ProvideAvatarProvider selects the Tavus adapter variant by credentials.
func ProvideAvatarProvider(cfg *config.Config, log zerolog.Logger) session.AvatarProvider {
	if cfg.TavusEnabled() {
		return tavus.NewClient(cfg, log)
	}
	return tavus.NewDisabled()
}

// ProvideConversationService selects the conversation API variant.
func ProvideConversationService(cfg *config.Config, log zerolog.Logger) handlers.ConversationService {
	if cfg.TavusEnabled() {
		return tavus.NewClient(cfg, log)
	}
	return tavus.NewDisabled()
}

// ProvideRoomProvider selects the LiveKit adapter variant by credentials.
func ProvideRoomProvider(cfg *config.Config, log zerolog.Logger) session.RoomProvider {
	if cfg.LiveKitEnabled() {
		return livekit.NewRoomClient(cfg, log)
	}
	return livekit.NewDisabled()
}

// ProvideSessionStore provides a session store.
func ProvideSessionStore(log zerolog.Logger) session.Store {
	return store.NewMemoryStore(log)
}

// ProvideReaper provides the terminal session reaper.
func ProvideReaper(sessionStore session.Store, cfg *config.Config, log zerolog.Logger) *store.Reaper {
	return store.NewReaper(sessionStore, cfg.SessionRetentionTTL, cfg.SessionSweepInterval, log)
}

// ProvideHub provides the observer hub.
func ProvideHub(log zerolog.Logger) *session.Hub {
	return session.NewHub(log)
}

// ProvideOrchestrator provides the workflow orchestrator.
func ProvideOrchestrator(
	sessionStore session.Store,
	hub *session.Hub,
	avatar session.AvatarProvider,
	rooms session.RoomProvider,
	cfg *config.Config,
	log zerolog.Logger,
) *session.Orchestrator {
	return session.NewOrchestrator(
		sessionStore,
		hub,
		avatar,
		rooms,
		session.Options{
			PollInterval:  cfg.GenerationPollInterval,
			PollAttempts:  cfg.GenerationPollAttempts,
			MaxConcurrent: cfg.WorkflowMaxConcurrent,
		},
		log,
	)
}

// ProvideSessionService exposes the orchestrator through the service contract.
func ProvideSessionService(orchestrator *session.Orchestrator) session.Service {
	return orchestrator
}

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(
	cfg *config.Config,
	log zerolog.Logger,
) (*Application, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
