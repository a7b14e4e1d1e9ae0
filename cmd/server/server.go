// @title           Job Nova API
// @version         1.0
// @description     Backend gateway for the job board and AI avatar features.
// @description     Orchestrates avatar generation sessions over Tavus and LiveKit.

// @contact.name   Job Nova Team

// @host      localhost:8000
// @BasePath  /api

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Srujankatukam/job-nova/internal/config"
	"github.com/Srujankatukam/job-nova/internal/domain/job"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/livekit"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/logger"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/observability"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/store"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/tavus"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/handlers"
)

// Application holds the main application components.
type Application struct {
	httpServer   *httpserver.HTTPServer
	orchestrator *session.Orchestrator
	reaper       *store.Reaper
	cfg          *config.Config
	log          zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(
	httpServer *httpserver.HTTPServer,
	orchestrator *session.Orchestrator,
	reaper *store.Reaper,
	cfg *config.Config,
	log zerolog.Logger,
) *Application {
	return &Application{
		httpServer:   httpServer,
		orchestrator: orchestrator,
		reaper:       reaper,
		cfg:          cfg,
		log:          log,
	}
}

// Start runs the application. On shutdown, in-flight workflows are drained
// before returning so no session is abandoned mid-transition.
func (a *Application) Start(ctx context.Context) error {
	a.reaper.Start(ctx)

	err := a.httpServer.Run(ctx)

	a.reaper.Stop()

	drainCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if drainErr := a.orchestrator.Drain(drainCtx); drainErr != nil {
		a.log.Warn().Err(drainErr).Msg("workflows still in flight at shutdown")
	}

	return err
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	// Providers are selected by available credentials. Without them the
	// disabled variants serve the same contract and fail fast.
	var (
		avatarProvider session.AvatarProvider
		conversations  handlers.ConversationService
	)
	if cfg.TavusEnabled() {
		tavusClient := tavus.NewClient(cfg, log)
		avatarProvider = tavusClient
		conversations = tavusClient
	} else {
		log.Warn().Msg("TAVUS_API_KEY not set, avatar provider disabled")
		disabled := tavus.NewDisabled()
		avatarProvider = disabled
		conversations = disabled
	}

	var roomProvider session.RoomProvider
	if cfg.LiveKitEnabled() {
		roomProvider = livekit.NewRoomClient(cfg, log)
	} else {
		log.Warn().Msg("LiveKit credentials not set, room provider disabled")
		roomProvider = livekit.NewDisabled()
	}

	sessionStore := store.NewMemoryStore(log)
	reaper := store.NewReaper(sessionStore, cfg.SessionRetentionTTL, cfg.SessionSweepInterval, log)
	hub := session.NewHub(log)

	orchestrator := session.NewOrchestrator(
		sessionStore,
		hub,
		avatarProvider,
		roomProvider,
		session.Options{
			PollInterval:  cfg.GenerationPollInterval,
			PollAttempts:  cfg.GenerationPollAttempts,
			MaxConcurrent: cfg.WorkflowMaxConcurrent,
		},
		log,
	)

	jobService := job.NewService(log)

	handlerProvider := handlers.NewProvider(orchestrator, conversations, roomProvider, jobService, hub, cfg, log)
	httpServer := httpserver.New(cfg, log, handlerProvider)

	app := NewApplication(httpServer, orchestrator, reaper, cfg, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Bool("tavus_enabled", cfg.TavusEnabled()).
		Bool("livekit_enabled", cfg.LiveKitEnabled()).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
