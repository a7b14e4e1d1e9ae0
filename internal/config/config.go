package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the job-nova API service.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"jobnova-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"JOBNOVA_API_PORT" envDefault:"8000"`
	APIPrefix       string        `env:"API_V1_PREFIX" envDefault:"/api"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// Tavus avatar provider
	TavusAPIKey    string        `env:"TAVUS_API_KEY"`
	TavusAPIURL    string        `env:"TAVUS_API_URL" envDefault:"https://api.tavus.io"`
	TavusReplicaID string        `env:"TAVUS_REPLICA_ID"`
	TavusPersonaID string        `env:"TAVUS_PERSONA_ID"`
	TavusTimeout   time.Duration `env:"TAVUS_TIMEOUT" envDefault:"30s"`

	// Generation polling
	GenerationPollInterval time.Duration `env:"GENERATION_POLL_INTERVAL" envDefault:"2s"`
	GenerationPollAttempts int           `env:"GENERATION_POLL_ATTEMPTS" envDefault:"30"`

	// LiveKit
	LiveKitURL          string        `env:"LIVEKIT_URL" envDefault:"ws://localhost:7880"`
	LiveKitAPIKey       string        `env:"LIVEKIT_API_KEY"`
	LiveKitAPISecret    string        `env:"LIVEKIT_API_SECRET"`
	LiveKitTokenTTL     time.Duration `env:"LIVEKIT_TOKEN_TTL" envDefault:"1h"`
	RoomEmptyTimeout    time.Duration `env:"ROOM_EMPTY_TIMEOUT" envDefault:"5m"`
	RoomMaxParticipants int           `env:"ROOM_MAX_PARTICIPANTS" envDefault:"10"`

	// Session management
	WorkflowMaxConcurrent int           `env:"WORKFLOW_MAX_CONCURRENT" envDefault:"64"`
	SessionRetentionTTL   time.Duration `env:"SESSION_RETENTION_TTL" envDefault:"1h"`
	SessionSweepInterval  time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if cfg.WorkflowMaxConcurrent < 1 {
		return nil, fmt.Errorf("WORKFLOW_MAX_CONCURRENT must be at least 1")
	}
	if cfg.GenerationPollAttempts < 1 {
		return nil, fmt.Errorf("GENERATION_POLL_ATTEMPTS must be at least 1")
	}
	if !strings.HasPrefix(cfg.APIPrefix, "/") {
		return nil, fmt.Errorf("API_V1_PREFIX must start with /")
	}

	return cfg, nil
}

// TavusEnabled reports whether the Tavus adapter has credentials.
// Without them the disabled adapter variant is wired instead.
func (c *Config) TavusEnabled() bool {
	return strings.TrimSpace(c.TavusAPIKey) != ""
}

// LiveKitEnabled reports whether the LiveKit adapters have credentials.
func (c *Config) LiveKitEnabled() bool {
	return strings.TrimSpace(c.LiveKitAPIKey) != "" && strings.TrimSpace(c.LiveKitAPISecret) != ""
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
