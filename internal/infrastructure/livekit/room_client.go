// Package livekit wraps the LiveKit server APIs behind the domain room
// provider contract.
package livekit

import (
	"context"
	"time"

	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/rs/zerolog"

	"github.com/Srujankatukam/job-nova/internal/config"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/metrics"
)

const providerName = "livekit"

// RoomClient provisions rooms and mints access tokens.
type RoomClient struct {
	client          *lksdk.RoomServiceClient
	tokens          *TokenGenerator
	url             string
	emptyTimeout    time.Duration
	maxParticipants int
	log             zerolog.Logger
}

// NewRoomClient creates a LiveKit room client from config.
func NewRoomClient(cfg *config.Config, log zerolog.Logger) *RoomClient {
	return &RoomClient{
		client:          lksdk.NewRoomServiceClient(cfg.LiveKitURL, cfg.LiveKitAPIKey, cfg.LiveKitAPISecret),
		tokens:          NewTokenGenerator(cfg),
		url:             cfg.LiveKitURL,
		emptyTimeout:    cfg.RoomEmptyTimeout,
		maxParticipants: cfg.RoomMaxParticipants,
		log:             log.With().Str("component", "livekit-client").Logger(),
	}
}

var _ session.RoomProvider = (*RoomClient)(nil)

// CreateRoom provisions a room tuned for avatar streaming.
func (c *RoomClient) CreateRoom(ctx context.Context, name string) (*session.Room, error) {
	const op = "create_room"
	start := time.Now()

	room, err := c.client.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:            name,
		EmptyTimeout:    uint32(c.emptyTimeout.Seconds()),
		MaxParticipants: uint32(c.maxParticipants),
	})
	metrics.ProviderCallDuration.WithLabelValues(providerName, op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallErrors.WithLabelValues(providerName, op).Inc()
		return nil, session.NewProviderError(providerName, op, err)
	}

	c.log.Info().Str("room", room.Name).Str("sid", room.Sid).Msg("room created")
	return &session.Room{Name: room.Name, URL: c.url}, nil
}

// DeleteRoom removes a room. Best-effort: a failure is logged and reported
// as false, never escalated.
func (c *RoomClient) DeleteRoom(ctx context.Context, name string) bool {
	const op = "delete_room"
	start := time.Now()

	_, err := c.client.DeleteRoom(ctx, &livekit.DeleteRoomRequest{Room: name})
	metrics.ProviderCallDuration.WithLabelValues(providerName, op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallErrors.WithLabelValues(providerName, op).Inc()
		c.log.Warn().Err(err).Str("room", name).Msg("could not delete room")
		return false
	}

	c.log.Info().Str("room", name).Msg("room deleted")
	return true
}

// IssueAccessToken mints a join token for a participant.
func (c *RoomClient) IssueAccessToken(room, identity string, ttl time.Duration) (string, error) {
	return c.tokens.Generate(room, identity, ttl)
}
