package livekit

import (
	"time"

	"github.com/livekit/protocol/auth"

	"github.com/Srujankatukam/job-nova/internal/config"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
)

// TokenGenerator mints LiveKit access tokens.
type TokenGenerator struct {
	apiKey    string
	apiSecret string
}

// NewTokenGenerator creates a token generator from config.
func NewTokenGenerator(cfg *config.Config) *TokenGenerator {
	return &TokenGenerator{
		apiKey:    cfg.LiveKitAPIKey,
		apiSecret: cfg.LiveKitAPISecret,
	}
}

// Generate creates an access token granting join, publish, subscribe and
// data capabilities for the given room and identity.
func (g *TokenGenerator) Generate(room, identity string, ttl time.Duration) (string, error) {
	at := auth.NewAccessToken(g.apiKey, g.apiSecret)

	canPublish := true
	canSubscribe := true
	canPublishData := true

	grant := &auth.VideoGrant{
		RoomJoin:       true,
		Room:           room,
		CanPublish:     &canPublish,
		CanSubscribe:   &canSubscribe,
		CanPublishData: &canPublishData,
	}

	at.AddGrant(grant).
		SetIdentity(identity).
		SetValidFor(ttl)

	token, err := at.ToJWT()
	if err != nil {
		return "", session.NewProviderError(providerName, "issue_token", err)
	}
	return token, nil
}
