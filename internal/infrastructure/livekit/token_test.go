package livekit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujankatukam/job-nova/internal/config"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
)

func TestTokenGeneratorMintsJWT(t *testing.T) {
	cfg := &config.Config{
		LiveKitAPIKey:    "APIkey",
		LiveKitAPISecret: "secret-at-least-32-characters-long",
	}
	gen := NewTokenGenerator(cfg)

	token, err := gen.Generate("avatar_sess_1", "user_1", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	// Compact JWT: header, claims, signature.
	assert.Len(t, strings.Split(token, "."), 3)
}

func TestDisabledRoomProvider(t *testing.T) {
	d := NewDisabled()

	_, err := d.CreateRoom(context.Background(), "avatar_sess_1")
	var perr *session.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, "livekit", perr.Provider)

	assert.False(t, d.DeleteRoom(context.Background(), "avatar_sess_1"))

	_, err = d.IssueAccessToken("avatar_sess_1", "user_1", time.Hour)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
