package tavus

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujankatukam/job-nova/internal/config"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		TavusAPIKey:    "key",
		TavusAPIURL:    ts.URL,
		TavusReplicaID: "rep_1",
		TavusPersonaID: "per_1",
		TavusTimeout:   5 * time.Second,
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestStartGeneration(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/videos", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rep_1", body["replica_id"])
		assert.Equal(t, "hello", body["script"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"video_id": "vid_1",
			"status":   "queued",
		})
	}))

	job, err := client.StartGeneration(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "vid_1", job.Ref)
}

func TestStartGenerationMissingVideoID(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "queued"})
	}))

	_, err := client.StartGeneration(context.Background(), "hello")
	var perr *session.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "tavus", perr.Provider)
}

func TestStartGenerationServerError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))

	_, err := client.StartGeneration(context.Background(), "hello")
	var perr *session.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "start_generation", perr.Op)
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		download string
		hosted   string
		wantDone bool
		wantURL  string
	}{
		{"still generating", "generating", "", "", false, ""},
		{"ready with download url", "ready", "https://dl/v.mp4", "https://hosted/v", true, "https://dl/v.mp4"},
		{"completed falls back to hosted url", "completed", "", "https://hosted/v", true, "https://hosted/v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/videos/vid_1", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]string{
					"video_id":     "vid_1",
					"status":       tt.status,
					"download_url": tt.download,
					"hosted_url":   tt.hosted,
				})
			}))

			st, err := client.CheckStatus(context.Background(), "vid_1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantDone, st.Done)
			assert.Equal(t, tt.wantURL, st.ArtifactURL)
		})
	}
}

func TestConversationLifecycle(t *testing.T) {
	var deleted bool
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/conversations":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "per_1", body["persona_id"])
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{
				"conversation_id":  "conv_1",
				"conversation_url": "https://tavus.daily.co/conv_1",
				"status":           "active",
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/v2/conversations/conv_1":
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))

	conv, err := client.CreateConversation(context.Background(), "test", "hi there")
	require.NoError(t, err)
	assert.Equal(t, "conv_1", conv.ID)
	assert.Equal(t, "https://tavus.daily.co/conv_1", conv.URL)

	require.NoError(t, client.SendMessage(context.Background(), "conv_1", "hello"))

	assert.True(t, client.EndConversation(context.Background(), "conv_1"))
	assert.True(t, deleted)
}

func TestGetConversationFallsBackToJournal(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{
				"conversation_id":  "conv_1",
				"conversation_url": "https://tavus.daily.co/conv_1",
			})
			return
		}
		// The provider forgets conversations once they end.
		http.NotFound(w, r)
	}))

	_, err := client.CreateConversation(context.Background(), "", "")
	require.NoError(t, err)
	client.EndConversation(context.Background(), "conv_1")

	conv, err := client.GetConversation(context.Background(), "conv_1")
	require.NoError(t, err)
	assert.Equal(t, "ended", conv.Status)
}

func TestDisabledAdapterFailsFast(t *testing.T) {
	d := NewDisabled()

	_, err := d.StartGeneration(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = d.CheckStatus(context.Background(), "vid_1")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = d.CreateConversation(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.False(t, d.EndConversation(context.Background(), "conv_1"))
}
