// Package tavus wraps the Tavus HTTP API behind the domain provider
// contracts. Two call shapes are supported: the videos API used by the
// generation workflow and the conversations API used by the persona
// endpoints.
package tavus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/Srujankatukam/job-nova/internal/config"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/metrics"
)

const providerName = "tavus"

// Client talks to the Tavus API.
type Client struct {
	http      *resty.Client
	replicaID string
	personaID string
	log       zerolog.Logger

	mu      sync.Mutex
	journal map[string]*conversationRecord
}

type conversationRecord struct {
	Status   string
	EndedAt  time.Time
	Messages []journalMessage
}

type journalMessage struct {
	Text string
	At   time.Time
}

// NewClient creates a Tavus client from config.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	http := resty.New().
		SetBaseURL(cfg.TavusAPIURL).
		SetHeader("x-api-key", cfg.TavusAPIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.TavusTimeout)

	return &Client{
		http:      http,
		replicaID: cfg.TavusReplicaID,
		personaID: cfg.TavusPersonaID,
		log:       log.With().Str("component", "tavus-client").Logger(),
		journal:   make(map[string]*conversationRecord),
	}
}

var _ session.AvatarProvider = (*Client)(nil)

type videoRequest struct {
	ReplicaID string `json:"replica_id"`
	Script    string `json:"script"`
}

type videoResponse struct {
	VideoID     string `json:"video_id"`
	Status      string `json:"status"`
	HostedURL   string `json:"hosted_url"`
	DownloadURL string `json:"download_url"`
}

// StartGeneration submits text for avatar video generation and returns the
// provider's opaque job reference.
func (c *Client) StartGeneration(ctx context.Context, text string) (*session.GenerationJob, error) {
	const op = "start_generation"
	start := time.Now()

	var out videoResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(videoRequest{ReplicaID: c.replicaID, Script: text}).
		SetResult(&out).
		Post("/v2/videos")
	if err := c.check(op, resp, err, start); err != nil {
		return nil, err
	}
	if out.VideoID == "" {
		metrics.ProviderCallErrors.WithLabelValues(providerName, op).Inc()
		return nil, session.NewProviderError(providerName, op,
			fmt.Errorf("malformed response: missing video_id"))
	}

	c.log.Info().Str("video_id", out.VideoID).Msg("generation started")
	return &session.GenerationJob{
		Ref: out.VideoID,
		Metadata: map[string]any{
			"status":    out.Status,
			"hostedUrl": out.HostedURL,
		},
	}, nil
}

// CheckStatus fetches the current state of a generation job.
func (c *Client) CheckStatus(ctx context.Context, jobRef string) (*session.GenerationStatus, error) {
	const op = "check_status"
	start := time.Now()

	var out videoResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/v2/videos/" + jobRef)
	if err := c.check(op, resp, err, start); err != nil {
		return nil, err
	}

	done := out.Status == "ready" || out.Status == "completed"
	artifact := out.DownloadURL
	if artifact == "" {
		artifact = out.HostedURL
	}
	return &session.GenerationStatus{Done: done, ArtifactURL: artifact}, nil
}

// check converts transport errors and non-2xx responses into ProviderErrors
// and records call metrics.
func (c *Client) check(op string, resp *resty.Response, err error, start time.Time) error {
	metrics.ProviderCallDuration.WithLabelValues(providerName, op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallErrors.WithLabelValues(providerName, op).Inc()
		return session.NewProviderError(providerName, op, err)
	}
	if resp.IsError() {
		metrics.ProviderCallErrors.WithLabelValues(providerName, op).Inc()
		return session.NewProviderError(providerName, op,
			fmt.Errorf("status %d: %s", resp.StatusCode(), resp.String()))
	}
	return nil
}
