package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Srujankatukam/job-nova/internal/utils/idgen"
)

// Service defines the operations exposed to the HTTP and WebSocket layers.
type Service interface {
	// StartGeneration creates a pending session, kicks off the background
	// workflow and returns the new session immediately.
	StartGeneration(ctx context.Context, text string) (*Session, error)
	// GetSession returns the last committed snapshot for id.
	GetSession(ctx context.Context, id string) (*Session, error)
}

// Options tunes the orchestrator workflow.
type Options struct {
	// PollInterval is the delay between CheckStatus calls while waiting for
	// the generated artifact.
	PollInterval time.Duration
	// PollAttempts bounds the CheckStatus loop; exhaustion fails the session.
	PollAttempts int
	// MaxConcurrent bounds the number of workflows running provider calls
	// at the same time.
	MaxConcurrent int
}

// Orchestrator drives the avatar generation workflow. Each session has
// exactly one driving worker, so updates and broadcasts for a session are
// issued in program order; observers see a totally ordered sequence of
// snapshots. Workers are tracked and drained on shutdown instead of being
// fired and forgotten.
type Orchestrator struct {
	store  Store
	hub    *Hub
	avatar AvatarProvider
	rooms  RoomProvider
	opts   Options
	log    zerolog.Logger

	slots chan struct{}
	wg    sync.WaitGroup
}

// NewOrchestrator creates the workflow driver.
func NewOrchestrator(
	store Store,
	hub *Hub,
	avatar AvatarProvider,
	rooms RoomProvider,
	opts Options,
	log zerolog.Logger,
) *Orchestrator {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.PollAttempts <= 0 {
		opts.PollAttempts = 30
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 64
	}
	o := &Orchestrator{
		store:  store,
		hub:    hub,
		avatar: avatar,
		rooms:  rooms,
		opts:   opts,
		log:    log.With().Str("component", "session-orchestrator").Logger(),
		slots:  make(chan struct{}, opts.MaxConcurrent),
	}
	return o
}

var _ Service = (*Orchestrator)(nil)

// StartGeneration creates the session record, broadcasts the pending
// snapshot and launches the workflow worker. The caller is never blocked on
// provider calls.
func (o *Orchestrator) StartGeneration(ctx context.Context, text string) (*Session, error) {
	id, err := idgen.NewID("sess", 24)
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	snap, err := o.store.Create(ctx, id)
	if err != nil {
		o.log.Error().Err(err).Str("session_id", id).Msg("failed to create session")
		return nil, err
	}
	o.hub.Broadcast(id, StatusEvent(snap))

	o.wg.Add(1)
	go o.run(id, text)

	o.log.Info().Str("session_id", id).Msg("session created")
	return snap, nil
}

// GetSession returns the last committed snapshot for id.
func (o *Orchestrator) GetSession(ctx context.Context, id string) (*Session, error) {
	return o.store.Get(ctx, id)
}

// Drain blocks until all in-flight workflows finish or ctx expires. Called
// during shutdown so no session is silently abandoned mid-workflow.
func (o *Orchestrator) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run executes the workflow for one session. Internal failures, including
// panics, are converted into an error transition so a session can never be
// left stuck in pending or generating.
func (o *Orchestrator) run(id, text string) {
	defer o.wg.Done()

	o.slots <- struct{}{}
	defer func() { <-o.slots }()

	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			o.log.Error().Str("session_id", id).Any("panic", r).Msg("workflow panicked")
			o.fail(ctx, id, fmt.Errorf("internal workflow failure: %v", r))
		}
	}()

	if err := o.commit(ctx, id, StatusUpdate{Status: StatusGenerating, Progress: Progress(0)}); err != nil {
		return
	}

	job, err := o.avatar.StartGeneration(ctx, text)
	if err != nil {
		o.fail(ctx, id, err)
		return
	}

	if err := o.commit(ctx, id, StatusUpdate{
		Status:   StatusGenerating,
		Progress: Progress(50),
		Payload:  map[string]any{PayloadReplicaID: job.Ref},
	}); err != nil {
		return
	}

	artifactURL, err := o.awaitArtifact(ctx, job.Ref)
	if err != nil {
		o.fail(ctx, id, err)
		return
	}

	room, err := o.rooms.CreateRoom(ctx, "avatar_"+id)
	if err != nil {
		o.fail(ctx, id, err)
		return
	}

	err = o.commit(ctx, id, StatusUpdate{
		Status:   StatusReady,
		Progress: Progress(100),
		Payload: map[string]any{
			PayloadVideoURL:   artifactURL,
			PayloadRoomName:   room.Name,
			PayloadLiveKitURL: room.URL,
		},
	})
	if err == nil {
		o.log.Info().Str("session_id", id).Str("room", room.Name).Msg("session ready")
	}
}

// awaitArtifact polls the avatar provider until the generation completes or
// the attempt budget runs out.
func (o *Orchestrator) awaitArtifact(ctx context.Context, jobRef string) (string, error) {
	for attempt := 0; attempt < o.opts.PollAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(o.opts.PollInterval)
		}
		st, err := o.avatar.CheckStatus(ctx, jobRef)
		if err != nil {
			return "", err
		}
		if st.Done {
			return st.ArtifactURL, nil
		}
	}
	return "", fmt.Errorf("generation %s did not complete in time", jobRef)
}

// commit applies one atomic transition and broadcasts the committed
// snapshot. Every store update is followed by exactly one broadcast.
func (o *Orchestrator) commit(ctx context.Context, id string, upd StatusUpdate) error {
	snap, err := o.store.Update(ctx, id, upd)
	if err != nil {
		// Recoverable by contract: log, never crash the process.
		o.log.Error().Err(err).Str("session_id", id).Str("status", string(upd.Status)).
			Msg("failed to commit transition")
		return err
	}
	o.hub.Broadcast(id, StatusEvent(snap))
	return nil
}

// fail transitions the session to its terminal error state with the cause
// preserved in the payload.
func (o *Orchestrator) fail(ctx context.Context, id string, cause error) {
	o.log.Warn().Err(cause).Str("session_id", id).Msg("workflow failed")
	_ = o.commit(ctx, id, StatusUpdate{
		Status:  StatusError,
		Payload: map[string]any{PayloadError: cause.Error()},
	})
}
