package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory store with an optional gate so tests can
// attach observers before the workflow commits its first transition.
type fakeStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	gate     chan struct{}
	gateOnce sync.Once
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[string]*Session)}
}

func (s *fakeStore) Create(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &Session{ID: id, Status: StatusPending, Payload: map[string]any{}}
	s.sessions[id] = sess
	return sess.Clone(), nil
}

func (s *fakeStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return sess.Clone(), nil
}

func (s *fakeStore) Update(ctx context.Context, id string, upd StatusUpdate) (*Session, error) {
	if s.gate != nil {
		s.gateOnce.Do(func() { <-s.gate })
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	if upd.Progress != nil {
		sess.Progress = upd.Progress
	}
	for k, v := range upd.Payload {
		sess.Payload[k] = v
	}
	sess.Status = upd.Status
	return sess.Clone(), nil
}

func (s *fakeStore) List(ctx context.Context) ([]*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess.Clone())
	}
	return out, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type stubAvatar struct {
	mu           sync.Mutex
	startErr     error
	panicOnStart bool
	pendingPolls int
	checkCalls   int
}

func (a *stubAvatar) StartGeneration(ctx context.Context, text string) (*GenerationJob, error) {
	if a.panicOnStart {
		panic("provider blew up")
	}
	if a.startErr != nil {
		return nil, a.startErr
	}
	return &GenerationJob{Ref: "vid_123"}, nil
}

func (a *stubAvatar) CheckStatus(ctx context.Context, jobRef string) (*GenerationStatus, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkCalls++
	if a.checkCalls <= a.pendingPolls {
		return &GenerationStatus{Done: false}, nil
	}
	return &GenerationStatus{Done: true, ArtifactURL: "https://cdn.example.com/vid_123.mp4"}, nil
}

func (a *stubAvatar) calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.checkCalls
}

type stubRooms struct {
	mu        sync.Mutex
	createErr error
	created   int
}

func (r *stubRooms) CreateRoom(ctx context.Context, name string) (*Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created++
	return &Room{Name: name, URL: "ws://localhost:7880"}, nil
}

func (r *stubRooms) DeleteRoom(ctx context.Context, name string) bool { return true }

func (r *stubRooms) IssueAccessToken(room, identity string, ttl time.Duration) (string, error) {
	return "token", nil
}

func (r *stubRooms) createdRooms() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created
}

func testOptions() Options {
	return Options{PollInterval: time.Millisecond, PollAttempts: 5, MaxConcurrent: 4}
}

func drain(t *testing.T, o *Orchestrator) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, o.Drain(ctx))
}

func TestWorkflowHappyPath(t *testing.T) {
	st := newFakeStore()
	st.gate = make(chan struct{})
	hub := NewHub(zerolog.Nop())
	avatar := &stubAvatar{}
	rooms := &stubRooms{}
	orch := NewOrchestrator(st, hub, avatar, rooms, testOptions(), zerolog.Nop())

	snap, err := orch.StartGeneration(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, snap.Status)
	assert.NotEmpty(t, snap.ID)

	sink := &recordingSink{}
	hub.Register(snap.ID, sink)
	close(st.gate)
	drain(t, orch)

	final, err := orch.GetSession(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusReady, final.Status)
	require.NotNil(t, final.Progress)
	assert.Equal(t, float64(100), *final.Progress)
	assert.Equal(t, "https://cdn.example.com/vid_123.mp4", final.Payload[PayloadVideoURL])
	assert.Equal(t, "avatar_"+snap.ID, final.Payload[PayloadRoomName])
	assert.Equal(t, "ws://localhost:7880", final.Payload[PayloadLiveKitURL])

	events := sink.Events()
	require.Len(t, events, 3)
	assert.Equal(t, StatusGenerating, events[0].Status)
	assert.Equal(t, float64(0), *events[0].Progress)
	assert.Equal(t, StatusGenerating, events[1].Status)
	assert.Equal(t, float64(50), *events[1].Progress)
	assert.Equal(t, "vid_123", events[1].Data[PayloadReplicaID])
	assert.Equal(t, StatusReady, events[2].Status)
}

func TestWorkflowObserversSeeIdenticalSequences(t *testing.T) {
	st := newFakeStore()
	st.gate = make(chan struct{})
	hub := NewHub(zerolog.Nop())
	orch := NewOrchestrator(st, hub, &stubAvatar{}, &stubRooms{}, testOptions(), zerolog.Nop())

	snap, err := orch.StartGeneration(context.Background(), "hello")
	require.NoError(t, err)

	a := &recordingSink{}
	b := &recordingSink{}
	hub.Register(snap.ID, a)
	hub.Register(snap.ID, b)
	close(st.gate)
	drain(t, orch)

	eventsA := a.Events()
	eventsB := b.Events()
	require.Equal(t, len(eventsA), len(eventsB))
	for i := range eventsA {
		assert.Equal(t, eventsA[i].Status, eventsB[i].Status)
		assert.Equal(t, eventsA[i].Progress, eventsB[i].Progress)
	}

	// Statuses never regress within a sequence.
	for i := 1; i < len(eventsA); i++ {
		assert.GreaterOrEqual(t, eventsA[i].Status.Index(), eventsA[i-1].Status.Index())
	}
}

func TestWorkflowGenerationFailureSkipsRoom(t *testing.T) {
	st := newFakeStore()
	hub := NewHub(zerolog.Nop())
	rooms := &stubRooms{}
	avatar := &stubAvatar{startErr: errors.New("quota exceeded")}
	orch := NewOrchestrator(st, hub, avatar, rooms, testOptions(), zerolog.Nop())

	snap, err := orch.StartGeneration(context.Background(), "hello")
	require.NoError(t, err)
	drain(t, orch)

	final, err := orch.GetSession(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusError, final.Status)
	assert.Contains(t, final.Payload[PayloadError], "quota exceeded")
	assert.Equal(t, 0, rooms.createdRooms())
}

func TestWorkflowPollsUntilDone(t *testing.T) {
	st := newFakeStore()
	hub := NewHub(zerolog.Nop())
	avatar := &stubAvatar{pendingPolls: 2}
	orch := NewOrchestrator(st, hub, avatar, &stubRooms{}, testOptions(), zerolog.Nop())

	snap, err := orch.StartGeneration(context.Background(), "hello")
	require.NoError(t, err)
	drain(t, orch)

	final, err := orch.GetSession(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusReady, final.Status)
	assert.Equal(t, 3, avatar.calls())
}

func TestWorkflowPollBudgetExhausted(t *testing.T) {
	st := newFakeStore()
	hub := NewHub(zerolog.Nop())
	avatar := &stubAvatar{pendingPolls: 100}
	opts := Options{PollInterval: time.Millisecond, PollAttempts: 2, MaxConcurrent: 4}
	orch := NewOrchestrator(st, hub, avatar, &stubRooms{}, opts, zerolog.Nop())

	snap, err := orch.StartGeneration(context.Background(), "hello")
	require.NoError(t, err)
	drain(t, orch)

	final, err := orch.GetSession(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusError, final.Status)
	assert.Equal(t, 2, avatar.calls())
}

func TestWorkflowPanicBecomesErrorState(t *testing.T) {
	st := newFakeStore()
	hub := NewHub(zerolog.Nop())
	avatar := &stubAvatar{panicOnStart: true}
	orch := NewOrchestrator(st, hub, avatar, &stubRooms{}, testOptions(), zerolog.Nop())

	snap, err := orch.StartGeneration(context.Background(), "hello")
	require.NoError(t, err)
	drain(t, orch)

	final, err := orch.GetSession(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusError, final.Status)
	assert.Contains(t, final.Payload[PayloadError], "internal workflow failure")
}

func TestStatusIndexAndTerminal(t *testing.T) {
	tests := []struct {
		status   Status
		index    int
		terminal bool
	}{
		{StatusPending, 0, false},
		{StatusGenerating, 1, false},
		{StatusReady, 2, true},
		{StatusError, 2, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.index, tt.status.Index())
			assert.Equal(t, tt.terminal, tt.status.Terminal())
		})
	}
}
