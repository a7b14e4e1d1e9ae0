package store

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujankatukam/job-nova/internal/domain/session"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	created, err := st.Create(ctx, "sess_1")
	require.NoError(t, err)
	assert.Equal(t, session.StatusPending, created.Status)
	assert.NotNil(t, created.Payload)

	got, err := st.Get(ctx, "sess_1")
	require.NoError(t, err)
	assert.Equal(t, "sess_1", got.ID)
	assert.Equal(t, session.StatusPending, got.Status)
}

func TestMemoryStoreCreateDuplicate(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := st.Create(ctx, "sess_1")
	require.NoError(t, err)

	_, err = st.Create(ctx, "sess_1")
	assert.ErrorIs(t, err, ErrSessionExists)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())

	_, err := st.Get(context.Background(), "sess_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreUpdateMergesPayload(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := st.Create(ctx, "sess_1")
	require.NoError(t, err)

	_, err = st.Update(ctx, "sess_1", session.StatusUpdate{
		Status:   session.StatusGenerating,
		Progress: session.Progress(50),
		Payload:  map[string]any{session.PayloadReplicaID: "vid_1"},
	})
	require.NoError(t, err)

	snap, err := st.Update(ctx, "sess_1", session.StatusUpdate{
		Status:  session.StatusReady,
		Payload: map[string]any{session.PayloadVideoURL: "https://cdn/v.mp4"},
	})
	require.NoError(t, err)

	// Earlier payload keys persist across transitions.
	assert.Equal(t, "vid_1", snap.Payload[session.PayloadReplicaID])
	assert.Equal(t, "https://cdn/v.mp4", snap.Payload[session.PayloadVideoURL])
	require.NotNil(t, snap.Progress)
	assert.Equal(t, float64(50), *snap.Progress)
}

func TestMemoryStoreUpdateUnknownCreatesNoPhantom(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := st.Update(ctx, "sess_ghost", session.StatusUpdate{Status: session.StatusReady})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = st.Get(ctx, "sess_ghost")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreUpdateTerminalRejected(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := st.Create(ctx, "sess_1")
	require.NoError(t, err)
	_, err = st.Update(ctx, "sess_1", session.StatusUpdate{Status: session.StatusError})
	require.NoError(t, err)

	_, err = st.Update(ctx, "sess_1", session.StatusUpdate{Status: session.StatusGenerating})
	assert.ErrorIs(t, err, ErrSessionTerminal)
}

func TestMemoryStoreSnapshotsAreIsolated(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := st.Create(ctx, "sess_1")
	require.NoError(t, err)

	snap, err := st.Get(ctx, "sess_1")
	require.NoError(t, err)
	snap.Payload["tampered"] = true
	snap.Status = session.StatusReady

	fresh, err := st.Get(ctx, "sess_1")
	require.NoError(t, err)
	assert.Equal(t, session.StatusPending, fresh.Status)
	assert.NotContains(t, fresh.Payload, "tampered")
}

func TestMemoryStoreDeleteAndList(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := st.Create(ctx, "sess_1")
	require.NoError(t, err)
	_, err = st.Create(ctx, "sess_2")
	require.NoError(t, err)

	all, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, st.Delete(ctx, "sess_1"))
	assert.ErrorIs(t, st.Delete(ctx, "sess_1"), ErrSessionNotFound)

	all, err = st.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "sess_2", all[0].ID)
}

func TestReaperEvictsOnlyExpiredTerminalSessions(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := st.Create(ctx, "sess_done")
	require.NoError(t, err)
	_, err = st.Update(ctx, "sess_done", session.StatusUpdate{Status: session.StatusReady})
	require.NoError(t, err)

	_, err = st.Create(ctx, "sess_live")
	require.NoError(t, err)

	r := NewReaper(st, time.Nanosecond, time.Hour, zerolog.Nop())
	time.Sleep(5 * time.Millisecond)
	r.sweep(ctx)

	_, err = st.Get(ctx, "sess_done")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = st.Get(ctx, "sess_live")
	assert.NoError(t, err)
}

func TestReaperKeepsRecentTerminalSessions(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	_, err := st.Create(ctx, "sess_done")
	require.NoError(t, err)
	_, err = st.Update(ctx, "sess_done", session.StatusUpdate{Status: session.StatusError})
	require.NoError(t, err)

	r := NewReaper(st, time.Hour, time.Hour, zerolog.Nop())
	r.sweep(ctx)

	_, err = st.Get(ctx, "sess_done")
	assert.NoError(t, err)
}

func TestReaperStartStopAreIdempotent(t *testing.T) {
	st := NewMemoryStore(zerolog.Nop())
	r := NewReaper(st, time.Hour, time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.Start(ctx)
	r.Start(ctx)
	r.Stop()
	r.Stop()
}
