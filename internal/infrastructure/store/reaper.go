package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Srujankatukam/job-nova/internal/domain/session"
)

// Reaper evicts sessions that reached a terminal state more than the
// retention TTL ago. Sessions still in flight are never touched, so an
// observer connecting late can always read the final snapshot within the
// retention window.
type Reaper struct {
	store     session.Store
	retention time.Duration
	interval  time.Duration
	log       zerolog.Logger
	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewReaper creates a session reaper.
func NewReaper(store session.Store, retention, interval time.Duration, log zerolog.Logger) *Reaper {
	return &Reaper{
		store:     store,
		retention: retention,
		interval:  interval,
		log:       log.With().Str("component", "session-reaper").Logger(),
		done:      make(chan struct{}),
	}
}

// Start begins the sweep loop in background. Safe to call multiple times;
// only the first call starts the loop.
func (r *Reaper) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.wg.Add(1)
		go r.run(ctx)
		r.log.Info().Dur("retention", r.retention).Msg("session reaper started")
	})
}

// Stop gracefully shuts down the reaper. Safe to call multiple times.
func (r *Reaper) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
		r.wg.Wait()
		r.log.Info().Msg("session reaper stopped")
	})
}

func (r *Reaper) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reaper) sweep(ctx context.Context) {
	sessions, err := r.store.List(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to list sessions for sweep")
		return
	}

	now := time.Now()
	evicted := 0
	for _, sess := range sessions {
		if !sess.Status.Terminal() {
			continue
		}
		if now.Sub(sess.UpdatedAt) <= r.retention {
			continue
		}
		if err := r.store.Delete(ctx, sess.ID); err == nil {
			evicted++
		}
	}

	if evicted > 0 {
		r.log.Info().Int("evicted", evicted).Msg("terminal sessions evicted")
	}
}
