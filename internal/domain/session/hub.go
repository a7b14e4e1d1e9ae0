package session

import (
	"sync"

	"github.com/rs/zerolog"
)

// Sink is one observer delivery channel, typically a WebSocket connection.
// Send must return an error once the channel is no longer usable.
type Sink interface {
	Send(Event) error
}

// Hub tracks which observers watch which session and fans events out to
// them. An observer watches exactly one session; many observers may watch
// the same session. Safe for concurrent use.
type Hub struct {
	mu       sync.Mutex
	watchers map[string]map[Sink]struct{}
	log      zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		watchers: make(map[string]map[Sink]struct{}),
		log:      log.With().Str("component", "session-hub").Logger(),
	}
}

// Register attaches sink to the observer set for sessionID. Registering the
// same sink twice is a no-op, so a broadcast delivers at most once per sink.
func (h *Hub) Register(sessionID string, sink Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.watchers[sessionID]
	if !ok {
		set = make(map[Sink]struct{})
		h.watchers[sessionID] = set
	}
	set[sink] = struct{}{}
}

// Unregister detaches sink from sessionID. The session entry is removed
// entirely once its set is empty so the map cannot grow without bound.
func (h *Hub) Unregister(sessionID string, sink Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(sessionID, sink)
}

// Broadcast delivers ev to every sink registered for sessionID. Delivery is
// best-effort per sink: a failure on one sink never aborts delivery to the
// others, and a failed sink is unregistered immediately so dead observers
// cannot accumulate. With no observers this is a silent no-op; an event may
// legitimately race ahead of any observer connecting.
func (h *Hub) Broadcast(sessionID string, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.watchers[sessionID]
	if !ok {
		return
	}

	var failed []Sink
	for sink := range set {
		if err := sink.Send(ev); err != nil {
			h.log.Warn().
				Err(err).
				Str("session_id", sessionID).
				Msg("dropping observer after failed delivery")
			failed = append(failed, sink)
		}
	}

	for _, sink := range failed {
		h.remove(sessionID, sink)
	}
}

// Watchers returns the number of observers currently attached to sessionID.
func (h *Hub) Watchers(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers[sessionID])
}

// remove assumes h.mu is held.
func (h *Hub) remove(sessionID string, sink Sink) {
	set, ok := h.watchers[sessionID]
	if !ok {
		return
	}
	delete(set, sink)
	if len(set) == 0 {
		delete(h.watchers, sessionID)
	}
}
