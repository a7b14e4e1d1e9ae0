package session

import "time"

// Status is the lifecycle state of an avatar session.
type Status string

const (
	// StatusPending indicates the session was created and the workflow has
	// not started the provider calls yet.
	StatusPending Status = "pending"
	// StatusGenerating indicates avatar generation is in flight.
	StatusGenerating Status = "generating"
	// StatusReady indicates the artifact and room are available.
	StatusReady Status = "ready"
	// StatusError indicates the workflow failed; the cause is in the payload.
	StatusError Status = "error"
)

// Index returns the position of the status in the lifecycle. Observers use
// it to verify that received events never regress.
func (s Status) Index() int {
	switch s {
	case StatusPending:
		return 0
	case StatusGenerating:
		return 1
	case StatusReady, StatusError:
		return 2
	default:
		return -1
	}
}

// Terminal reports whether no further transitions are legal.
func (s Status) Terminal() bool {
	return s == StatusReady || s == StatusError
}

// Payload keys written by the orchestrator.
const (
	PayloadReplicaID  = "replicaId"
	PayloadVideoURL   = "videoUrl"
	PayloadRoomName   = "roomName"
	PayloadLiveKitURL = "livekitUrl"
	PayloadError      = "error"
)

// Session is one tracked instance of the avatar-generation-and-room
// workflow. Snapshots handed out by the store are defensive copies; the
// orchestrator is the only writer.
type Session struct {
	ID        string         `json:"sessionId"`
	Status    Status         `json:"status"`
	Progress  *float64       `json:"progress,omitempty"`
	Payload   map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}

// Clone returns a deep copy of the session so callers can never observe a
// partially applied update.
func (s *Session) Clone() *Session {
	dup := *s
	dup.Payload = make(map[string]any, len(s.Payload))
	for k, v := range s.Payload {
		dup.Payload[k] = v
	}
	return &dup
}

// StatusUpdate describes one atomic transition: the new status, an optional
// progress marker and payload fields to merge. New payload keys overwrite
// old ones with the same name; unspecified keys persist.
type StatusUpdate struct {
	Status   Status
	Progress *float64
	Payload  map[string]any
}

// Event types pushed to observers.
const (
	EventConnected = "connected"
	EventStatus    = "status"
	EventError     = "error"
)

// Event is one fan-out message delivered to every observer of a session.
type Event struct {
	Type      string         `json:"type"`
	SessionID string         `json:"sessionId"`
	Status    Status         `json:"status,omitempty"`
	Progress  *float64       `json:"progress,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// ConnectedEvent is sent once to a freshly attached observer.
func ConnectedEvent(sessionID string) Event {
	return Event{
		Type:      EventConnected,
		SessionID: sessionID,
		Message:   "WebSocket connected",
	}
}

// StatusEvent converts a committed snapshot into a broadcast event.
func StatusEvent(snap *Session) Event {
	return Event{
		Type:      EventStatus,
		SessionID: snap.ID,
		Status:    snap.Status,
		Progress:  snap.Progress,
		Data:      snap.Payload,
	}
}

// Progress returns a pointer to v for use in StatusUpdate and Event.
func Progress(v float64) *float64 {
	return &v
}
