package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Srujankatukam/job-nova/internal/domain/session"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/metrics"
)

const wsWriteWait = 10 * time.Second

// WSHandler upgrades observer connections and bridges them onto the
// session hub.
type WSHandler struct {
	hub      *session.Hub
	service  session.Service
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewWSHandler creates a new WebSocket handler.
func NewWSHandler(hub *session.Hub, service session.Service, log zerolog.Logger) *WSHandler {
	return &WSHandler{
		hub:     hub,
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: log.With().Str("component", "ws-handler").Logger(),
	}
}

// wsSink adapts one WebSocket connection to the hub sink contract. Writes
// are serialized; a write failure makes the hub drop the sink.
type wsSink struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *wsSink) Send(ev session.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return s.conn.WriteJSON(ev)
}

// clientMessage is the only inbound shape observers may send.
type clientMessage struct {
	Type string `json:"type"`
}

// Handle upgrades the request and serves the observer until it
// disconnects. A connected event is sent immediately; a status_request
// message triggers a resend of the last committed snapshot.
func (h *WSHandler) Handle(c *gin.Context) {
	sessionID := c.Param("sessionId")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("session_id", sessionID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sink := &wsSink{conn: conn}
	h.hub.Register(sessionID, sink)
	metrics.ObserverConnections.Inc()
	defer func() {
		h.hub.Unregister(sessionID, sink)
		metrics.ObserverConnections.Dec()
	}()

	h.log.Info().Str("session_id", sessionID).Msg("observer attached")

	if err := sink.Send(session.ConnectedEvent(sessionID)); err != nil {
		h.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to send connected event")
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Str("session_id", sessionID).Msg("observer read error")
			}
			break
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.log.Debug().Str("session_id", sessionID).Msg("ignoring malformed client message")
			continue
		}

		if msg.Type == "status_request" {
			h.resendSnapshot(c, sessionID, sink)
		}
	}

	h.log.Info().Str("session_id", sessionID).Msg("observer detached")
}

// resendSnapshot pushes the last committed snapshot to one observer. An
// unknown session is skipped silently so clients can attach before the
// session exists.
func (h *WSHandler) resendSnapshot(c *gin.Context, sessionID string, sink *wsSink) {
	snap, err := h.service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.log.Debug().Str("session_id", sessionID).Msg("status requested for unknown session")
		return
	}
	if err := sink.Send(session.StatusEvent(snap)); err != nil {
		h.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to resend snapshot")
	}
}
