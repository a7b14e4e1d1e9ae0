// Package responses defines the response DTOs and error mapping for the API.
package responses

import (
	"github.com/Srujankatukam/job-nova/internal/domain/session"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/tavus"
)

// GenerateResponse acknowledges a new avatar session.
type GenerateResponse struct {
	SessionID string         `json:"sessionId"`
	Status    session.Status `json:"status"`
}

// StatusResponse is a flattened session snapshot.
type StatusResponse struct {
	SessionID  string         `json:"sessionId"`
	Status     session.Status `json:"status"`
	Progress   *float64       `json:"progress,omitempty"`
	VideoURL   string         `json:"videoUrl,omitempty"`
	RoomName   string         `json:"roomName,omitempty"`
	LiveKitURL string         `json:"livekitUrl,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// NewStatusResponse flattens a session snapshot into the wire shape.
func NewStatusResponse(snap *session.Session) StatusResponse {
	out := StatusResponse{
		SessionID: snap.ID,
		Status:    snap.Status,
		Progress:  snap.Progress,
	}
	if v, ok := snap.Payload[session.PayloadVideoURL].(string); ok {
		out.VideoURL = v
	}
	if v, ok := snap.Payload[session.PayloadRoomName].(string); ok {
		out.RoomName = v
	}
	if v, ok := snap.Payload[session.PayloadLiveKitURL].(string); ok {
		out.LiveKitURL = v
	}
	if v, ok := snap.Payload[session.PayloadError].(string); ok {
		out.Error = v
	}
	return out
}

// TokenResponse carries a freshly minted LiveKit access token.
type TokenResponse struct {
	Token    string `json:"token"`
	URL      string `json:"url"`
	RoomName string `json:"roomName"`
}

// ConversationStartResponse carries the connection details for a persona
// conversation. The conversation URL embeds everything the client needs
// to join over WebRTC.
type ConversationStartResponse struct {
	ConversationID  string              `json:"conversation_id"`
	LiveKitRoomName string              `json:"livekit_room_name"`
	LiveKitToken    string              `json:"livekit_token"`
	LiveKitURL      string              `json:"livekit_url"`
	TavusData       *tavus.Conversation `json:"tavus_data,omitempty"`
	Status          string              `json:"status"`
}

// ConversationStatusResponse reports the current state of a conversation.
type ConversationStatusResponse struct {
	ConversationID string `json:"conversation_id"`
	Status         string `json:"status"`
}

// ConversationEndResponse acknowledges conversation teardown.
type ConversationEndResponse struct {
	ConversationID string `json:"conversation_id"`
	Success        bool   `json:"success"`
	Message        string `json:"message"`
}

// MessageSentResponse acknowledges a delivered message.
type MessageSentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
