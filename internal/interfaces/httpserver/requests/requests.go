// Package requests defines the request DTOs accepted by the API.
package requests

// GenerateRequest starts an avatar generation session.
type GenerateRequest struct {
	Text string `json:"text" binding:"required,min=1,max=5000"`
}

// TokenRequest asks for a LiveKit access token for a participant.
type TokenRequest struct {
	RoomName        string `json:"roomName" binding:"required"`
	ParticipantName string `json:"participantName"`
}

// ConversationStartRequest starts a Tavus persona conversation. Field
// names mirror the Tavus API.
type ConversationStartRequest struct {
	ConversationName string `json:"conversation_name"`
	CustomGreeting   string `json:"custom_greeting"`
}

// ConversationSendRequest sends a text message to an active conversation.
type ConversationSendRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	Text           string `json:"text" binding:"required"`
}

// JobQuery carries the job listing filters from the query string.
type JobQuery struct {
	Search    string  `form:"search"`
	Location  string  `form:"location"`
	Type      string  `form:"type"`
	Tags      string  `form:"tags"`
	MinSalary float64 `form:"minSalary"`
	MaxSalary float64 `form:"maxSalary"`
}

// RecommendationQuery bounds the recommendation listing.
type RecommendationQuery struct {
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=50"`
}
