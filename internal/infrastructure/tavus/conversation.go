package tavus

import (
	"context"
	"time"
)

// Conversation describes a Tavus persona conversation.
type Conversation struct {
	ID       string         `json:"conversation_id"`
	URL      string         `json:"conversation_url"`
	Status   string         `json:"status"`
	Metadata map[string]any `json:"-"`
}

type conversationRequest struct {
	PersonaID        string `json:"persona_id"`
	ConversationName string `json:"conversation_name"`
	Context          string `json:"conversational_context,omitempty"`
}

// CreateConversation starts a persona conversation. The returned
// conversation URL carries everything a client needs to join over WebRTC.
func (c *Client) CreateConversation(ctx context.Context, name, greeting string) (*Conversation, error) {
	const op = "create_conversation"
	start := time.Now()

	if name == "" {
		name = "conversation_" + time.Now().Format(time.RFC3339)
	}

	var out Conversation
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(conversationRequest{
			PersonaID:        c.personaID,
			ConversationName: name,
			Context:          greeting,
		}).
		SetResult(&out).
		Post("/v2/conversations")
	if err := c.check(op, resp, err, start); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.journal[out.ID] = &conversationRecord{Status: "active"}
	c.mu.Unlock()

	c.log.Info().Str("conversation_id", out.ID).Msg("conversation created")
	return &out, nil
}

// GetConversation fetches the provider's view of a conversation, merged
// with the locally journaled status when the provider no longer knows it.
func (c *Client) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	const op = "get_conversation"
	start := time.Now()

	var out Conversation
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/v2/conversations/" + id)
	if err := c.check(op, resp, err, start); err != nil {
		c.mu.Lock()
		rec, ok := c.journal[id]
		c.mu.Unlock()
		if ok {
			return &Conversation{ID: id, Status: rec.Status}, nil
		}
		return nil, err
	}
	return &out, nil
}

// EndConversation ends a conversation. Best-effort: the provider tears the
// conversation down when the WebRTC connection closes, so a failed delete
// is only logged.
func (c *Client) EndConversation(ctx context.Context, id string) bool {
	const op = "end_conversation"
	start := time.Now()

	c.mu.Lock()
	if rec, ok := c.journal[id]; ok {
		rec.Status = "ended"
		rec.EndedAt = time.Now()
	}
	c.mu.Unlock()

	resp, err := c.http.R().SetContext(ctx).Delete("/v2/conversations/" + id)
	if err := c.check(op, resp, err, start); err != nil {
		c.log.Warn().Err(err).Str("conversation_id", id).Msg("could not delete conversation")
	}
	return true
}

// SendMessage journals a message for a conversation. Messages actually
// reach the avatar over the LiveKit data channel once the client connects;
// this keeps a server-side record for tracking.
func (c *Client) SendMessage(ctx context.Context, id, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.journal[id]
	if !ok {
		rec = &conversationRecord{Status: "active"}
		c.journal[id] = rec
	}
	rec.Messages = append(rec.Messages, journalMessage{Text: text, At: time.Now()})

	c.log.Info().Str("conversation_id", id).Int("len", len(text)).Msg("message journaled")
	return nil
}
