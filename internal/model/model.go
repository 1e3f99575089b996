package model

import (
	"time"

	"github.com/google/uuid"
)

// Message roles. No "system" role is ever stored in a conversation: the
// system context is injected per-request by the relay and never persisted.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in a conversation. Messages are immutable
// once created; a failed relay call never mutates a prior message.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// NewChatMessage creates a message with a fresh ID and the current time.
func NewChatMessage(role, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
}

// HistoryEntry is the wire form of a past turn: role and content only.
// IDs and timestamps are client-side metadata and are stripped before
// transmission.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RelayRequest is the body of POST /api/deepseek/chat.
type RelayRequest struct {
	Message             string         `json:"message" validate:"required"`
	SystemContext       string         `json:"systemContext,omitempty"`
	ConversationHistory []HistoryEntry `json:"conversationHistory,omitempty"`
}

// RelayResponse is the success body returned by the relay endpoint.
type RelayResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// ExcursionRequest is the body of POST /smtp/excursion-request, the
// guided-tour contact form.
type ExcursionRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=50"`
}
