// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	// ChatRoleUser marks a message written by the shopper.
	ChatRoleUser ChatRole = "user"
	// ChatRoleAssistant marks a reply produced by the assistant.
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatSession is one support conversation, keyed by a client-generated
// session identifier so anonymous shoppers can chat before logging in.
type ChatSession struct {
	ID        uuid.UUID     // The unique ID for this conversation record.
	SessionID string        // Client-generated session key.
	UserID    *uuid.UUID    // The authenticated account, if any.
	Messages  []ChatMessage // Full message history, oldest first.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatMessage is a single utterance within a session.
type ChatMessage struct {
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}

// Window returns the most recent n messages, used as conversation context
// for the assistant.
func (s *ChatSession) Window(n int) []ChatMessage {
	if len(s.Messages) <= n {
		return s.Messages
	}

	return s.Messages[len(s.Messages)-n:]
}
