package service

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// AssistantReply is the assistant's answer to a single chat turn.
type AssistantReply struct {
	Intent  string
	Content string
}

// Assistant defines the interface for the shopping assistant reply engine.
// Implementations classify the user's message into an intent and produce a
// reply, optionally consulting the catalog and the user's order history.
type Assistant interface {
	// Reply produces an answer for the given message. UserID is nil for
	// anonymous chats. History carries the most recent messages of the
	// session, oldest first.
	Reply(ctx context.Context, message string, userID *uuid.UUID, history []entity.ChatMessage) (*AssistantReply, error)
}
