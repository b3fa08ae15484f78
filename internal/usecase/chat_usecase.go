package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SendChatMessageInput carries one shopper utterance. SessionID is a
// client-generated key so anonymous shoppers can chat before logging in;
// UserID is set once the shopper is authenticated.
type SendChatMessageInput struct {
	SessionID string
	UserID    *uuid.UUID
	Message   string
}

// --- Output DTOs ---

// SendChatMessageOutput returns the assistant's reply and the detected intent.
type SendChatMessageOutput struct {
	SessionID string
	Intent    string
	Reply     string
}

// ChatUsecase defines the shopping assistant conversation operations.
type ChatUsecase interface {
	// SendMessage records the shopper's message, produces an assistant
	// reply from the recent conversation window, and persists both.
	SendMessage(ctx context.Context, input *SendChatMessageInput) (*SendChatMessageOutput, error)

	// GetHistory returns a session's full message history, oldest first.
	GetHistory(ctx context.Context, sessionID string) (*entity.ChatSession, error)
}
