package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrChatSessionNotFound is returned when a chat session is not found.
var ErrChatSessionNotFound = errors.New("chat session not found")

// ChatRepository defines the persistence port for assistant chat sessions.
type ChatRepository interface {
	// FindBySessionID retrieves a chat session by its client-supplied session identifier.
	FindBySessionID(ctx context.Context, sessionID string) (*entity.ChatSession, error)

	// Save persists a chat session, creating it on first use and
	// appending messages on subsequent turns.
	Save(ctx context.Context, session *entity.ChatSession) error
}
