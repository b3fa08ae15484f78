package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	chatRepo      repository.ChatRepository
	assistant     service.Assistant
	contextWindow int
	logger        *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo  repository.ChatRepository
	Assistant service.Assistant
	Config    *config.Config
	Logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	contextWindow := constants.AssistantContextWindow
	if params.Config != nil && params.Config.Assistant != nil && params.Config.Assistant.ContextWindow > 0 {
		contextWindow = params.Config.Assistant.ContextWindow
	}

	return &chatService{
		chatRepo:      params.ChatRepo,
		assistant:     params.Assistant,
		contextWindow: contextWindow,
		logger:        params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage records one shopper utterance, produces an assistant reply
// from the recent conversation window, and persists both turns.
func (srv *chatService) SendMessage(ctx context.Context, input *usecase.SendChatMessageInput) (*usecase.SendChatMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" || strings.TrimSpace(input.SessionID) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "message and session id are required")
	}

	srv.log(ctx).Debug("Handling chat message", slog.String("sessionID", input.SessionID))

	session, err := srv.chatRepo.FindBySessionID(ctx, input.SessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrChatSessionNotFound) {
			return nil, errors.Wrap(err, "failed to load chat session")
		}
		session = &entity.ChatSession{
			SessionID: input.SessionID,
			UserID:    input.UserID,
		}
	}
	if session.UserID == nil && input.UserID != nil {
		// The shopper logged in mid-conversation; claim the session.
		session.UserID = input.UserID
	}

	history := session.Window(srv.contextWindow)

	reply, err := srv.assistant.Reply(ctx, message, input.UserID, history)
	if err != nil {
		srv.log(ctx).Error("Assistant failed to reply", slog.String("sessionID", input.SessionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to produce assistant reply")
	}

	now := time.Now()
	session.Messages = append(session.Messages,
		entity.ChatMessage{Role: entity.ChatRoleUser, Content: message, CreatedAt: now},
		entity.ChatMessage{Role: entity.ChatRoleAssistant, Content: reply.Content, CreatedAt: now},
	)

	if err := srv.chatRepo.Save(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to save chat session", slog.String("sessionID", input.SessionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save chat session")
	}

	return &usecase.SendChatMessageOutput{
		SessionID: session.SessionID,
		Intent:    reply.Intent,
		Reply:     reply.Content,
	}, nil
}

// GetHistory returns a session's full message history, oldest first.
func (srv *chatService) GetHistory(ctx context.Context, sessionID string) (*entity.ChatSession, error) {
	session, err := srv.chatRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrChatSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "chat session not found")
		}

		return nil, errors.Wrap(err, "failed to load chat session")
	}

	return session, nil
}
