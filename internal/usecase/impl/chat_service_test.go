package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service   usecase.ChatUsecase
	chatRepo  *mockRepo.MockChatRepository
	assistant *mockSvc.MockAssistant
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	chatRepo := mockRepo.NewMockChatRepository(t)
	assistant := mockSvc.NewMockAssistant(t)

	service := NewChatService(ChatServiceParams{
		ChatRepo:  chatRepo,
		Assistant: assistant,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})

	return chatServiceFixtures{
		service:   service,
		chatRepo:  chatRepo,
		assistant: assistant,
	}
}

func TestChatService_SendMessage_NewSession(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	input := &usecase.SendChatMessageInput{
		SessionID: "session-123",
		Message:   "show me jewelry",
	}

	fx.chatRepo.EXPECT().
		FindBySessionID(ctx, "session-123").
		Return(nil, repository.ErrChatSessionNotFound)

	fx.assistant.EXPECT().
		Reply(ctx, "show me jewelry", (*uuid.UUID)(nil), mock.AnythingOfType("[]entity.ChatMessage")).
		Return(&service.AssistantReply{Intent: "search", Content: "Here are some pieces you might like."}, nil)

	fx.chatRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ChatSession")).
		Run(func(ctx context.Context, session *entity.ChatSession) {
			require.Len(t, session.Messages, 2)
			assert.Equal(t, entity.ChatRoleUser, session.Messages[0].Role)
			assert.Equal(t, "show me jewelry", session.Messages[0].Content)
			assert.Equal(t, entity.ChatRoleAssistant, session.Messages[1].Role)
		}).
		Return(nil)

	output, err := fx.service.SendMessage(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-123", output.SessionID)
	assert.Equal(t, "search", output.Intent)
	assert.Equal(t, "Here are some pieces you might like.", output.Reply)
}

func TestChatService_SendMessage_TrimsAndValidates(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	output, err := fx.service.SendMessage(ctx, &usecase.SendChatMessageInput{
		SessionID: "session-123",
		Message:   "   ",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestChatService_SendMessage_ClaimsAnonymousSession(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SendChatMessageInput{
		SessionID: "session-123",
		UserID:    &userID,
		Message:   "where is my order?",
	}

	// The session was started before the shopper logged in.
	stored := &entity.ChatSession{
		ID:        uuid.New(),
		SessionID: "session-123",
		UserID:    nil,
		Messages: []entity.ChatMessage{
			{Role: entity.ChatRoleUser, Content: "hi", CreatedAt: time.Now()},
			{Role: entity.ChatRoleAssistant, Content: "Hello!", CreatedAt: time.Now()},
		},
	}

	fx.chatRepo.EXPECT().FindBySessionID(ctx, "session-123").Return(stored, nil)

	fx.assistant.EXPECT().
		Reply(ctx, "where is my order?", &userID, mock.AnythingOfType("[]entity.ChatMessage")).
		Run(func(ctx context.Context, message string, uid *uuid.UUID, history []entity.ChatMessage) {
			assert.Len(t, history, 2)
		}).
		Return(&service.AssistantReply{Intent: "order_status", Content: "Your order is on its way."}, nil)

	fx.chatRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ChatSession")).
		Run(func(ctx context.Context, session *entity.ChatSession) {
			require.NotNil(t, session.UserID)
			assert.Equal(t, userID, *session.UserID)
			assert.Len(t, session.Messages, 4)
		}).
		Return(nil)

	output, err := fx.service.SendMessage(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "order_status", output.Intent)
}

func TestChatService_SendMessage_WindowLimitsHistory(t *testing.T) {
	chatRepo := mockRepo.NewMockChatRepository(t)
	assistant := mockSvc.NewMockAssistant(t)

	cfg := newTestConfig(0)
	cfg.Assistant = &config.AssistantConfig{ContextWindow: 2}

	svc := NewChatService(ChatServiceParams{
		ChatRepo:  chatRepo,
		Assistant: assistant,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	stored := &entity.ChatSession{
		SessionID: "session-123",
		Messages: []entity.ChatMessage{
			{Role: entity.ChatRoleUser, Content: "one"},
			{Role: entity.ChatRoleAssistant, Content: "two"},
			{Role: entity.ChatRoleUser, Content: "three"},
			{Role: entity.ChatRoleAssistant, Content: "four"},
		},
	}

	chatRepo.EXPECT().FindBySessionID(ctx, "session-123").Return(stored, nil)

	assistant.EXPECT().
		Reply(ctx, "five", (*uuid.UUID)(nil), mock.AnythingOfType("[]entity.ChatMessage")).
		Run(func(ctx context.Context, message string, uid *uuid.UUID, history []entity.ChatMessage) {
			require.Len(t, history, 2)
			assert.Equal(t, "three", history[0].Content)
			assert.Equal(t, "four", history[1].Content)
		}).
		Return(&service.AssistantReply{Intent: "smalltalk", Content: "Noted."}, nil)

	chatRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.ChatSession")).Return(nil)

	output, err := svc.SendMessage(ctx, &usecase.SendChatMessageInput{
		SessionID: "session-123",
		Message:   "five",
	})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestChatService_SendMessage_AssistantFailure(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	fx.chatRepo.EXPECT().
		FindBySessionID(ctx, "session-123").
		Return(nil, repository.ErrChatSessionNotFound)

	fx.assistant.EXPECT().
		Reply(ctx, "hello", (*uuid.UUID)(nil), mock.AnythingOfType("[]entity.ChatMessage")).
		Return(nil, errors.New("rule engine unavailable"))

	output, err := fx.service.SendMessage(ctx, &usecase.SendChatMessageInput{
		SessionID: "session-123",
		Message:   "hello",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestChatService_GetHistory_NotFound(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	fx.chatRepo.EXPECT().
		FindBySessionID(ctx, "missing").
		Return(nil, repository.ErrChatSessionNotFound)

	session, err := fx.service.GetHistory(ctx, "missing")

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestChatService_GetHistory_ReturnsOldestFirst(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	stored := &entity.ChatSession{
		SessionID: "session-123",
		Messages: []entity.ChatMessage{
			{Role: entity.ChatRoleUser, Content: "first"},
			{Role: entity.ChatRoleAssistant, Content: "second"},
		},
	}

	fx.chatRepo.EXPECT().FindBySessionID(ctx, "session-123").Return(stored, nil)

	session, err := fx.service.GetHistory(ctx, "session-123")

	require.NoError(t, err)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, "first", session.Messages[0].Content)
}
