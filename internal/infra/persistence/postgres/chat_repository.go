package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// FindBySessionID retrieves a chat session and its messages, oldest message first.
func (repo *chatRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.ChatSession, error) {
	var sessionM model.ChatSessionModel

	if err := repo.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("session_id = ?", sessionID).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat session")
	}

	return toChatSessionDomain(&sessionM), nil
}

// Save persists a chat session. New sessions are created in full; existing
// sessions only append messages not yet stored.
func (repo *chatRepository) Save(ctx context.Context, session *entity.ChatSession) error {
	var existing model.ChatSessionModel

	err := repo.db.WithContext(ctx).
		Where("session_id = ?", session.SessionID).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(err, "failed to look up chat session")
		}

		sessionM := fromChatSessionDomain(session)
		if createErr := repo.db.WithContext(ctx).Create(sessionM).Error; createErr != nil {
			return domainerrors.NewDatabaseExecuteError(createErr, "failed to create chat session")
		}
		session.ID = sessionM.ID
		session.CreatedAt = sessionM.CreatedAt
		session.UpdatedAt = sessionM.UpdatedAt

		return nil
	}

	var storedCount int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ChatMessageModel{}).
		Where("session_id = ?", existing.ID).
		Count(&storedCount).Error; err != nil {
		return errors.Wrap(err, "failed to count chat messages")
	}

	if int(storedCount) < len(session.Messages) {
		newMessages := make([]model.ChatMessageModel, 0, len(session.Messages)-int(storedCount))
		for _, msg := range session.Messages[storedCount:] {
			newMessages = append(newMessages, model.ChatMessageModel{
				SessionID: existing.ID,
				Role:      string(msg.Role),
				Content:   msg.Content,
				CreatedAt: msg.CreatedAt,
			})
		}
		if err := repo.db.WithContext(ctx).Create(&newMessages).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to append chat messages")
		}
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ChatSessionModel{}).
		Where("id = ?", existing.ID).
		Update("user_id", session.UserID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update chat session")
	}

	session.ID = existing.ID

	return nil
}

// --- Mapper Functions ---

// toChatSessionDomain converts a GORM ChatSessionModel to a domain ChatSession entity.
func toChatSessionDomain(data *model.ChatSessionModel) *entity.ChatSession {
	if data == nil {
		return nil
	}

	messages := make([]entity.ChatMessage, 0, len(data.Messages))
	for _, msgM := range data.Messages {
		messages = append(messages, entity.ChatMessage{
			Role:      entity.ChatRole(msgM.Role),
			Content:   msgM.Content,
			CreatedAt: msgM.CreatedAt,
		})
	}

	return &entity.ChatSession{
		ID:        data.ID,
		SessionID: data.SessionID,
		UserID:    data.UserID,
		Messages:  messages,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromChatSessionDomain converts a domain ChatSession entity to a GORM ChatSessionModel.
func fromChatSessionDomain(data *entity.ChatSession) *model.ChatSessionModel {
	if data == nil {
		return nil
	}

	messages := make([]model.ChatMessageModel, 0, len(data.Messages))
	for _, msg := range data.Messages {
		messages = append(messages, model.ChatMessageModel{
			Role:      string(msg.Role),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return &model.ChatSessionModel{
		ID:        data.ID,
		SessionID: data.SessionID,
		UserID:    data.UserID,
		Messages:  messages,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
