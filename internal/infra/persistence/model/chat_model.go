package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatSessionModel mirrors the 'chat_sessions' table. SessionID is the
// client-supplied identifier; UserID is set only for authenticated chats.
type ChatSessionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SessionID string     `gorm:"type:varchar(100);unique;not null"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Messages []ChatMessageModel `gorm:"foreignKey:SessionID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (ChatSessionModel) TableName() string {
	return "chat_sessions"
}

// ChatMessageModel mirrors the 'chat_messages' table.
type ChatMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
