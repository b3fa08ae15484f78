package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'customer'"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	RetailerProfile *RetailerProfileModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RetailerProfileModel mirrors the 'retailer_profiles' table. UserID references users.id (UUID).
type RetailerProfileModel struct {
	UserID           uuid.UUID `gorm:"primaryKey"`
	StoreName        string    `gorm:"type:varchar(100);not null"`
	StoreDescription string    `gorm:"type:text"`
	Phone            string    `gorm:"type:varchar(20)"`
	Street           string    `gorm:"type:varchar(255)"`
	City             string    `gorm:"type:varchar(100)"`
	State            string    `gorm:"type:varchar(100)"`
	Pincode          string    `gorm:"type:varchar(20)"`
	BusinessLicense  string    `gorm:"type:varchar(255);not null;unique"`
	IsVerified       bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RetailerProfileModel) TableName() string {
	return "retailer_profiles"
}
