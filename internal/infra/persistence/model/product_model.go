package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"not null"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	Image       string    `gorm:"type:varchar(512);not null"`
	Stock       int       `gorm:"not null;default:0"`
	Rating      float64   `gorm:"not null;default:0"`
	NumReviews  int       `gorm:"not null;default:0"`
	Featured    bool      `gorm:"not null;default:false"`
	Approved    bool      `gorm:"not null;default:false;index"`
	RetailerID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
