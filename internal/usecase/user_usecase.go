// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterCustomerInput defines the data required to register a new customer.
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterRetailerInput defines the data required to register a new retailer.
// Retailers start unverified and must be approved by an admin before they
// can submit products.
type RegisterRetailerInput struct {
	Name             string
	Email            string
	Password         string
	StoreName        string
	StoreDescription string
	Phone            string
	Address          entity.Address
	BusinessLicense  string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to log out a single session.
type LogoutInput struct {
	RefreshToken string
}

// UpdateRetailerProfileInput updates a retailer's own store profile.
// Nil fields are left unchanged.
type UpdateRetailerProfileInput struct {
	UserID           uuid.UUID
	Name             *string
	StoreName        *string
	StoreDescription *string
	Phone            *string
	Address          *entity.Address
	Password         *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the newly issued access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*RegisterOutput, error)
	RegisterRetailer(ctx context.Context, input *RegisterRetailerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateRetailerProfile(ctx context.Context, input *UpdateRetailerProfileInput) (*entity.User, error)
}
