// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single account by its email address.
	// Email comparison is case-insensitive.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindCredentials returns the stored password hash for an email, along
	// with the account it belongs to.
	FindCredentials(ctx context.Context, email string) (*entity.User, string, error)

	// Create persists a new account, with its retailer profile when present.
	// The supplied password hash is stored alongside the account record.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// Update modifies an existing account and its retailer profile.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash for an account.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// AcquireSessionMutex locks the account row for the rest of the
	// current transaction, serializing concurrent session-limit checks.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error

	// ListRetailers returns every retailer account, newest first.
	ListRetailers(ctx context.Context) ([]*entity.User, error)
}
