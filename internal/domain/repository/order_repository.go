package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns every order placed by the given account, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAll returns every order in the system, newest first.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an order's mutable fields (status, cancellation data).
	// Line items are immutable snapshots and are never rewritten.
	Update(ctx context.Context, order *entity.Order) error
}
