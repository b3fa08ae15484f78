package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository defines the persistence port for shopping carts.
// The cart itself is computed by the pure reducer in the cart package;
// this interface only loads and stores the resulting state.
type CartRepository interface {
	// FindByUserID retrieves the cart for a user. A user with no stored
	// cart receives an empty cart, not an error.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Save persists the full cart state for a user, replacing any
	// previously stored items.
	Save(ctx context.Context, cart *entity.Cart) error

	// DeleteByUserID removes the stored cart for a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
