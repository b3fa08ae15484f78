package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput adds a product to an account's cart. The snapshot fields
// are resolved from the catalog, not trusted from the client.
type AddCartItemInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// RemoveCartItemInput drops a product line from an account's cart.
type RemoveCartItemInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

// SetCartQuantityInput replaces the quantity of a cart line. Zero or less
// removes the line.
type SetCartQuantityInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// CartUsecase defines the shopping cart operations. Every mutation is a
// typed action run through the cart reducer, then persisted whole.
type CartUsecase interface {
	// GetCart returns the account's cart. Accounts without a stored cart
	// get an empty one.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem adds a catalog product to the cart, merging quantities when
	// the product is already present.
	AddItem(ctx context.Context, input *AddCartItemInput) (*entity.Cart, error)

	// RemoveItem drops a product line. Removing an absent product is a no-op.
	RemoveItem(ctx context.Context, input *RemoveCartItemInput) (*entity.Cart, error)

	// SetQuantity replaces a line's quantity.
	SetQuantity(ctx context.Context, input *SetCartQuantityInput) (*entity.Cart, error)

	// ClearCart empties the account's cart.
	ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}
