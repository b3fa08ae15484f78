package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a catalog query. Zero values mean "no constraint".
type ProductFilter struct {
	Category     entity.Category // Restrict to one category.
	MinPrice     *float64        // Inclusive lower price bound.
	MaxPrice     *float64        // Inclusive upper price bound.
	FeaturedOnly bool            // Restrict to featured products.
	Search       string          // Case-insensitive substring match on name or description.
	ApprovedOnly bool            // Restrict to publicly visible products.
}

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Search returns products matching the filter, newest first.
	Search(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// ListByRetailer returns every product owned by the given retailer,
	// newest first and regardless of approval state.
	ListByRetailer(ctx context.Context, retailerID uuid.UUID) ([]*entity.Product, error)

	// ListPending returns every unapproved product, newest first, for the
	// admin review queue.
	ListPending(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product in place.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Order line-item snapshots are unaffected.
	Delete(ctx context.Context, id uuid.UUID) error
}
