package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListProductsInput narrows the public storefront listing. Only approved
// products are ever returned, regardless of the filter.
type ListProductsInput struct {
	Category     string
	MinPrice     *float64
	MaxPrice     *float64
	FeaturedOnly bool
	Search       string
}

// CreateProductInput defines the data for an admin-created platform product.
// Admin products go live immediately without review.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Stock       int
	Featured    bool
}

// UpdateProductInput defines an admin edit of any product. Nil fields are
// left unchanged; admin edits never reset a product's approval.
type UpdateProductInput struct {
	ProductID   uuid.UUID
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
	Stock       *int
	Featured    *bool
}

// CatalogUsecase defines the storefront and admin catalog operations.
type CatalogUsecase interface {
	// ListProducts returns the approved products matching the filter, newest first.
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetProductQR renders a PNG QR code for sharing a product.
	GetProductQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// CreateProduct creates an admin-owned product, approved on arrival.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies an admin edit to any product.
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog. Past order line
	// items keep their snapshots.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// SearchFilter converts the listing input into a repository filter.
func (in *ListProductsInput) SearchFilter() repository.ProductFilter {
	return repository.ProductFilter{
		Category:     entity.Category(in.Category),
		MinPrice:     in.MinPrice,
		MaxPrice:     in.MaxPrice,
		FeaturedOnly: in.FeaturedOnly,
		Search:       in.Search,
		ApprovedOnly: true,
	}
}
