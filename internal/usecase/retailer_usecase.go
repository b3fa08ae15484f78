package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitProductInput defines a retailer's product submission. The product
// enters the review queue unapproved and invisible to the storefront.
type SubmitProductInput struct {
	RetailerID  uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Stock       int
}

// UpdateOwnProductInput defines a retailer's edit of their own product.
// Nil fields are left unchanged. Editing an approved product sends it back
// to the review queue.
type UpdateOwnProductInput struct {
	ProductID   uuid.UUID
	ActorID     uuid.UUID
	ActorRole   entity.Role
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
	Stock       *int
}

// DeleteOwnProductInput identifies a retailer's product to remove.
type DeleteOwnProductInput struct {
	ProductID uuid.UUID
	ActorID   uuid.UUID
	ActorRole entity.Role
}

// VerifyRetailerInput sets a retailer's verification flag. Admins may both
// verify and revoke.
type VerifyRetailerInput struct {
	RetailerID uuid.UUID
	IsVerified bool
}

// ReviewProductInput records an admin's approval decision on a product.
// Approving an already-approved product (or rejecting an already-rejected
// one) is a harmless no-op.
type ReviewProductInput struct {
	ProductID uuid.UUID
	Approved  bool
}

// RetailerUsecase defines retailer self-service operations and the admin
// review operations that gate them.
type RetailerUsecase interface {
	// ListMyProducts returns every product owned by the retailer, newest
	// first, approved or not.
	ListMyProducts(ctx context.Context, retailerID uuid.UUID) ([]*entity.Product, error)

	// SubmitProduct creates an unapproved product for a verified retailer.
	// Unverified retailers are refused.
	SubmitProduct(ctx context.Context, input *SubmitProductInput) (*entity.Product, error)

	// UpdateOwnProduct applies a retailer's edit to their own product.
	// Admins may edit any product through this path without triggering the
	// approval reset.
	UpdateOwnProduct(ctx context.Context, input *UpdateOwnProductInput) (*entity.Product, error)

	// DeleteOwnProduct removes a retailer's own product. Admins may remove
	// any product.
	DeleteOwnProduct(ctx context.Context, input *DeleteOwnProductInput) error

	// ListRetailers returns every retailer account for the admin console,
	// newest first.
	ListRetailers(ctx context.Context) ([]*entity.User, error)

	// VerifyRetailer sets a retailer's verification flag.
	VerifyRetailer(ctx context.Context, input *VerifyRetailerInput) (*entity.User, error)

	// ListPendingProducts returns the admin review queue, newest first.
	ListPendingProducts(ctx context.Context) ([]*entity.Product, error)

	// ReviewProduct approves or rejects a submitted product.
	ReviewProduct(ctx context.Context, input *ReviewProductInput) (*entity.Product, error)
}
