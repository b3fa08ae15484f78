// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the fixed set of product categories in the catalog.
type Category string

const (
	CategoryHandicrafts Category = "Handicrafts"
	CategoryApparel     Category = "Apparel"
	CategoryJewelry     Category = "Jewelry"
	CategoryHomeDecor   Category = "Home Décor"
	CategoryAccessories Category = "Accessories"
)

// Categories lists every valid product category.
func Categories() []Category {
	return []Category{
		CategoryHandicrafts,
		CategoryApparel,
		CategoryJewelry,
		CategoryHomeDecor,
		CategoryAccessories,
	}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHandicrafts, CategoryApparel, CategoryJewelry, CategoryHomeDecor, CategoryAccessories:
		return true
	default:
		return false
	}
}

// Product is a sellable listing in the marketplace, owned either by a
// retailer or by the platform itself (admin-created, RetailerID nil).
type Product struct {
	ID          uuid.UUID  // The unique ID for this product.
	Name        string     // Display name of the product.
	Description string     // Free-form product description.
	Price       float64    // Unit price. Never negative.
	Category    Category   // One of the fixed catalog categories.
	Image       string     // Reference (URL or path) to the product image.
	Stock       int        // Units in stock. Never negative, defaults to zero.
	Rating      float64    // Denormalized average rating, maintained elsewhere.
	NumReviews  int        // Denormalized review count, maintained elsewhere.
	Featured    bool       // Whether the product is highlighted on the storefront.
	Approved    bool       // Public-visibility flag. Only approved products reach the storefront.
	RetailerID  *uuid.UUID // Owning retailer account. Nil means admin-owned, auto-approved.
	CreatedAt   time.Time  // Timestamp of when this product was created.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}

// OwnedBy reports whether the product belongs to the given retailer account.
// Admin-owned products (RetailerID nil) belong to no retailer.
func (p *Product) OwnedBy(userID uuid.UUID) bool {
	return p.RetailerID != nil && *p.RetailerID == userID
}
