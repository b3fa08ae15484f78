// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is an account's shopping cart. It is a pure value: all mutation
// happens through the cart reducer, and the resulting state is persisted
// as a whole.
type Cart struct {
	UserID    uuid.UUID  // The owning account.
	Items     []CartItem // Current line items, insertion order preserved.
	UpdatedAt time.Time
}

// CartItem is one product line in a cart. Name, image and price are
// snapshots of the product at the time it was added.
type CartItem struct {
	ProductID uuid.UUID
	Name      string
	Image     string
	Price     float64
	Quantity  int
}

// Total returns the cart's total price.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

// Find returns the index of the item for the given product, or -1.
func (c Cart) Find(productID uuid.UUID) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}
