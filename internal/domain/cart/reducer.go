// Package cart formalizes the shopping cart as an explicit state container:
// typed actions applied by a pure reducer, with persistence handled by a
// separate port. Given the same state and action, Reduce always produces
// the same next state.
package cart

import (
	"slices"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Action is a typed mutation of cart state.
type Action interface {
	isCartAction()
}

// AddItem puts a product into the cart. Adding a product already present
// merges quantities instead of duplicating the line.
type AddItem struct {
	Item entity.CartItem
}

// RemoveItem drops the line for the given product. Removing an absent
// product is a no-op.
type RemoveItem struct {
	ProductID uuid.UUID
}

// SetQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line. Absent products are a no-op.
type SetQuantity struct {
	ProductID uuid.UUID
	Quantity  int
}

// Clear empties the cart.
type Clear struct{}

func (AddItem) isCartAction()     {}
func (RemoveItem) isCartAction()  {}
func (SetQuantity) isCartAction() {}
func (Clear) isCartAction()       {}

// Reduce applies an action to a cart state and returns the next state.
// The input state is never mutated.
func Reduce(state entity.Cart, action Action) entity.Cart {
	next := state
	next.Items = slices.Clone(state.Items)

	switch act := action.(type) {
	case AddItem:
		if act.Item.Quantity <= 0 {
			return next
		}
		if i := next.Find(act.Item.ProductID); i >= 0 {
			next.Items[i].Quantity += act.Item.Quantity

			return next
		}
		next.Items = append(next.Items, act.Item)

	case RemoveItem:
		if i := next.Find(act.ProductID); i >= 0 {
			next.Items = slices.Delete(next.Items, i, i+1)
		}

	case SetQuantity:
		i := next.Find(act.ProductID)
		if i < 0 {
			return next
		}
		if act.Quantity <= 0 {
			next.Items = slices.Delete(next.Items, i, i+1)

			return next
		}
		next.Items[i].Quantity = act.Quantity

	case Clear:
		next.Items = nil
	}

	return next
}
