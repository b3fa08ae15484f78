// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// DefaultCancellationReason is recorded when a customer cancels without
// supplying a reason.
const DefaultCancellationReason = "No reason provided"

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Cancellable reports whether a customer may still cancel an order in this
// state. Only Pending and Processing orders can be cancelled; Shipped,
// Delivered and Cancelled orders cannot.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

// Order is a customer's placed purchase. Line items are snapshots taken at
// checkout, not live joins against the catalog: later product edits or
// deletions never rewrite an order's history.
type Order struct {
	ID                 uuid.UUID   // The unique ID for this order.
	UserID             uuid.UUID   // The account that placed the order.
	Items              []OrderItem // Snapshot line items. Always nonempty.
	TotalPrice         float64     // Sum of quantity times unit price across items.
	Status             OrderStatus // Current lifecycle state. New orders start Pending.
	CancelledAt        *time.Time  // When the order was cancelled, if it was.
	CancellationReason string      // Customer-supplied reason, or DefaultCancellationReason.
	CreatedAt          time.Time   // Timestamp of when this order was placed.
	UpdatedAt          time.Time   // Timestamp of the last modification.
}

// OrderItem is one line of an order: a snapshot of the product at checkout.
type OrderItem struct {
	ProductID uuid.UUID // Reference to the catalog product, for navigation only.
	Name      string    // Product name at time of purchase.
	Image     string    // Product image at time of purchase.
	Price     float64   // Unit price at time of purchase.
	Quantity  int       // Units purchased. Always positive.
}

// OwnedBy reports whether the order belongs to the given account.
func (o *Order) OwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// ReadableBy reports whether the given account may view this order:
// its owner or any admin.
func (o *Order) ReadableBy(user *User) bool {
	return o.OwnedBy(user.ID) || user.IsAdmin()
}

// Cancel transitions the order to Cancelled, recording the time and reason.
// Callers must have already checked Status.Cancellable.
func (o *Order) Cancel(at time.Time, reason string) {
	if reason == "" {
		reason = DefaultCancellationReason
	}
	o.Status = OrderStatusCancelled
	o.CancelledAt = &at
	o.CancellationReason = reason
}
