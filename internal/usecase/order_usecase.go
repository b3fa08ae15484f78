package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one checkout line. Name, image and price are snapshots
// taken by the client at checkout time.
type OrderItemInput struct {
	ProductID uuid.UUID
	Name      string
	Image     string
	Price     float64
	Quantity  int
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	UserID     uuid.UUID
	Items      []OrderItemInput
	TotalPrice float64
}

// GetOrderInput identifies an order and the account asking to see it.
type GetOrderInput struct {
	OrderID   uuid.UUID
	ActorID   uuid.UUID
	ActorRole entity.Role
}

// UpdateOrderStatusInput sets an order's status. Admin only; the admin may
// move an order to any valid status.
type UpdateOrderStatusInput struct {
	OrderID uuid.UUID
	Status  string
}

// CancelOrderInput defines a customer's cancellation request.
type CancelOrderInput struct {
	OrderID uuid.UUID
	ActorID uuid.UUID
	Reason  string
}

// OrderUsecase defines the order lifecycle operations.
type OrderUsecase interface {
	// CreateOrder places a new Pending order from checkout snapshots.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder returns an order to its owner or to an admin.
	GetOrder(ctx context.Context, input *GetOrderInput) (*entity.Order, error)

	// ListMyOrders returns the account's own orders, newest first.
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAllOrders returns every order for the admin console, newest first.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order to the given status.
	UpdateOrderStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)

	// CancelOrder cancels the owner's Pending or Processing order,
	// recording when and why.
	CancelOrder(ctx context.Context, input *CancelOrderInput) (*entity.Order, error)
}
