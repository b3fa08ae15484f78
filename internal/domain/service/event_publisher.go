package service

import (
	"context"
	"time"
)

// OrderEvent represents an order lifecycle change published for async consumers
// (fulfilment workers, notification fan-out).
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
