package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestOrderStatusIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status OrderStatus
		valid  bool
	}{
		{name: "pending", status: OrderStatusPending, valid: true},
		{name: "processing", status: OrderStatusProcessing, valid: true},
		{name: "shipped", status: OrderStatusShipped, valid: true},
		{name: "delivered", status: OrderStatusDelivered, valid: true},
		{name: "cancelled", status: OrderStatusCancelled, valid: true},
		{name: "unknown", status: OrderStatus("Teleported"), valid: false},
		{name: "wrong case", status: OrderStatus("pending"), valid: false},
		{name: "empty", status: OrderStatus(""), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.status.IsValid(); got != tt.valid {
				t.Fatalf("IsValid(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestOrderStatusCancellable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status      OrderStatus
		cancellable bool
	}{
		{status: OrderStatusPending, cancellable: true},
		{status: OrderStatusProcessing, cancellable: true},
		{status: OrderStatusShipped, cancellable: false},
		{status: OrderStatusDelivered, cancellable: false},
		{status: OrderStatusCancelled, cancellable: false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.status.Cancellable(); got != tt.cancellable {
				t.Fatalf("Cancellable(%q) = %v, want %v", tt.status, got, tt.cancellable)
			}
		})
	}
}

func TestOrderCancel(t *testing.T) {
	t.Parallel()

	now := time.Now()
	order := &Order{Status: OrderStatusPending}

	order.Cancel(now, "changed my mind")

	if order.Status != OrderStatusCancelled {
		t.Fatalf("Status = %q, want %q", order.Status, OrderStatusCancelled)
	}
	if order.CancelledAt == nil || !order.CancelledAt.Equal(now) {
		t.Fatalf("CancelledAt = %v, want %v", order.CancelledAt, now)
	}
	if order.CancellationReason != "changed my mind" {
		t.Fatalf("CancellationReason = %q", order.CancellationReason)
	}
}

func TestOrderCancelRecordsDefaultReason(t *testing.T) {
	t.Parallel()

	order := &Order{Status: OrderStatusProcessing}
	order.Cancel(time.Now(), "")

	if order.CancellationReason != DefaultCancellationReason {
		t.Fatalf("CancellationReason = %q, want %q", order.CancellationReason, DefaultCancellationReason)
	}
}

func TestOrderReadableBy(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	stranger := uuid.New()
	order := &Order{UserID: owner}

	if !order.ReadableBy(&User{ID: owner, Role: RoleCustomer}) {
		t.Fatal("owner should read their own order")
	}
	if !order.ReadableBy(&User{ID: stranger, Role: RoleAdmin}) {
		t.Fatal("admin should read any order")
	}
	if order.ReadableBy(&User{ID: stranger, Role: RoleCustomer}) {
		t.Fatal("stranger should not read another account's order")
	}
}
