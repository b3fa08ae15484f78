package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a new Pending order from checkout snapshots.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("userID", input.UserID), slog.Int("items", len(input.Items)))

	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrOrderEmpty, "create order failed")
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order item quantity must be positive")
		}
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := &entity.Order{
		UserID:     input.UserID,
		Items:      items,
		TotalPrice: input.TotalPrice,
		Status:     entity.OrderStatusPending,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.publishOrderEvent(ctx, order, "")
	srv.log(ctx).Debug("Order created", slog.Any("orderID", order.ID))

	return order, nil
}

// GetOrder returns an order to its owner or to an admin.
func (srv *orderService) GetOrder(ctx context.Context, input *usecase.GetOrderInput) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if !order.OwnedBy(input.ActorID) && input.ActorRole != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to account")
	}

	return order, nil
}

// ListMyOrders returns the account's own orders, newest first.
func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListAllOrders returns every order for the admin console, newest first.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list all orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order to the given status. Admins may set any
// valid status, including reopening a cancelled order.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	srv.log(ctx).Info("Updating order status", slog.Any("orderID", input.OrderID), slog.String("status", input.Status))

	status := entity.OrderStatus(input.Status)
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, "update order status failed")
	}

	order, err := srv.loadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	order.Status = status

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to update order status", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.publishOrderEvent(ctx, order, "")

	return order, nil
}

// CancelOrder cancels the owner's order. Only Pending and Processing orders
// can be cancelled; anything already shipped keeps moving.
func (srv *orderService) CancelOrder(ctx context.Context, input *usecase.CancelOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Cancelling order", slog.Any("orderID", input.OrderID), slog.Any("actorID", input.ActorID))

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		found, findErr := orderRepo.FindByID(ctx, input.OrderID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "cancel order failed")
			}

			return errors.Wrap(findErr, "failed to find order by id")
		}

		if !found.OwnedBy(input.ActorID) {
			return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to account")
		}
		if !found.Status.Cancellable() {
			return errors.Wrap(
				domainerrors.ErrOrderNotCancellable,
				fmt.Sprintf("cannot cancel order with status %s", found.Status),
			)
		}

		found.Cancel(time.Now(), input.Reason)

		if updateErr := orderRepo.Update(ctx, found); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update cancelled order")
		}

		order = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to cancel order", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order cancellation transaction")
	}

	srv.publishOrderEvent(ctx, order, order.CancellationReason)

	return order, nil
}

func (srv *orderService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return order, nil
}

// publishOrderEvent emits a lifecycle event for async consumers. Publish
// failures are logged and swallowed: the order is already committed and
// consumers reconcile from the database.
func (srv *orderService) publishOrderEvent(ctx context.Context, order *entity.Order, reason string) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		Status:     order.Status.String(),
		TotalPrice: order.TotalPrice,
		Reason:     reason,
		OccurredAt: time.Now(),
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.Any("orderID", order.ID),
			slog.String("status", order.Status.String()),
			slog.Any("error", err))
	}
}
