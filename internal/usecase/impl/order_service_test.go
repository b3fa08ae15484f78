package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service        usecase.OrderUsecase
	txManager      *mockRepo.MockTransactionManager
	orderRepo      *mockRepo.MockOrderRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:      txManager,
		OrderRepo:      orderRepo,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:        service,
		txManager:      txManager,
		orderRepo:      orderRepo,
		eventPublisher: eventPublisher,
	}
}

func TestOrderService_CreateOrder_StartsPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateOrderInput{
		UserID: userID,
		Items: []usecase.OrderItemInput{
			{ProductID: uuid.New(), Name: "Woven Basket", Price: 25, Quantity: 2},
			{ProductID: uuid.New(), Name: "Brass Lamp", Price: 49.9, Quantity: 1},
		},
		TotalPrice: 99.9,
	}

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, "Pending", event.Status)
			assert.Equal(t, 99.9, event.TotalPrice)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 99.9, order.TotalPrice)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{UserID: uuid.New()}

	order, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderEmpty))
}

func TestOrderService_CreateOrder_NonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items: []usecase.OrderItemInput{
			{ProductID: uuid.New(), Name: "Woven Basket", Price: 25, Quantity: 0},
		},
	}

	order, err := fx.service.CreateOrder(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CreateOrder_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items: []usecase.OrderItemInput{
			{ProductID: uuid.New(), Name: "Woven Basket", Price: 25, Quantity: 1},
		},
		TotalPrice: 25,
	}

	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	order, err := fx.service.CreateOrder(ctx, input)

	// The order is committed; the event stream catches up later.
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_GetOrder_Owner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)

	order, err := fx.service.GetOrder(ctx, &usecase.GetOrderInput{
		OrderID:   orderID,
		ActorID:   userID,
		ActorRole: entity.RoleCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_GetOrder_AdminCanReadAny(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusShipped}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)

	order, err := fx.service.GetOrder(ctx, &usecase.GetOrderInput{
		OrderID:   orderID,
		ActorID:   uuid.New(),
		ActorRole: entity.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_GetOrder_StrangerIsRefused(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)

	order, err := fx.service.GetOrder(ctx, &usecase.GetOrderInput{
		OrderID:   orderID,
		ActorID:   uuid.New(),
		ActorRole: entity.RoleCustomer,
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			assert.Equal(t, entity.OrderStatusShipped, order.Status)
		}).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		Status:  "Shipped",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestOrderService_UpdateOrderStatus_CanReopenCancelled(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	cancelledAt := time.Now()
	stored := &entity.Order{
		ID:          orderID,
		UserID:      uuid.New(),
		Status:      entity.OrderStatusCancelled,
		CancelledAt: &cancelledAt,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		Status:  "Processing",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	order, err := fx.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID: uuid.New(),
		Status:  "Teleported",
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
}

func TestOrderService_CancelOrder_Pending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusPending}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)
			mockOrderRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, entity.OrderStatusCancelled, order.Status)
					assert.NotNil(t, order.CancelledAt)
					assert.Equal(t, "changed my mind", order.CancellationReason)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, "Cancelled", event.Status)
			assert.Equal(t, "changed my mind", event.Reason)
		}).
		Return(nil)

	order, err := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{
		OrderID: orderID,
		ActorID: userID,
		Reason:  "changed my mind",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_CancelOrder_DefaultReason(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusProcessing}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)
			mockOrderRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, entity.DefaultCancellationReason, order.CancellationReason)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{
		OrderID: orderID,
		ActorID: userID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCancellationReason, order.CancellationReason)
}

func TestOrderService_CancelOrder_ShippedIsRefused(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusShipped}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOrderNotCancellable, "cannot cancel order with status Shipped"))

	order, err := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{
		OrderID: orderID,
		ActorID: userID,
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotCancellable))
}

func TestOrderService_CancelOrder_StrangerIsRefused(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to account"))

	order, err := fx.service.CancelOrder(ctx, &usecase.CancelOrderInput{
		OrderID: orderID,
		ActorID: uuid.New(),
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	// Even admins cannot cancel through the customer path.
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
}

func TestOrderService_ListMyOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.Order{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	fx.orderRepo.EXPECT().ListByUser(ctx, userID).Return(stored, nil)

	orders, err := fx.service.ListMyOrders(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
