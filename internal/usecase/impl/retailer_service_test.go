package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// retailerServiceFixtures holds all test dependencies for retailer service tests.
type retailerServiceFixtures struct {
	service     usecase.RetailerUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestRetailerService(t *testing.T) retailerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewRetailerService(RetailerServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return retailerServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func verifiedRetailer(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:   id,
		Role: entity.RoleRetailer,
		RetailerProfile: &entity.RetailerProfile{
			UserID:     id,
			StoreName:  "Crafts & Co",
			IsVerified: true,
		},
	}
}

func TestRetailerService_SubmitProduct_StartsUnapproved(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	retailerID := uuid.New()
	input := &usecase.SubmitProductInput{
		RetailerID:  retailerID,
		Name:        "Woven Basket",
		Description: "Handwoven reed basket",
		Price:       25,
		Category:    "Handicrafts",
		Stock:       5,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, retailerID).
				Return(verifiedRetailer(retailerID), nil)

			mockProductRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					product.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.SubmitProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.False(t, product.Approved)
	assert.False(t, product.Featured)
	require.NotNil(t, product.RetailerID)
	assert.Equal(t, retailerID, *product.RetailerID)
}

func TestRetailerService_SubmitProduct_UnverifiedRetailer(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	retailerID := uuid.New()
	input := &usecase.SubmitProductInput{
		RetailerID: retailerID,
		Name:       "Woven Basket",
		Price:      25,
		Category:   "Handicrafts",
	}

	unverified := verifiedRetailer(retailerID)
	unverified.RetailerProfile.IsVerified = false

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, retailerID).
				Return(unverified, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrRetailerNotVerified, "submit product failed"))

	product, err := fx.service.SubmitProduct(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrRetailerNotVerified))
}

func TestRetailerService_SubmitProduct_InvalidCategory(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	input := &usecase.SubmitProductInput{
		RetailerID: uuid.New(),
		Name:       "Woven Basket",
		Price:      25,
		Category:   "Gadgets",
	}

	product, err := fx.service.SubmitProduct(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategory))
}

func TestRetailerService_UpdateOwnProduct_ResetsApproval(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	retailerID := uuid.New()
	productID := uuid.New()
	stored := &entity.Product{
		ID:         productID,
		Name:       "Woven Basket",
		Category:   entity.CategoryHandicrafts,
		Price:      25,
		Approved:   true,
		RetailerID: &retailerID,
	}

	newPrice := 30.0
	input := &usecase.UpdateOwnProductInput{
		ProductID: productID,
		ActorID:   retailerID,
		ActorRole: entity.RoleRetailer,
		Price:     &newPrice,
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, 30.0, product.Price)
			// A retailer edit sends an approved product back to review.
			assert.False(t, product.Approved)
		}).
		Return(nil)

	product, err := fx.service.UpdateOwnProduct(ctx, input)

	require.NoError(t, err)
	assert.False(t, product.Approved)
}

func TestRetailerService_UpdateOwnProduct_AdminKeepsApproval(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	retailerID := uuid.New()
	adminID := uuid.New()
	productID := uuid.New()
	stored := &entity.Product{
		ID:         productID,
		Name:       "Woven Basket",
		Category:   entity.CategoryHandicrafts,
		Approved:   true,
		RetailerID: &retailerID,
	}

	newName := "Woven Basket (Large)"
	input := &usecase.UpdateOwnProductInput{
		ProductID: productID,
		ActorID:   adminID,
		ActorRole: entity.RoleAdmin,
		Name:      &newName,
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, newName, product.Name)
			assert.True(t, product.Approved)
		}).
		Return(nil)

	product, err := fx.service.UpdateOwnProduct(ctx, input)

	require.NoError(t, err)
	assert.True(t, product.Approved)
}

func TestRetailerService_UpdateOwnProduct_NotOwner(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	otherID := uuid.New()
	productID := uuid.New()
	stored := &entity.Product{
		ID:         productID,
		Category:   entity.CategoryHandicrafts,
		RetailerID: &ownerID,
	}

	input := &usecase.UpdateOwnProductInput{
		ProductID: productID,
		ActorID:   otherID,
		ActorRole: entity.RoleRetailer,
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)

	product, err := fx.service.UpdateOwnProduct(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestRetailerService_DeleteOwnProduct_NotOwner(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()
	stored := &entity.Product{
		ID:         productID,
		RetailerID: &ownerID,
	}

	input := &usecase.DeleteOwnProductInput{
		ProductID: productID,
		ActorID:   uuid.New(),
		ActorRole: entity.RoleRetailer,
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)

	err := fx.service.DeleteOwnProduct(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestRetailerService_VerifyRetailer_Grant(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	retailerID := uuid.New()
	stored := verifiedRetailer(retailerID)
	stored.RetailerProfile.IsVerified = false

	input := &usecase.VerifyRetailerInput{RetailerID: retailerID, IsVerified: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, retailerID).Return(stored, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.True(t, user.RetailerProfile.IsVerified)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	retailer, err := fx.service.VerifyRetailer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, retailer)
	assert.True(t, retailer.RetailerProfile.IsVerified)
}

func TestRetailerService_VerifyRetailer_NotARetailer(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Role: entity.RoleCustomer}

	input := &usecase.VerifyRetailerInput{RetailerID: userID, IsVerified: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrRetailerNotFound, "account is not a retailer"))

	retailer, err := fx.service.VerifyRetailer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, retailer)
	assert.True(t, errors.Is(err, domainerrors.ErrRetailerNotFound))
}

func TestRetailerService_ReviewProduct_Approve(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	retailerID := uuid.New()
	productID := uuid.New()
	stored := &entity.Product{
		ID:         productID,
		Approved:   false,
		RetailerID: &retailerID,
	}

	input := &usecase.ReviewProductInput{ProductID: productID, Approved: true}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.True(t, product.Approved)
		}).
		Return(nil)

	product, err := fx.service.ReviewProduct(ctx, input)

	require.NoError(t, err)
	assert.True(t, product.Approved)
}

func TestRetailerService_ReviewProduct_ApproveTwiceIsIdempotent(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, Approved: true}

	input := &usecase.ReviewProductInput{ProductID: productID, Approved: true}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)
	fx.productRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.ReviewProduct(ctx, input)

	require.NoError(t, err)
	assert.True(t, product.Approved)
}

func TestRetailerService_ListPendingProducts(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	pending := []*entity.Product{
		{ID: uuid.New(), Approved: false},
		{ID: uuid.New(), Approved: false},
	}

	fx.productRepo.EXPECT().ListPending(ctx).Return(pending, nil)

	products, err := fx.service.ListPendingProducts(ctx)

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestRetailerService_ListMyProducts(t *testing.T) {
	fx := createTestRetailerService(t)

	ctx := context.Background()
	retailerID := uuid.New()
	owned := []*entity.Product{
		{ID: uuid.New(), Approved: true, RetailerID: &retailerID},
		{ID: uuid.New(), Approved: false, RetailerID: &retailerID},
	}

	fx.productRepo.EXPECT().ListByRetailer(ctx, retailerID).Return(owned, nil)

	products, err := fx.service.ListMyProducts(ctx, retailerID)

	require.NoError(t, err)
	// The retailer sees their own unapproved products too.
	assert.Len(t, products, 2)
}
