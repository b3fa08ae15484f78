package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/cart"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. Every mutation loads
// the stored state, runs one typed action through the cart reducer, and
// persists the result inside a single transaction.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the account's cart, empty when nothing is stored.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	stored, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load cart", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return stored, nil
}

// AddItem adds a catalog product to the cart. The line's snapshot fields
// come from the catalog, never from the client, and only approved products
// can be added.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	srv.log(ctx).Debug("Adding cart item", slog.Any("userID", input.UserID), slog.Any("productID", input.ProductID), slog.Int("quantity", input.Quantity))

	if input.Quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cart quantity must be positive")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "add cart item failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}
	if !product.Approved {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product is not available")
	}

	return srv.applyAction(ctx, input.UserID, cart.AddItem{Item: entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  input.Quantity,
	}})
}

// RemoveItem drops a product line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, input *usecase.RemoveCartItemInput) (*entity.Cart, error) {
	srv.log(ctx).Debug("Removing cart item", slog.Any("userID", input.UserID), slog.Any("productID", input.ProductID))

	return srv.applyAction(ctx, input.UserID, cart.RemoveItem{ProductID: input.ProductID})
}

// SetQuantity replaces a line's quantity. Zero or less removes the line.
func (srv *cartService) SetQuantity(ctx context.Context, input *usecase.SetCartQuantityInput) (*entity.Cart, error) {
	srv.log(ctx).Debug("Setting cart quantity", slog.Any("userID", input.UserID), slog.Any("productID", input.ProductID), slog.Int("quantity", input.Quantity))

	return srv.applyAction(ctx, input.UserID, cart.SetQuantity{ProductID: input.ProductID, Quantity: input.Quantity})
}

// ClearCart empties the account's cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	srv.log(ctx).Debug("Clearing cart", slog.Any("userID", userID))

	return srv.applyAction(ctx, userID, cart.Clear{})
}

// applyAction runs one reducer action against the stored cart state and
// persists the result. Load, reduce and save share a transaction so
// concurrent mutations of the same cart serialize cleanly.
func (srv *cartService) applyAction(ctx context.Context, userID uuid.UUID, action cart.Action) (*entity.Cart, error) {
	var next entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		stored, findErr := cartRepo.FindByUserID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load cart")
		}

		next = cart.Reduce(*stored, action)

		if saveErr := cartRepo.Save(ctx, &next); saveErr != nil {
			return errors.Wrap(saveErr, "failed to save cart")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute cart transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cart transaction")
	}

	return &next, nil
}
