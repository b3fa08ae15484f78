package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retailerService implements the RetailerUsecase interface.
type retailerService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// RetailerServiceParams holds dependencies for RetailerService, injected by Fx.
type RetailerServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewRetailerService is the constructor for retailerService.
func NewRetailerService(params RetailerServiceParams) usecase.RetailerUsecase {
	return &retailerService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *retailerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMyProducts returns every product owned by the retailer, approved or
// not, newest first.
func (srv *retailerService) ListMyProducts(ctx context.Context, retailerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByRetailer(ctx, retailerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list retailer products", slog.Any("retailerID", retailerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list retailer products")
	}

	return products, nil
}

// SubmitProduct creates an unapproved product for a verified retailer.
// The submission enters the admin review queue and stays off the
// storefront until approved.
func (srv *retailerService) SubmitProduct(ctx context.Context, input *usecase.SubmitProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Submitting product for review", slog.Any("retailerID", input.RetailerID), slog.String("name", input.Name))

	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCategory, "submit product failed")
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		productRepo := repoFactory.NewProductRepository()

		// Verification is checked against the database, not the token:
		// an admin may have revoked it since the retailer logged in.
		retailer, findErr := userRepo.FindByID(ctx, input.RetailerID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRetailerNotFound, "submit product failed")
			}

			return errors.Wrap(findErr, "failed to find retailer")
		}
		if !retailer.IsVerifiedRetailer() {
			return errors.Wrap(domainerrors.ErrRetailerNotVerified, "submit product failed")
		}

		retailerID := input.RetailerID
		product = &entity.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Category:    category,
			Image:       input.Image,
			Stock:       input.Stock,
			Featured:    false,
			Approved:    false,
			RetailerID:  &retailerID,
		}

		if createErr := productRepo.Create(ctx, product); createErr != nil {
			return errors.Wrap(createErr, "failed to create product submission")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute product submission transaction", slog.Any("retailerID", input.RetailerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product submission transaction")
	}

	srv.log(ctx).Debug("Product submitted for review", slog.Any("productID", product.ID))

	return product, nil
}

// UpdateOwnProduct applies a retailer's edit to their own product. Editing
// an approved product sends it back to the review queue; admin edits
// through this path never do.
func (srv *retailerService) UpdateOwnProduct(ctx context.Context, input *usecase.UpdateOwnProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating retailer product", slog.Any("productID", input.ProductID), slog.Any("actorID", input.ActorID))

	product, err := srv.loadOwnedProduct(ctx, input.ProductID, input.ActorID, input.ActorRole)
	if err != nil {
		return nil, err
	}

	if err := applyProductUpdate(product, input.Name, input.Description, input.Price, input.Category, input.Image, input.Stock); err != nil {
		return nil, err
	}

	if product.Approved && input.ActorRole == entity.RoleRetailer {
		product.Approved = false
		srv.log(ctx).Info("Approved product edited, returning to review queue", slog.Any("productID", product.ID))
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update retailer product", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update retailer product")
	}

	return product, nil
}

// DeleteOwnProduct removes a retailer's own product. Admins may remove any
// product through this path.
func (srv *retailerService) DeleteOwnProduct(ctx context.Context, input *usecase.DeleteOwnProductInput) error {
	srv.log(ctx).Info("Deleting retailer product", slog.Any("productID", input.ProductID), slog.Any("actorID", input.ActorID))

	if _, err := srv.loadOwnedProduct(ctx, input.ProductID, input.ActorID, input.ActorRole); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, input.ProductID); err != nil {
		srv.log(ctx).Error("Failed to delete retailer product", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete retailer product")
	}

	return nil
}

// loadOwnedProduct fetches a product and enforces the owner-or-admin rule.
func (srv *retailerService) loadOwnedProduct(ctx context.Context, productID, actorID uuid.UUID, actorRole entity.Role) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if !product.OwnedBy(actorID) && actorRole != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrProductOwnershipViolation, "product does not belong to account")
	}

	return product, nil
}

// ListRetailers returns every retailer account for the admin console.
func (srv *retailerService) ListRetailers(ctx context.Context) ([]*entity.User, error) {
	retailers, err := srv.userRepo.ListRetailers(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list retailers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list retailers")
	}

	return retailers, nil
}

// VerifyRetailer sets a retailer's verification flag. Admins may both grant
// and revoke verification; revoking blocks future submissions but leaves
// already-approved products on the storefront.
func (srv *retailerService) VerifyRetailer(ctx context.Context, input *usecase.VerifyRetailerInput) (*entity.User, error) {
	srv.log(ctx).Info("Setting retailer verification", slog.Any("retailerID", input.RetailerID), slog.Bool("isVerified", input.IsVerified))

	var retailer *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, findErr := userRepo.FindByID(ctx, input.RetailerID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRetailerNotFound, "verify retailer failed")
			}

			return errors.Wrap(findErr, "failed to find retailer")
		}
		if !user.IsRetailer() || user.RetailerProfile == nil {
			return errors.Wrap(domainerrors.ErrRetailerNotFound, "account is not a retailer")
		}

		user.RetailerProfile.IsVerified = input.IsVerified

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update retailer verification")
		}

		retailer = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute retailer verification transaction", slog.Any("retailerID", input.RetailerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute retailer verification transaction")
	}

	return retailer, nil
}

// ListPendingProducts returns the admin review queue, newest first.
func (srv *retailerService) ListPendingProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListPending(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list pending products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list pending products")
	}

	return products, nil
}

// ReviewProduct records an admin's approval decision. Re-approving an
// approved product or re-rejecting a rejected one changes nothing.
func (srv *retailerService) ReviewProduct(ctx context.Context, input *usecase.ReviewProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Reviewing product", slog.Any("productID", input.ProductID), slog.Bool("approved", input.Approved))

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "review product failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	product.Approved = input.Approved

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to record product review", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record product review")
	}

	return product, nil
}
