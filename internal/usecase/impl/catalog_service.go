package impl

import (
	"context"
	"log/slog"

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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo   repository.ProductRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:   params.ProductRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the approved products matching the filter, newest first.
// Unapproved products never leave the review queue through this path.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	srv.log(ctx).Debug("Listing storefront products",
		slog.String("category", input.Category),
		slog.String("search", input.Search),
		slog.Bool("featuredOnly", input.FeaturedOnly))

	if input.Category != "" && !entity.Category(input.Category).IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCategory, "list products failed")
	}

	products, err := srv.productRepo.Search(ctx, input.SearchFilter())
	if err != nil {
		srv.log(ctx).Error("Failed to list storefront products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// GetProduct returns a single product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "get product failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// GetProductQR renders a PNG QR code linking to the product page.
func (srv *catalogService) GetProductQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	// Confirm the product exists before handing out a shareable code.
	if _, err := srv.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateProductQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate product QR code", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

// CreateProduct creates an admin-owned platform product. It is approved on
// arrival and visible to the storefront immediately.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating platform product", slog.String("name", input.Name))

	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCategory, "create product failed")
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		Image:       input.Image,
		Stock:       input.Stock,
		Featured:    input.Featured,
		Approved:    true,
		RetailerID:  nil,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create platform product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Platform product created", slog.Any("productID", product.ID))

	return product, nil
}

// UpdateProduct applies an admin edit to any product. Nil fields keep the
// stored value, and the approval flag is never touched on this path.
func (srv *catalogService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", input.ProductID))

	product, err := srv.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if err := applyProductUpdate(product, input.Name, input.Description, input.Price, input.Category, input.Image, input.Stock); err != nil {
		return nil, err
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog. Orders keep their
// line-item snapshots.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("productID", id))

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "delete product failed")
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// applyProductUpdate merges the shared mutable product fields. Nil values
// keep whatever is stored.
func applyProductUpdate(product *entity.Product, name, description *string, price *float64, category, image *string, stock *int) error {
	if name != nil {
		product.Name = *name
	}
	if description != nil {
		product.Description = *description
	}
	if price != nil {
		product.Price = *price
	}
	if category != nil {
		next := entity.Category(*category)
		if !next.IsValid() {
			return errors.Wrap(domainerrors.ErrInvalidCategory, "update product failed")
		}
		product.Category = next
	}
	if image != nil {
		product.Image = *image
	}
	if stock != nil {
		product.Stock = *stock
	}

	return nil
}
