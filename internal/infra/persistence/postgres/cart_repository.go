package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUserID retrieves the cart for a user. A missing row maps to an empty cart.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Cart{UserID: userID}, nil
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// Save persists the full cart state, replacing any previously stored items.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	// Upsert the cart row first, then rewrite its items wholesale. The cart
	// is small and reducer output is the source of truth.
	if err := repo.db.WithContext(ctx).
		Omit("Items").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).
		Create(cartM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	if err := repo.db.WithContext(ctx).
		Where("cart_user_id = ?", cart.UserID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart items")
	}

	if len(cartM.Items) > 0 {
		if err := repo.db.WithContext(ctx).Create(&cartM.Items).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save cart items")
		}
	}

	return nil
}

// DeleteByUserID removes the stored cart for a user.
func (repo *cartRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart items")
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.CartItem{
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			Image:     itemM.Image,
			Price:     itemM.Price,
			Quantity:  itemM.Quantity,
		})
	}

	return &entity.Cart{
		UserID:    data.UserID,
		Items:     items,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	items := make([]model.CartItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.CartItemModel{
			CartUserID: data.UserID,
			ProductID:  item.ProductID,
			Name:       item.Name,
			Image:      item.Image,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return &model.CartModel{
		UserID:    data.UserID,
		UpdatedAt: data.UpdatedAt,
		Items:     items,
	}
}
