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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves an account by its unique ID, with the retailer profile when present.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("RetailerProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves an account by email. Comparison is case-insensitive.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("RetailerProfile").
		Where("LOWER(email) = LOWER(?)", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindCredentials returns the account and its stored password hash for login checks.
func (repo *userRepository) FindCredentials(ctx context.Context, email string) (*entity.User, string, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("RetailerProfile").
		Where("LOWER(email) = LOWER(?)", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", repository.ErrUserNotFound
		}

		return nil, "", errors.Wrap(err, "failed to find user credentials")
	}

	return toUserDomain(&userM), userM.PasswordHash, nil
}

// Create persists a new account, with its retailer profile when present.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.RetailerProfile != nil {
		user.RetailerProfile.UserID = userM.ID
	}

	return nil
}

// Update modifies an account's core fields and upserts its retailer profile.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role.String(),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	if user.RetailerProfile != nil {
		profileM := fromRetailerProfileDomain(user.ID, user.RetailerProfile)
		if err := repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				UpdateAll: true,
			}).
			Create(profileM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("business license already registered")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to update retailer profile")
		}
	}

	return nil
}

// UpdatePassword replaces the stored password hash for an account.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AcquireSessionMutex locks the account row until the surrounding
// transaction ends, serializing concurrent session-limit checks.
func (repo *userRepository) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to lock user row")
	}

	return nil
}

// ListRetailers returns every retailer account, newest first.
func (repo *userRepository) ListRetailers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("RetailerProfile").
		Where("role = ?", entity.RoleRetailer.String()).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list retailers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		Role:            entity.Role(data.Role),
		RetailerProfile: toRetailerProfileDomain(data.RetailerProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
// The password hash is managed separately and never lives on the entity.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Role:      data.Role.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.RetailerProfile != nil {
		userM.RetailerProfile = fromRetailerProfileDomain(data.ID, data.RetailerProfile)
	}

	return userM
}

// toRetailerProfileDomain converts a GORM RetailerProfileModel to a domain RetailerProfile.
func toRetailerProfileDomain(data *model.RetailerProfileModel) *entity.RetailerProfile {
	if data == nil {
		return nil
	}

	return &entity.RetailerProfile{
		UserID:           data.UserID,
		StoreName:        data.StoreName,
		StoreDescription: data.StoreDescription,
		Phone:            data.Phone,
		Address: entity.Address{
			Street:  data.Street,
			City:    data.City,
			State:   data.State,
			Pincode: data.Pincode,
		},
		BusinessLicense: data.BusinessLicense,
		IsVerified:      data.IsVerified,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromRetailerProfileDomain converts a domain RetailerProfile to a GORM RetailerProfileModel.
func fromRetailerProfileDomain(userID uuid.UUID, data *entity.RetailerProfile) *model.RetailerProfileModel {
	if data == nil {
		return nil
	}

	return &model.RetailerProfileModel{
		UserID:           userID,
		StoreName:        data.StoreName,
		StoreDescription: data.StoreDescription,
		Phone:            data.Phone,
		Street:           data.Address.Street,
		City:             data.Address.City,
		State:            data.Address.State,
		Pincode:          data.Address.Pincode,
		BusinessLicense:  data.BusinessLicense,
		IsVerified:       data.IsVerified,
		UpdatedAt:        data.UpdatedAt,
	}
}
