package repositories

import (
	"context"
	"fmt"

	"onboard-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.UserDetail) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByCredentials gets a user by email and credential digest. The two are
// matched together so a miss never reveals which half was wrong.
func (r *userRepository) GetByCredentials(ctx context.Context, email, digest string) (*models.UserDetail, error) {
	var user models.UserDetail
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Where("hashed_password = ?", digest).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUniqueField checks whether a user row already claims the value
func (r *userRepository) ExistsByUniqueField(ctx context.Context, field UniqueField, value string) (bool, error) {
	var column string
	switch field {
	case FieldMobile:
		column = "mobile"
	case FieldEmail:
		column = "email"
	default:
		return false, fmt.Errorf("unknown unique field: %d", field)
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserDetail{}).
		Where(column+" = ?", value).
		Count(&count).Error
	return count > 0, err
}
