package repositories

import (
	"context"

	"onboard-api/internal/adapters/persistence/models"
)

// UniqueField enumerates the user_details columns that carry a uniqueness
// constraint. Column names are resolved from this closed set only, never
// from request input.
type UniqueField int

const (
	FieldMobile UniqueField = iota
	FieldEmail
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.UserDetail) error
	GetByCredentials(ctx context.Context, email, digest string) (*models.UserDetail, error)
	ExistsByUniqueField(ctx context.Context, field UniqueField, value string) (bool, error)
}

// SessionRepository defines session repository interface
type SessionRepository interface {
	Create(ctx context.Context, session *models.UserSession) error
	Deactivate(ctx context.Context, id uint) error
	CountActive(ctx context.Context, userID uint) (int64, error)
	DeactivateExpired(ctx context.Context) (int64, error)
}
