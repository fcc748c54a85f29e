package repositories

import (
	"context"
	"time"

	"onboard-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// sessionRepository implements SessionRepository interface
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create creates a new session row
func (r *sessionRepository) Create(ctx context.Context, session *models.UserSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// Deactivate flips the active flag off for a session row. Matching zero
// rows is not an error; the caller may pass the sentinel id 0 when the
// client never held a session.
func (r *sessionRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.UserSession{}).
		Where("id = ?", id).
		Update("is_session_active", false).Error
}

// CountActive counts active, non-expired sessions for a user
func (r *sessionRepository) CountActive(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserSession{}).
		Where("user_id = ?", userID).
		Where("is_session_active = ?", true).
		Where("session_expiry_date > ?", time.Now()).
		Count(&count).Error
	return count, err
}

// DeactivateExpired flips the active flag off for every session row past
// its expiry (cleanup job)
func (r *sessionRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.UserSession{}).
		Where("is_session_active = ?", true).
		Where("session_expiry_date <= ?", time.Now()).
		Update("is_session_active", false)
	return result.RowsAffected, result.Error
}
