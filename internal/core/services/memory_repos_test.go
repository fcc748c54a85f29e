package services_test

import (
	"context"
	"fmt"
	"time"

	"onboard-api/internal/adapters/persistence/models"
	"onboard-api/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type memoryUserRepo struct {
	users     []*models.UserDetail
	nextID    uint
	createErr error
	existsErr error
}

func (m *memoryUserRepo) Create(ctx context.Context, user *models.UserDetail) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.users = append(m.users, user)
	return nil
}

func (m *memoryUserRepo) GetByCredentials(ctx context.Context, email, digest string) (*models.UserDetail, error) {
	for _, u := range m.users {
		if u.Email == email && u.HashedPassword == digest {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryUserRepo) ExistsByUniqueField(ctx context.Context, field repositories.UniqueField, value string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	for _, u := range m.users {
		switch field {
		case repositories.FieldMobile:
			if u.Mobile == value {
				return true, nil
			}
		case repositories.FieldEmail:
			if u.Email == value {
				return true, nil
			}
		default:
			return false, fmt.Errorf("unknown unique field: %d", field)
		}
	}
	return false, nil
}

type memorySessionRepo struct {
	sessions      []*models.UserSession
	nextID        uint
	createErr     error
	deactivateErr error
}

func (m *memorySessionRepo) Create(ctx context.Context, session *models.UserSession) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	session.ID = m.nextID
	session.CreatedAt = time.Now()
	m.sessions = append(m.sessions, session)
	return nil
}

func (m *memorySessionRepo) Deactivate(ctx context.Context, id uint) error {
	if m.deactivateErr != nil {
		return m.deactivateErr
	}
	for _, s := range m.sessions {
		if s.ID == id {
			s.IsSessionActive = false
		}
	}
	return nil
}

func (m *memorySessionRepo) CountActive(ctx context.Context, userID uint) (int64, error) {
	var count int64
	for _, s := range m.sessions {
		if s.UserID == userID && s.IsSessionActive && s.SessionExpiryDate.After(time.Now()) {
			count++
		}
	}
	return count, nil
}

func (m *memorySessionRepo) DeactivateExpired(ctx context.Context) (int64, error) {
	var n int64
	for _, s := range m.sessions {
		if s.IsSessionActive && !s.SessionExpiryDate.After(time.Now()) {
			s.IsSessionActive = false
			n++
		}
	}
	return n, nil
}
