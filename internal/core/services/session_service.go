package services

import (
	"context"
	"errors"
	"log"
	"time"

	"onboard-api/internal/adapters/persistence/models"
	"onboard-api/internal/adapters/persistence/repositories"
	"onboard-api/internal/config"
	"onboard-api/internal/pkg/digest"

	"gorm.io/gorm"
)

// Session errors
var (
	// ErrInvalidCredentials is deliberately shared by unknown-email and
	// wrong-password misses so the response never reveals which it was.
	ErrInvalidCredentials  = errors.New("invalid email or password entered")
	ErrSessionLimitReached = errors.New("maximum active sessions limit reached")
)

// SessionService handles login session lifecycle
type SessionService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	cfg         *config.Config
}

// NewSessionService creates a new session service
func NewSessionService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	cfg *config.Config,
) *SessionService {
	return &SessionService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// Login verifies credentials, enforces the per-user session cap, and
// creates a new session row. Success means the row is durably stored.
//
// The count check and the insert are not atomic; concurrent logins for one
// user can overshoot the cap by a small margin. Accepted trade-off.
func (s *SessionService) Login(ctx context.Context, email, password string) (*models.UserSession, error) {
	// 1. Match email and digest together
	d := digest.Credential(password, s.cfg.Auth.SecretKey)
	user, err := s.userRepo.GetByCredentials(ctx, email, d)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Refuse at the limit
	count, err := s.sessionRepo.CountActive(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.cfg.Auth.MaxSessions) {
		return nil, ErrSessionLimitReached
	}

	// 3. Create the session row
	session := &models.UserSession{
		UserID:            user.ID,
		SessionExpiryDate: time.Now().Add(time.Duration(s.cfg.Auth.SessionHours) * time.Hour),
		IsSessionActive:   true,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s (session %d)", user.Email, session.ID)
	return session, nil
}

// Logout deactivates the session row. The caller passes the sentinel id 0
// when the client never held a session; the update then matches nothing.
func (s *SessionService) Logout(ctx context.Context, sessionID uint) error {
	if err := s.sessionRepo.Deactivate(ctx, sessionID); err != nil {
		return err
	}

	log.Printf("✅ Session %d deactivated", sessionID)
	return nil
}
