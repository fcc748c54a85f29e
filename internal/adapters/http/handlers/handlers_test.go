package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"onboard-api/internal/adapters/http/handlers"
	"onboard-api/internal/adapters/persistence/models"
	"onboard-api/internal/adapters/persistence/repositories"
	"onboard-api/internal/config"
	"onboard-api/internal/core/services"
	"onboard-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// End-to-end handler tests: real fiber app, real session store, in-memory
// repositories behind the services.

type memoryUserRepo struct {
	users  []*models.UserDetail
	nextID uint
}

func (m *memoryUserRepo) Create(ctx context.Context, user *models.UserDetail) error {
	m.nextID++
	user.ID = m.nextID
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
	for _, u := range m.users {
		if (field == repositories.FieldMobile && u.Mobile == value) ||
			(field == repositories.FieldEmail && u.Email == value) {
			return true, nil
		}
	}
	return false, nil
}

type memorySessionRepo struct {
	sessions []*models.UserSession
	nextID   uint
}

func (m *memorySessionRepo) Create(ctx context.Context, s *models.UserSession) error {
	m.nextID++
	s.ID = m.nextID
	m.sessions = append(m.sessions, s)
	return nil
}

func (m *memorySessionRepo) Deactivate(ctx context.Context, id uint) error {
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
	return 0, nil
}

type testEnv struct {
	app         *fiber.App
	userRepo    *memoryUserRepo
	sessionRepo *memorySessionRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		AppMode: "dev",
		Auth: config.AuthConfig{
			SecretKey:    "test_secret",
			MaxSessions:  2,
			SessionHours: 24,
		},
	}

	userRepo := &memoryUserRepo{}
	sessionRepo := &memorySessionRepo{}
	store := session.New(session.Config{KeyLookup: "cookie:session_id"})

	registrationService := services.NewRegistrationService(userRepo, cfg)
	sessionService := services.NewSessionService(userRepo, sessionRepo, cfg)

	app := fiber.New()
	registrationHandler := handlers.NewRegistrationHandler(registrationService, store)
	sessionHandler := handlers.NewSessionHandler(sessionService, store)

	users := app.Group("/users")
	users.Post("/register/1", registrationHandler.StageOne)
	users.Post("/register/2", registrationHandler.StageTwo)
	users.Post("/register/3", registrationHandler.StageThree)
	users.Get("/login", sessionHandler.Login)
	users.Post("/login", sessionHandler.Login)
	users.Post("/logout", sessionHandler.Logout)

	return &testEnv{app: app, userRepo: userRepo, sessionRepo: sessionRepo}
}

func (e *testEnv) request(t *testing.T, method, path, body string, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("response carries no session cookie")
	return nil
}

func decodeError(t *testing.T, resp *http.Response) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
