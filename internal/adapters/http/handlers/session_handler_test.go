package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"onboard-api/internal/adapters/persistence/models"
	"onboard-api/internal/pkg/digest"

	"github.com/stretchr/testify/require"
)

func seedUser(env *testEnv) *models.UserDetail {
	user := &models.UserDetail{
		ID:             1,
		Mobile:         "98765432",
		Name:           "Asha",
		Email:          "a@b.com",
		HashedPassword: digest.Credential("pw123", "test_secret"),
	}
	env.userRepo.users = append(env.userRepo.users, user)
	env.userRepo.nextID = 1
	return user
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{``, `{}`, `{"email":"a@b.com"}`, `{"password":"pw123"}`} {
		resp := env.request(t, http.MethodPost, "/users/login", body, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Required Attribute Not Found", decodeError(t, resp).Error)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	seedUser(env)

	unknown := env.request(t, http.MethodPost, "/users/login",
		`{"email":"nobody@b.com","password":"pw123"}`, nil)
	wrongPassword := env.request(t, http.MethodPost, "/users/login",
		`{"email":"a@b.com","password":"wrong"}`, nil)

	require.Equal(t, http.StatusBadRequest, unknown.StatusCode)
	require.Equal(t, http.StatusBadRequest, wrongPassword.StatusCode)
	require.Equal(t, decodeError(t, unknown), decodeError(t, wrongPassword))
	require.Empty(t, env.sessionRepo.sessions)
}

func TestLoginCreatesSession(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(env)

	resp := env.request(t, http.MethodPost, "/users/login",
		`{"email":"a@b.com","password":"pw123"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, env.sessionRepo.sessions, 1)
	session := env.sessionRepo.sessions[0]
	require.Equal(t, user.ID, session.UserID)
	require.True(t, session.IsSessionActive)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), session.SessionExpiryDate, 2*time.Second)
}

func TestLoginViaGet(t *testing.T) {
	env := newTestEnv(t)
	seedUser(env)

	resp := env.request(t, http.MethodGet, "/users/login",
		`{"email":"a@b.com","password":"pw123"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, env.sessionRepo.sessions, 1)
}

func TestLoginRefusedAtLimit(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(env)
	env.sessionRepo.sessions = []*models.UserSession{
		{ID: 1, UserID: user.ID, IsSessionActive: true, SessionExpiryDate: time.Now().Add(time.Hour)},
		{ID: 2, UserID: user.ID, IsSessionActive: true, SessionExpiryDate: time.Now().Add(time.Hour)},
	}
	env.sessionRepo.nextID = 2

	resp := env.request(t, http.MethodPost, "/users/login",
		`{"email":"a@b.com","password":"pw123"}`, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	require.Equal(t, "Invalid login attempt", body.Error)
	require.Equal(t, "Maximum active sessions limit reached", body.Message)
	require.Len(t, env.sessionRepo.sessions, 2)
}

func TestLogoutDeactivatesCurrentSession(t *testing.T) {
	env := newTestEnv(t)
	seedUser(env)

	resp := env.request(t, http.MethodPost, "/users/login",
		`{"email":"a@b.com","password":"pw123"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(t, resp)
	require.True(t, env.sessionRepo.sessions[0].IsSessionActive)

	resp = env.request(t, http.MethodPost, "/users/logout", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.False(t, env.sessionRepo.sessions[0].IsSessionActive)

	// A fresh login after logout opens a new session row
	resp = env.request(t, http.MethodPost, "/users/login",
		`{"email":"a@b.com","password":"pw123"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, env.sessionRepo.sessions, 2)
}

func TestLogoutWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	// No session cookie at all: the sentinel id targets no row
	resp := env.request(t, http.MethodPost, "/users/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
