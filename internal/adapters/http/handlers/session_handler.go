package handlers

import (
	"errors"
	"strings"

	"onboard-api/internal/core/services"
	"onboard-api/internal/pkg/errlog"
	"onboard-api/internal/pkg/response"
	"onboard-api/internal/pkg/sessionstate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionHandler handles login and logout
type SessionHandler struct {
	sessionService *services.SessionService
	store          *session.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *services.SessionService, store *session.Store) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		store:          store,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and creates a new login session
// @Summary Login
// @Description Authenticate and open a new session, bounded per user
// @Tags Session
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorBody
// @Router /users/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Required Attribute Not Found", "Missing email or password")
	}

	userSession, err := h.sessionService.Login(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.BadRequest(c, "Invalid login attempt", "Invalid email or password entered")
		case errors.Is(err, services.ErrSessionLimitReached):
			return response.BadRequest(c, "Invalid login attempt", "Maximum active sessions limit reached")
		default:
			errlog.Record(err, "/users/login")
			return response.InternalServerError(c)
		}
	}

	sess, err := h.store.Get(c)
	if err != nil {
		errlog.Record(err, "/users/login")
		return response.InternalServerError(c)
	}

	state := sessionstate.FromSession(sess)
	state.IsLoggedIn = true
	state.SessionID = userSession.ID
	state.UserID = userSession.UserID
	if err := state.Save(sess); err != nil {
		errlog.Record(err, "/users/login")
		return response.InternalServerError(c)
	}

	return response.OK(c)
}

// Logout deactivates the current session row and clears the login state
// @Summary Logout
// @Description Deactivate the caller's session
// @Tags Session
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /users/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		errlog.Record(err, "/users/logout")
		return response.InternalServerError(c)
	}
	state := sessionstate.FromSession(sess)

	// The durable deactivation must succeed before a 200 goes out.
	if err := h.sessionService.Logout(c.Context(), state.SessionID); err != nil {
		errlog.Record(err, "/users/logout")
		return response.InternalServerError(c)
	}

	// Clearing the in-memory state is best-effort.
	state.ClearLogin()
	if err := state.Save(sess); err != nil {
		errlog.Record(err, "/users/logout")
	}

	return response.OK(c)
}
