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

// RegistrationHandler handles the three-stage registration endpoints
type RegistrationHandler struct {
	registrationService *services.RegistrationService
	store               *session.Store
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService *services.RegistrationService, store *session.Store) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		store:               store,
	}
}

// StageOneRequest represents the stage-1 request body
type StageOneRequest struct {
	Mobile string `json:"mobile"`
	Name   string `json:"name"`
}

// StageTwoRequest represents the stage-2 request body
type StageTwoRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StageThreeRequest represents the stage-3 request body
type StageThreeRequest struct {
	PAN         string `json:"pan"`
	FathersName string `json:"fathersName"`
	DOB         string `json:"dob"`
}

// StageOne stages the identity claim (mobile, name) into the session
// @Summary Registration stage 1
// @Description Validate and stage mobile number and name
// @Tags Registration
// @Accept json
// @Produce json
// @Param body body StageOneRequest true "Identity claim"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorBody
// @Router /users/register/1 [post]
func (h *RegistrationHandler) StageOne(c *fiber.Ctx) error {
	var req StageOneRequest
	if err := c.BodyParser(&req); err != nil || req.Mobile == "" || req.Name == "" {
		return response.BadRequest(c, "Required Attribute Not Found", "Missing mobile or name of the user")
	}

	mobile := strings.TrimSpace(req.Mobile)

	if err := h.registrationService.StageIdentity(c.Context(), mobile); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMobile):
			return response.BadRequest(c, "Invalid Value Provided", "Mobile number should only contain digits")
		case errors.Is(err, services.ErrDuplicateMobile):
			return response.BadRequest(c, "Re-registration Attempt", "Mobile number already exists in the database")
		default:
			errlog.Record(err, "/users/register/1")
			return response.InternalServerError(c)
		}
	}

	sess, err := h.store.Get(c)
	if err != nil {
		errlog.Record(err, "/users/register/1")
		return response.InternalServerError(c)
	}

	state := sessionstate.FromSession(sess)
	state.Mobile = mobile
	state.Name = strings.TrimSpace(req.Name)
	state.IsLoggedIn = false
	state.Stage = sessionstate.StageIdentity
	if err := state.Save(sess); err != nil {
		errlog.Record(err, "/users/register/1")
		return response.InternalServerError(c)
	}

	return response.OK(c)
}

// StageTwo stages the credential claim (email, password digest) into the session
// @Summary Registration stage 2
// @Description Validate email, digest the password and stage both
// @Tags Registration
// @Accept json
// @Produce json
// @Param body body StageTwoRequest true "Credential claim"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorBody
// @Router /users/register/2 [post]
func (h *RegistrationHandler) StageTwo(c *fiber.Ctx) error {
	var req StageTwoRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Required Attribute Not Found", "Missing email or password")
	}

	email := strings.TrimSpace(req.Email)

	credentialDigest, err := h.registrationService.StageCredentials(c.Context(), email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			return response.BadRequest(c, "Invalid Value Provided", "Email is invalid")
		case errors.Is(err, services.ErrDuplicateEmail):
			return response.BadRequest(c, "Re-registration Attempt", "Email id already exists in the database")
		default:
			errlog.Record(err, "/users/register/2")
			return response.InternalServerError(c)
		}
	}

	sess, err := h.store.Get(c)
	if err != nil {
		errlog.Record(err, "/users/register/2")
		return response.InternalServerError(c)
	}

	state := sessionstate.FromSession(sess)
	state.Email = email
	state.CredentialDigest = credentialDigest
	state.Stage = sessionstate.StageCredentials
	if err := state.Save(sess); err != nil {
		errlog.Record(err, "/users/register/2")
		return response.InternalServerError(c)
	}

	return response.OK(c)
}

// StageThree commits the user row from the staged session fields
// @Summary Registration stage 3
// @Description Validate pan, fathers name and date of birth, then create the user
// @Tags Registration
// @Accept json
// @Produce json
// @Param body body StageThreeRequest true "Finalize data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} response.ErrorBody
// @Router /users/register/3 [post]
func (h *RegistrationHandler) StageThree(c *fiber.Ctx) error {
	var req StageThreeRequest
	if err := c.BodyParser(&req); err != nil || req.PAN == "" || req.FathersName == "" || req.DOB == "" {
		return response.BadRequest(c, "Required Attribute Not Found", "Missing pan, date of birth or fathers name")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		errlog.Record(err, "/users/register/3")
		return response.InternalServerError(c)
	}
	state := sessionstate.FromSession(sess)

	input := &services.FinalizeInput{
		PAN:         strings.TrimSpace(req.PAN),
		FathersName: strings.TrimSpace(req.FathersName),
		DOB:         strings.TrimSpace(req.DOB),
	}

	if _, err := h.registrationService.Finalize(c.Context(), state, input); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDate):
			return response.BadRequest(c, "Invalid Attribute value", "The value of date is not valid")
		case errors.Is(err, services.ErrDateOfBirthInFuture):
			return response.BadRequest(c, "Invalid Attribute value", "Date of birth has to be before today")
		case errors.Is(err, services.ErrIncompleteRegistration):
			return response.BadRequest(c, "Incomplete Registration", "Earlier registration steps are missing for this session")
		default:
			errlog.Record(err, "/users/register/3")
			return response.InternalServerError(c)
		}
	}

	state.Stage = sessionstate.StageAuthenticated
	state.IsLoggedIn = true
	if err := state.Save(sess); err != nil {
		errlog.Record(err, "/users/register/3")
		return response.InternalServerError(c)
	}

	return response.Created(c)
}
