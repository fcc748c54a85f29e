package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"onboard-api/internal/adapters/persistence/models"
	"onboard-api/internal/adapters/persistence/repositories"
	"onboard-api/internal/config"
	"onboard-api/internal/pkg/digest"
	"onboard-api/internal/pkg/sessionstate"
)

// Registration errors
var (
	ErrInvalidMobile          = errors.New("mobile number should only contain digits")
	ErrDuplicateMobile        = errors.New("mobile number already exists in the database")
	ErrInvalidEmail           = errors.New("email is invalid")
	ErrDuplicateEmail         = errors.New("email id already exists in the database")
	ErrInvalidDate            = errors.New("the value of date is not valid")
	ErrDateOfBirthInFuture    = errors.New("date of birth has to be before today")
	ErrIncompleteRegistration = errors.New("earlier registration stages are missing for this session")
)

var (
	mobilePattern = regexp.MustCompile(`^[0-9]{8,10}$`)
	emailPattern  = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

// dobLayout is the wire format for dates of birth
const dobLayout = "2006-01-02"

// RegistrationService drives the three-stage registration flow. Stages 1
// and 2 only validate and stage values; the single durable write is the
// user insert in Finalize.
type RegistrationService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(userRepo repositories.UserRepository, cfg *config.Config) *RegistrationService {
	return &RegistrationService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// FinalizeInput represents the stage-3 input
type FinalizeInput struct {
	PAN         string
	FathersName string
	DOB         string
}

// StageIdentity validates the stage-1 identity claim. The caller stages
// mobile and name into the session only after this succeeds.
func (s *RegistrationService) StageIdentity(ctx context.Context, mobile string) error {
	if !mobilePattern.MatchString(mobile) {
		return ErrInvalidMobile
	}

	exists, err := s.userRepo.ExistsByUniqueField(ctx, repositories.FieldMobile, mobile)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateMobile
	}

	return nil
}

// StageCredentials validates the stage-2 credential claim and returns the
// digest to stage. The plaintext password goes no further than this call.
func (s *RegistrationService) StageCredentials(ctx context.Context, email, password string) (string, error) {
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}

	exists, err := s.userRepo.ExistsByUniqueField(ctx, repositories.FieldEmail, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrDuplicateEmail
	}

	return digest.Credential(password, s.cfg.Auth.SecretKey), nil
}

// Finalize validates the stage-3 input, reads the staged fields back from
// the session state, and commits the user row. The staged fields must all
// be present; an incomplete session never reaches the insert.
func (s *RegistrationService) Finalize(ctx context.Context, state *sessionstate.State, input *FinalizeInput) (*models.UserDetail, error) {
	dob, err := time.Parse(dobLayout, input.DOB)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !dob.Before(time.Now()) {
		return nil, ErrDateOfBirthInFuture
	}

	if !state.StagedComplete() {
		return nil, ErrIncompleteRegistration
	}

	user := &models.UserDetail{
		Mobile:         state.Mobile,
		Name:           state.Name,
		HashedPassword: state.CredentialDigest,
		Email:          state.Email,
		PAN:            input.PAN,
		FathersName:    input.FathersName,
		DOB:            dob,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s (mobile: %s)", user.Email, user.Mobile)
	return user, nil
}
