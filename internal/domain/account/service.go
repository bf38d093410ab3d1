package account

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/phr/phr/pkg/identifier"
)

var (
	// ErrMissingFields is returned when signup input is incomplete.
	ErrMissingFields = errors.New("name, email and password are required")
	// ErrMissingCredentials is returned when login input is incomplete.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidAge is returned when a profile update carries a negative
	// or non-numeric age.
	ErrInvalidAge = errors.New("age must be a positive number")
)

// HealthProfileCreator creates the paired empty health profile at signup.
// Implemented by the healthprofile store adapter.
type HealthProfileCreator interface {
	CreateEmpty(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	repo       Repository
	profiles   HealthProfileCreator
	bcryptCost int
	log        zerolog.Logger
}

func NewService(repo Repository, profiles HealthProfileCreator, bcryptCost int, log zerolog.Logger) *Service {
	return &Service{repo: repo, profiles: profiles, bcryptCost: bcryptCost, log: log}
}

// Signup registers a new user and creates its paired empty health profile.
// The two inserts commit independently: when the health profile insert
// fails the user record is kept and the gap is logged, not rolled back.
func (s *Service) Signup(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	if name == "" || email == "" || password == "" {
		return uuid.Nil, ErrMissingFields
	}
	if err := ValidatePassword(password); err != nil {
		return uuid.Nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return uuid.Nil, ErrEmailInUse
	} else if !errors.Is(err, ErrNotFound) {
		return uuid.Nil, err
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return uuid.Nil, err
	}

	u := &User{
		Name:          name,
		Email:         email,
		PasswordHash:  hash,
		MedicationIDs: []uuid.UUID{},
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return uuid.Nil, err
	}

	if err := s.profiles.CreateEmpty(ctx, u.ID); err != nil {
		s.log.Error().Err(err).Str("user_id", u.ID.String()).
			Msg("user created but paired health profile insert failed")
	}

	return u.ID, nil
}

// Login verifies credentials and returns the public projection of the user.
// An unknown email and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*PublicUser, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u.Public(), nil
}

// GetProfile returns the user record minus the password hash.
func (s *Service) GetProfile(ctx context.Context, rawUserID string) (*User, error) {
	id, err := identifier.Parse(rawUserID)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// UpdateProfile applies a partial basic-profile update. A present age must
// be a non-negative number; an explicitly empty age clears the field.
func (s *Service) UpdateProfile(ctx context.Context, rawUserID string, upd ProfileUpdate) error {
	id, err := identifier.Parse(rawUserID)
	if err != nil {
		return err
	}
	if upd.Age != nil && *upd.Age != "" {
		n, err := strconv.ParseFloat(*upd.Age, 64)
		if err != nil || math.IsNaN(n) || n < 0 {
			return ErrInvalidAge
		}
	}
	// An empty update still runs: it refreshes updated_at and surfaces
	// NotFound for unknown users.
	return s.repo.UpdateProfile(ctx, id, upd)
}
