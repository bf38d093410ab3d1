package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a well-formed identifier matches no user.
var ErrNotFound = errors.New("user not found")

// ErrEmailInUse is returned when the signup email is already registered.
var ErrEmailInUse = errors.New("email already registered")

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) error

	// Medication-plan linkage. The list on the user record is the only
	// reference between a user and its plans; the medication adapter owns
	// the add/remove calls.
	MedicationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AppendMedicationID(ctx context.Context, userID, medicationID uuid.UUID) error
	RemoveMedicationID(ctx context.Context, userID, medicationID uuid.UUID) error
}
