package healthprofile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("health profile not found")

type Repository interface {
	// CreateEmpty inserts a blank record for a freshly registered user.
	// It is a no-op when the user already has one.
	CreateEmpty(ctx context.Context, userID uuid.UUID) error
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// Save upserts: the record is created when absent, otherwise only the
	// supplied fields of upd overwrite the stored ones.
	Save(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
