package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("medication plan not found")

type PlanRepository interface {
	Create(ctx context.Context, p *Plan) error
	// ListByIDs fetches the plans for the given ids in one round trip.
	// Ids with no matching row are simply absent from the result; callers
	// decide what order and tolerance they need.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Plan, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserLinks is the slice of the account store the medication service needs:
// the ordered plan-id list kept on the user record. Satisfied by the account
// repository.
type UserLinks interface {
	MedicationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AppendMedicationID(ctx context.Context, userID, medicationID uuid.UUID) error
	RemoveMedicationID(ctx context.Context, userID, medicationID uuid.UUID) error
}
