package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/phr/phr/internal/domain/account"
	"github.com/phr/phr/pkg/identifier"
)

var (
	// ErrUserNotFound reports a list or create against an unknown user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidIdentifier reports a missing or malformed user id.
	ErrInvalidIdentifier = errors.New("invalid user identifier")
	// ErrMissingFields reports a draft without name or schedule dates.
	ErrMissingFields = errors.New("medication name, start date and end date are required")
	// ErrMissingParameters reports a delete without both ids.
	ErrMissingParameters = errors.New("medication id and user id are required")
)

type Service struct {
	plans  PlanRepository
	links  UserLinks
	picker ColorPicker
	log    zerolog.Logger
}

func NewService(plans PlanRepository, links UserLinks, picker ColorPicker, log zerolog.Logger) *Service {
	return &Service{plans: plans, links: links, picker: picker, log: log}
}

// List returns the user's plans in the order of the id list on the user
// record. Ids whose plan row no longer exists are skipped.
func (s *Service) List(ctx context.Context, rawUserID string) ([]*Plan, error) {
	userID, err := identifier.Parse(rawUserID)
	if err != nil {
		return nil, ErrInvalidIdentifier
	}

	ids, err := s.links.MedicationIDs(ctx, userID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if len(ids) == 0 {
		return []*Plan{}, nil
	}

	plans, err := s.plans.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*Plan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}
	ordered := make([]*Plan, 0, len(plans))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// Create stores the plan, then appends its id to the user's list. The two
// writes are independent: if the append fails the plan row stays behind as
// an orphan that List never surfaces. Retrying the whole call can therefore
// produce duplicate plans.
func (s *Service) Create(ctx context.Context, rawUserID string, draft Draft) (*Plan, error) {
	userID, err := identifier.Parse(rawUserID)
	if err != nil {
		return nil, ErrInvalidIdentifier
	}
	if draft.MedicationName == "" || draft.StartDate.IsZero() || draft.EndDate.IsZero() {
		return nil, ErrMissingFields
	}

	color := draft.Color
	if color == "" {
		color = s.picker.Pick()
	}

	p := &Plan{
		ID:             uuid.New(),
		MedicationName: draft.MedicationName,
		Dosage:         draft.Dosage,
		Frequency:      draft.Frequency,
		Color:          color,
		StartDate:      draft.StartDate,
		EndDate:        draft.EndDate,
	}
	if err := s.plans.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.links.AppendMedicationID(ctx, userID, p.ID); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.log.Error().Err(err).
			Str("user_id", userID.String()).
			Str("medication_id", p.ID.String()).
			Msg("plan stored but not linked to user")
		return nil, err
	}
	return p, nil
}

// Delete unlinks the plan from the user, then removes the row. No
// transaction: a failure between the writes leaves a dangling id, which
// List tolerates.
func (s *Service) Delete(ctx context.Context, rawMedicationID, rawUserID string) error {
	if rawMedicationID == "" || rawUserID == "" {
		return ErrMissingParameters
	}
	medicationID, err := identifier.Parse(rawMedicationID)
	if err != nil {
		return ErrInvalidIdentifier
	}
	userID, err := identifier.Parse(rawUserID)
	if err != nil {
		return ErrInvalidIdentifier
	}

	if err := s.links.RemoveMedicationID(ctx, userID, medicationID); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	// A zero-row delete means the plan row was already gone; the id was a
	// dangling reference and removing the link above is the whole cleanup.
	if err := s.plans.Delete(ctx, medicationID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
