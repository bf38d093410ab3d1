package healthprofile

import (
	"context"

	"github.com/google/uuid"

	"github.com/phr/phr/pkg/identifier"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateEmpty pairs a blank record with a new account. Called by the
// account service at signup.
func (s *Service) CreateEmpty(ctx context.Context, userID uuid.UUID) error {
	return s.repo.CreateEmpty(ctx, userID)
}

func (s *Service) Get(ctx context.Context, rawUserID string) (*Profile, error) {
	userID, err := identifier.Parse(rawUserID)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID)
}

func (s *Service) Save(ctx context.Context, rawUserID string, upd ProfileUpdate) error {
	userID, err := identifier.Parse(rawUserID)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, userID, upd)
}

func (s *Service) Delete(ctx context.Context, rawUserID string) error {
	userID, err := identifier.Parse(rawUserID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID)
}
