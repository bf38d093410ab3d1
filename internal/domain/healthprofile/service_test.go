package healthprofile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	byUser map[uuid.UUID]*Profile
}

func newMockRepo() *mockRepo {
	return &mockRepo{byUser: make(map[uuid.UUID]*Profile)}
}

func (m *mockRepo) CreateEmpty(ctx context.Context, userID uuid.UUID) error {
	if _, ok := m.byUser[userID]; ok {
		return nil
	}
	m.byUser[userID] = &Profile{Allergies: []string{}, Conditions: []string{}}
	return nil
}

func (m *mockRepo) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, ok := m.byUser[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) Save(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) error {
	p, ok := m.byUser[userID]
	if !ok {
		p = &Profile{Allergies: []string{}, Conditions: []string{}}
		m.byUser[userID] = p
	}
	if upd.BloodType != nil {
		p.BloodType = *upd.BloodType
	}
	if upd.BloodPressure != nil {
		p.BloodPressure = *upd.BloodPressure
	}
	if upd.Cholesterol != nil {
		c := *upd.Cholesterol
		p.Cholesterol = &c
	}
	if upd.HasAllergies != nil {
		p.HasAllergies = *upd.HasAllergies
	}
	if upd.Allergies != nil {
		p.Allergies = *upd.Allergies
	}
	if upd.HasConditions != nil {
		p.HasConditions = *upd.HasConditions
	}
	if upd.Conditions != nil {
		p.Conditions = *upd.Conditions
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, ok := m.byUser[userID]; !ok {
		return ErrNotFound
	}
	delete(m.byUser, userID)
	return nil
}

func strPtr(s string) *string   { return &s }
func boolPtr(b bool) *bool      { return &b }
func f64Ptr(f float64) *float64 { return &f }

func TestGet_InvalidIdentifier(t *testing.T) {
	svc := NewService(newMockRepo())

	if _, err := svc.Get(context.Background(), "not-a-uuid"); err == nil {
		t.Fatal("malformed id should fail before hitting the store")
	}
}

func TestGet_MissingDistinctFromEmpty(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()

	if _, err := svc.Get(context.Background(), userID.String()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing record = %v, want ErrNotFound", err)
	}

	if err := svc.CreateEmpty(context.Background(), userID); err != nil {
		t.Fatalf("CreateEmpty: %v", err)
	}
	p, err := svc.Get(context.Background(), userID.String())
	if err != nil {
		t.Fatalf("empty record should be retrievable: %v", err)
	}
	if p.BloodType != "" || p.HasAllergies {
		t.Errorf("empty record not blank: %+v", p)
	}
}

func TestSave_MergesDisjointPartials(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()

	first := ProfileUpdate{BloodType: strPtr("O+")}
	second := ProfileUpdate{
		BloodPressure: strPtr("120/80"),
		HasAllergies:  boolPtr(true),
		Allergies:     &[]string{"peanuts"},
	}
	if err := svc.Save(context.Background(), userID.String(), first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := svc.Save(context.Background(), userID.String(), second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	p, err := svc.Get(context.Background(), userID.String())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.BloodType != "O+" {
		t.Errorf("first write lost: bloodType=%q", p.BloodType)
	}
	if p.BloodPressure != "120/80" || !p.HasAllergies || len(p.Allergies) != 1 {
		t.Errorf("second write incomplete: %+v", p)
	}
}

func TestSave_CholesterolReplacedWholesale(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()

	full := ProfileUpdate{Cholesterol: &Cholesterol{
		Total: f64Ptr(200), HDL: f64Ptr(60), LDL: f64Ptr(120),
	}}
	ldlOnly := ProfileUpdate{Cholesterol: &Cholesterol{LDL: f64Ptr(5)}}

	if err := svc.Save(context.Background(), userID.String(), full); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := svc.Save(context.Background(), userID.String(), ldlOnly); err != nil {
		t.Fatalf("second save: %v", err)
	}

	p, _ := svc.Get(context.Background(), userID.String())
	if p.Cholesterol == nil {
		t.Fatal("cholesterol missing after save")
	}
	if p.Cholesterol.Total != nil || p.Cholesterol.HDL != nil {
		t.Errorf("stale readings survived a wholesale replace: %+v", p.Cholesterol)
	}
	if p.Cholesterol.LDL == nil || *p.Cholesterol.LDL != 5 {
		t.Errorf("ldl = %v, want 5", p.Cholesterol.LDL)
	}
}

func TestDelete(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()

	if err := svc.Delete(context.Background(), userID.String()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete of missing record = %v, want ErrNotFound", err)
	}

	if err := svc.Save(context.Background(), userID.String(), ProfileUpdate{BloodType: strPtr("A-")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Delete(context.Background(), userID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), userID.String()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("record survived delete: %v", err)
	}
}
