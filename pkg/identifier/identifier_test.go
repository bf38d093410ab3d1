package identifier

import (
	"testing"

	"github.com/google/uuid"
)

func TestIsValid(t *testing.T) {
	if !IsValid(uuid.New().String()) {
		t.Error("expected generated UUID to be valid")
	}
}

func TestIsValid_Malformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "not-a-uuid", "12345", "664f1c2e9d3b2a0012345678zz"} {
		if IsValid(raw) {
			t.Errorf("expected %q to be invalid", raw)
		}
	}
}

func TestParse(t *testing.T) {
	id := uuid.New()
	parsed, err := Parse(id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != id {
		t.Errorf("expected %s, got %s", id, parsed)
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("bogus")
	if err != ErrInvalid {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
