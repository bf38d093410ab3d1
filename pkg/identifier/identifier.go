// Package identifier validates the opaque record identifiers used to key
// users, health profiles, and medication plans. Records are keyed by UUID
// in the store; every adapter entry point validates the raw value here so
// malformed input never reaches the store layer.
package identifier

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalid is returned when a raw identifier does not conform to the
// store's identifier format.
var ErrInvalid = errors.New("invalid identifier")

// IsValid reports whether raw conforms to the store's identifier format.
func IsValid(raw string) bool {
	_, err := uuid.Parse(raw)
	return err == nil
}

// Parse converts raw into a store identifier, returning ErrInvalid when
// the value is malformed.
func Parse(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalid
	}
	return id, nil
}
