package account

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PolicyError reports a password that fails the composition policy. The
// message is safe to relay to the caller.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return e.Reason
}

// ValidatePassword checks the signup password policy: minimum 8 characters,
// no whitespace, at least one uppercase and one lowercase letter, and no
// characters outside letters and digits.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &PolicyError{Reason: "password must be at least 8 characters long"}
	}

	var hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return &PolicyError{Reason: "password cannot contain whitespace"}
		default:
			return &PolicyError{Reason: "password cannot contain special characters"}
		}
	}

	if !hasUpper {
		return &PolicyError{Reason: "password must contain at least one uppercase letter"}
	}
	if !hasLower {
		return &PolicyError{Reason: "password must contain at least one lowercase letter"}
	}
	return nil
}

// HashPassword derives a salted one-way hash of password at the given
// bcrypt cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
