package account

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity anchor. Basic profile fields are stored as strings
// with "" meaning unset; MedicationIDs is the ordered list of medication
// plans owned by the user and is the only link between the two records.
type User struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	Name          string      `db:"name" json:"name"`
	Email         string      `db:"email" json:"email"`
	PasswordHash  string      `db:"password_hash" json:"-"`
	Age           string      `db:"age" json:"age"`
	Height        string      `db:"height" json:"height"`
	Weight        string      `db:"weight" json:"weight"`
	Ethnicity     string      `db:"ethnicity" json:"ethnicity"`
	Sex           string      `db:"sex" json:"sex"`
	MedicationIDs []uuid.UUID `db:"medication_ids" json:"medications"`
	CreatedAt     time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updatedAt"`
}

// PublicUser is the minimal projection returned at login. It never carries
// the password hash.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Public returns the login projection of u.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ProfileUpdate is a partial update of the basic profile. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	Age       *string `json:"age,omitempty"`
	Height    *string `json:"height,omitempty"`
	Weight    *string `json:"weight,omitempty"`
	Ethnicity *string `json:"ethnicity,omitempty"`
	Sex       *string `json:"sex,omitempty"`
}