package healthprofile

import "time"

// Cholesterol carries the three lipid readings. A reading left nil was
// never recorded, which is distinct from a recorded zero.
type Cholesterol struct {
	Total *float64 `json:"total,omitempty"`
	HDL   *float64 `json:"hdl,omitempty"`
	LDL   *float64 `json:"ldl,omitempty"`
}

// Profile is the per-user health record. Exactly one exists per user; an
// empty one is paired with the account at signup.
type Profile struct {
	BloodType     string       `db:"blood_type" json:"bloodType"`
	BloodPressure string       `db:"blood_pressure" json:"bloodPressure"`
	Cholesterol   *Cholesterol `json:"cholesterol,omitempty"`
	HasAllergies  bool         `db:"has_allergies" json:"hasAllergies"`
	Allergies     []string     `db:"allergies" json:"allergies"`
	HasConditions bool         `db:"has_conditions" json:"hasConditions"`
	Conditions    []string     `db:"conditions" json:"conditions"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updatedAt"`
}

// ProfileUpdate is a partial write. Nil fields are left untouched by Save;
// a non-nil Cholesterol replaces the stored readings wholesale.
type ProfileUpdate struct {
	BloodType     *string      `json:"bloodType,omitempty"`
	BloodPressure *string      `json:"bloodPressure,omitempty"`
	Cholesterol   *Cholesterol `json:"cholesterol,omitempty"`
	HasAllergies  *bool        `json:"hasAllergies,omitempty"`
	Allergies     *[]string    `json:"allergies,omitempty"`
	HasConditions *bool        `json:"hasConditions,omitempty"`
	Conditions    *[]string    `json:"conditions,omitempty"`
}
