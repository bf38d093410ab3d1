package medication

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a single medication schedule. Plans are owned through the ordered
// id list on the user record, not by a column here.
type Plan struct {
	ID             uuid.UUID `db:"id" json:"id"`
	MedicationName string    `db:"medication_name" json:"medicationName"`
	Dosage         string    `db:"dosage" json:"dosage"`
	Frequency      string    `db:"frequency" json:"frequency"`
	Color          string    `db:"color" json:"color"`
	StartDate      time.Time `db:"start_date" json:"startDate"`
	EndDate        time.Time `db:"end_date" json:"endDate"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// Draft is the creation payload. Color is optional; a blank one is filled
// from the palette before the plan is stored.
type Draft struct {
	MedicationName string    `json:"medicationName"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Color          string    `json:"color"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
}
