// Package completion derives a 0-100 profile completion percentage from a
// user's basic profile and health profile. The scorer is a pure function;
// it never touches the store.
package completion

// BasicView is the slice of the user record the scorer looks at. Fields are
// stored as strings with "" meaning unset.
type BasicView struct {
	Age       string
	Height    string
	Weight    string
	Ethnicity string
	Sex       string
}

// Cholesterol mirrors the health profile sub-record. A nil field is unset;
// a pointer to 0 is a real reading and counts as filled in.
type Cholesterol struct {
	Total *float64
	HDL   *float64
	LDL   *float64
}

// HealthView is the slice of the health profile the scorer looks at.
type HealthView struct {
	BloodPressure string
	BloodType     string
	Cholesterol   *Cholesterol
	HasAllergies  bool
	HasConditions bool
}

const (
	pointsPerField = 10
	sideCap        = 50
)

// Score returns the completion percentage in [0,100]. Each side (basic and
// health) contributes at most 50: ten points per populated field, capped.
//
// A basic field is populated iff it is not the empty string. A health flag
// counts only when true: the flags default to false and an unset flag must
// not masquerade as filled in. Cholesterol counts when at least one of
// total/hdl/ldl is set, even if the others are absent.
func Score(basic BasicView, health HealthView) int {
	return basicScore(basic) + healthScore(health)
}

func basicScore(b BasicView) int {
	n := 0
	for _, v := range []string{b.Age, b.Height, b.Weight, b.Ethnicity, b.Sex} {
		if v != "" {
			n++
		}
	}
	return capped(n)
}

func healthScore(h HealthView) int {
	n := 0
	if h.BloodPressure != "" {
		n++
	}
	if h.BloodType != "" {
		n++
	}
	if h.Cholesterol != nil &&
		(h.Cholesterol.Total != nil || h.Cholesterol.HDL != nil || h.Cholesterol.LDL != nil) {
		n++
	}
	if h.HasAllergies {
		n++
	}
	if h.HasConditions {
		n++
	}
	return capped(n)
}

func capped(n int) int {
	s := n * pointsPerField
	if s > sideCap {
		return sideCap
	}
	return s
}
