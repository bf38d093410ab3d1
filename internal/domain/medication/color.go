package medication

import "math/rand"

// Palette is the fixed set of display colors assigned to plans created
// without one.
var Palette = []string{
	"#A40000",
	"#0032A4",
	"#A4A100",
	"#02A400",
	"#7600A4",
	"#D17A00",
	"#D100C9",
}

// ColorPicker chooses a display color for a new plan. Injectable so tests
// can pin the choice.
type ColorPicker interface {
	Pick() string
}

type randomPicker struct{}

// NewRandomPicker returns a picker drawing uniformly from Palette.
func NewRandomPicker() ColorPicker {
	return randomPicker{}
}

func (randomPicker) Pick() string {
	return Palette[rand.Intn(len(Palette))]
}
