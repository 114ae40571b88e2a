package rainclock

// Color represents an RGB color value for the drawing surface.
type Color struct{ R, G, B uint8 }

// Background is the constant backdrop color. It does not change with the
// active scheme.
var Background = Color{0, 0, 0}

// Scheme holds the four brightness tiers used to paint a falling stream:
// the head glyph, the bright zone just behind it, the dim mid-trail, and
// the dark terminal fade.
type Scheme struct {
	Name   string
	Head   Color
	Bright Color
	Dim    Color
	Dark   Color
}

// Schemes is the fixed palette table. The color toggle cycles through it in
// order, wrapping back to the first entry.
var Schemes = []Scheme{
	{
		Name:   "green",
		Head:   Color{204, 255, 204},
		Bright: Color{0, 255, 0},
		Dim:    Color{0, 170, 0},
		Dark:   Color{0, 85, 0},
	},
	{
		Name:   "amber",
		Head:   Color{255, 240, 200},
		Bright: Color{255, 191, 0},
		Dim:    Color{170, 127, 0},
		Dark:   Color{85, 64, 0},
	},
	{
		Name:   "cyan",
		Head:   Color{220, 255, 255},
		Bright: Color{0, 255, 255},
		Dim:    Color{0, 160, 170},
		Dark:   Color{0, 70, 85},
	},
	{
		Name:   "red",
		Head:   Color{255, 215, 215},
		Bright: Color{255, 0, 0},
		Dim:    Color{170, 0, 0},
		Dark:   Color{85, 0, 0},
	},
	{
		Name:   "purple",
		Head:   Color{235, 215, 255},
		Bright: Color{128, 0, 255},
		Dim:    Color{90, 0, 170},
		Dark:   Color{45, 0, 85},
	},
}

// SchemeIndex returns the position of the named scheme in Schemes, or false
// if no scheme has that name.
func SchemeIndex(name string) (int, bool) {
	for i, s := range Schemes {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}
