package colors

// Color is an RGBA quad with components in [0,1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.1, 0.1, 0.1, 1}
)

// FromRGB builds an opaque color from float64 components as received
// from the script runtime.
func FromRGB(r, g, b float64) Color {
	return Color{float32(r), float32(g), float32(b), 1}
}

// FromRGBA is FromRGB with an explicit alpha.
func FromRGBA(r, g, b, a float64) Color {
	return Color{float32(r), float32(g), float32(b), float32(a)}
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}
