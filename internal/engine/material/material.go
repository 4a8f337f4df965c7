// Package material provides fixed-function style surface materials.
package material

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	White  = Color{1, 1, 1, 1}
	Black  = Color{0, 0, 0, 1}
	Red    = Color{1, 0, 0, 1}
	Green  = Color{0, 1, 0, 1}
	Blue   = Color{0, 0, 1, 1}
	Yellow = Color{1, 1, 0, 1}
)

// RGB returns the color without alpha.
func (c Color) RGB() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Scale multiplies the RGB channels by s, keeping alpha.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// Material describes how a surface responds to light.
type Material struct {
	Ambient  Color
	Diffuse  Color
	Specular Color
	Emissive Color
	Power    float32 // specular exponent
}

// New builds a material from its components.
func New(ambient, diffuse, specular, emissive Color, power float32) Material {
	return Material{
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
		Emissive: emissive,
		Power:    power,
	}
}

// Solid returns a material reflecting c for ambient, diffuse and specular light.
func Solid(c Color) Material {
	return New(c, c, c, Black, 2.0)
}

// Preset materials.
var (
	WhiteMaterial  = Solid(White)
	YellowMaterial = Solid(Yellow)
	RedMaterial    = Solid(Red)
	GreenMaterial  = Solid(Green)
	BlueMaterial   = Solid(Blue)
)

// ByName returns a preset material by name. ok is false for unknown names.
func ByName(name string) (Material, bool) {
	switch name {
	case "white":
		return WhiteMaterial, true
	case "yellow":
		return YellowMaterial, true
	case "red":
		return RedMaterial, true
	case "green":
		return GreenMaterial, true
	case "blue":
		return BlueMaterial, true
	}
	return Material{}, false
}
