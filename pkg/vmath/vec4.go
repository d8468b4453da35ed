package vmath

// Vec4 represents an RGBA colour with float components.
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// RGB creates an opaque colour from red/green/blue components
func RGB(r, g, b float64) Vec4 {
	return Vec4{X: r, Y: g, Z: b, W: 1}
}

// Mul multiplies a colour by a scalar, leaving alpha untouched
func (v Vec4) Mul(scalar float64) Vec4 {
	return Vec4{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
		W: v.W,
	}
}

// Lerp interpolates between two colours with t in [0,1]
func (v Vec4) Lerp(other Vec4, t float64) Vec4 {
	return Vec4{
		X: v.X + t*(other.X-v.X),
		Y: v.Y + t*(other.Y-v.Y),
		Z: v.Z + t*(other.Z-v.Z),
		W: v.W + t*(other.W-v.W),
	}
}
