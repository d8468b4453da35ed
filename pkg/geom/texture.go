package geom

import (
	"math"

	"lumen/internal/noise"
	"lumen/internal/util"
	"lumen/pkg/vmath"
)

// Procedural colour functions. Each returns a ColourFunc closed over
// its parameters; primitives own the closure, nothing is shared.

// Constant returns a colour function that ignores position
func Constant(c vmath.Vec4) ColourFunc {
	return func(pos vmath.Vec3, out *vmath.Vec4) {
		*out = c
	}
}

// Checker returns a colour function alternating between two colours
// on a cubic lattice of the given cell size.
func Checker(a, b vmath.Vec4, size float64) ColourFunc {
	if size <= 0 {
		size = 1
	}
	return func(pos vmath.Vec3, out *vmath.Vec4) {
		n := int(math.Floor(pos.X/size)) +
			int(math.Floor(pos.Y/size)) +
			int(math.Floor(pos.Z/size))
		if n&1 == 0 {
			*out = a
		} else {
			*out = b
		}
	}
}

// Noise returns a colour function blending between two colours by
// fractal Perlin noise sampled at the shaded position.
func Noise(a, b vmath.Vec4, scale float64, seed int64) ColourFunc {
	if scale <= 0 {
		scale = 1
	}
	gen := noise.NewGenerator(seed)
	return func(pos vmath.Vec3, out *vmath.Vec4) {
		n := gen.FBM3D(pos.X*scale, pos.Y*scale, pos.Z*scale, 4, 2.0, 0.5)
		t := util.Clamp(0.5+0.5*n, 0, 1)
		*out = a.Lerp(b, t)
	}
}
