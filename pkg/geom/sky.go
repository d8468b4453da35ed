package geom

import "lumen/pkg/vmath"

// skyDistance is the distance reported for sky-sphere hits. Large
// enough to lose against any bounded geometry, small enough to keep
// hit points representable.
const skyDistance = 1e12

// SkySphere is an unbounded background sphere surrounding the whole
// scene. Every ray hits it, so placing one in a group guarantees a
// shaded background.
type SkySphere struct {
	colour ColourFunc
}

// NewSkySphere creates a sky sphere with the default colour function
func NewSkySphere() *SkySphere {
	return &SkySphere{colour: DefaultColour}
}

// NewColouredSkySphere creates a sky sphere shaded by the given colour function
func NewColouredSkySphere(colour ColourFunc) *SkySphere {
	if colour == nil {
		colour = DefaultColour
	}
	return &SkySphere{colour: colour}
}

// Finite reports whether the sky sphere is bounded; it never is.
func (s *SkySphere) Finite() bool {
	return false
}

// Support returns a point far along normal
func (s *SkySphere) Support(normal vmath.Vec3, out *IntersectionInfo) {
	n := normal.Normalize()
	out.Hit = true
	out.Point = n.Mul(skyDistance)
	out.Normal = n
	out.Object = s
}

// Intersect always hits, at skyDistance, with the normal facing back
// along the ray.
func (s *SkySphere) Intersect(start, dir vmath.Vec3, startDist float64, out *IntersectionInfo) {
	out.Hit = true
	out.Distance = skyDistance
	out.Point = start.Add(dir.Mul(skyDistance))
	out.Normal = dir.Mul(-1)
	out.Object = s
}

// AmbientColour evaluates the sky's colour function at pos
func (s *SkySphere) AmbientColour(pos vmath.Vec3, out *vmath.Vec4) {
	s.colour(pos, out)
}
