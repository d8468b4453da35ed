package geom

import (
	"math"

	"lumen/pkg/vmath"
)

// Sphere is a bounded primitive parameterized by center and radius.
type Sphere struct {
	Center vmath.Vec3
	Radius float64
	colour ColourFunc
}

// NewSphere creates a sphere with the default colour function
func NewSphere(center vmath.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius, colour: DefaultColour}
}

// NewColouredSphere creates a sphere shaded by the given colour function
func NewColouredSphere(center vmath.Vec3, radius float64, colour ColourFunc) *Sphere {
	if colour == nil {
		colour = DefaultColour
	}
	return &Sphere{Center: center, Radius: radius, colour: colour}
}

// Finite reports whether the sphere is bounded; it always is.
func (s *Sphere) Finite() bool {
	return true
}

// Support returns the surface point extremal along normal
func (s *Sphere) Support(normal vmath.Vec3, out *IntersectionInfo) {
	n := normal.Normalize()
	out.Hit = true
	out.Point = s.Center.Add(n.Mul(s.Radius))
	out.Normal = n
	out.Object = s
}

// Intersect solves the ray-sphere quadratic and reports the nearest
// root with t >= startDist. The far root is returned when the ray
// starts inside the sphere.
func (s *Sphere) Intersect(start, dir vmath.Vec3, startDist float64, out *IntersectionInfo) {
	out.Hit = false

	// Quadratic t^2 + 2*halfB*t + c = 0 for a unit direction
	oc := start.Sub(s.Center)
	halfB := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return
	}

	sqrtD := math.Sqrt(discriminant)

	// Near root first, then the far one
	t := -halfB - sqrtD
	if t < startDist {
		t = -halfB + sqrtD
		if t < startDist {
			return
		}
	}

	out.Hit = true
	out.Distance = t
	out.Point = start.Add(dir.Mul(t))
	out.Normal = out.Point.Sub(s.Center).Mul(1.0 / s.Radius)
	out.Object = s
}

// AmbientColour evaluates the sphere's colour function at pos
func (s *Sphere) AmbientColour(pos vmath.Vec3, out *vmath.Vec4) {
	s.colour(pos, out)
}
