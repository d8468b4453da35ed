package geom

import (
	"lumen/internal/util"
	"lumen/pkg/vmath"
)

// IntersectionInfo is a scratch record filled in by intersection and
// support queries. It is allocated once and reused across rays; when
// Hit is false after a query, every other field is stale and must not
// be read. Not safe to share across concurrent ray evaluations.
type IntersectionInfo struct {
	Hit      bool
	Distance float64
	Point    vmath.Vec3
	Normal   vmath.Vec3
	Object   Primitive
}

// ColourFunc maps a 3D position to an RGBA colour, written into out.
// Implementations must be pure apart from writing out.
type ColourFunc func(pos vmath.Vec3, out *vmath.Vec4)

// DefaultColour is the colour function primitives fall back to when
// none is supplied: position components folded into [0,1] RGB.
func DefaultColour(pos vmath.Vec3, out *vmath.Vec4) {
	out.X = util.Clamp(0.5+0.5*pos.X, 0, 1)
	out.Y = util.Clamp(0.5+0.5*pos.Y, 0, 1)
	out.Z = util.Clamp(0.5+0.5*pos.Z, 0, 1)
	out.W = 1
}

// Primitive is anything that can appear as scene geometry: it can be
// intersected by rays, answer convex support queries, and shade a
// position through its own colour function.
type Primitive interface {
	// Finite reports whether the shape is spatially bounded.
	Finite() bool

	// Support computes the point on the shape extremal along normal
	// and writes it into out.
	Support(normal vmath.Vec3, out *IntersectionInfo)

	// Intersect finds the nearest intersection of the ray
	// start + t*dir with t >= startDist and writes it into out.
	// dir must be unit length. On a miss out.Hit is set false and the
	// remaining fields are left untouched.
	Intersect(start, dir vmath.Vec3, startDist float64, out *IntersectionInfo)

	// AmbientColour evaluates the primitive's colour function at pos.
	AmbientColour(pos vmath.Vec3, out *vmath.Vec4)
}
