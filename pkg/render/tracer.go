package render

import (
	"lumen/pkg/geom"
	"lumen/pkg/vmath"
)

// Tracer casts single-bounce rays against a root object. It owns a
// scratch IntersectionInfo reused across rays, so a Tracer must not
// be shared across goroutines.
type Tracer struct {
	root       geom.Primitive
	shadeAtHit bool
	scratch    geom.IntersectionInfo
}

// NewTracer creates a tracer for the given root object. With
// shadeAtHit false (the historical behavior) a hit is shaded by
// sampling the colour function at the ray origin rather than at the
// intersection point; true switches to hit-point sampling.
func NewTracer(root geom.Primitive, shadeAtHit bool) *Tracer {
	return &Tracer{root: root, shadeAtHit: shadeAtHit}
}

// Trace intersects the ray with the root object and writes the shaded
// colour into out. dir must be unit length. On a miss the ray
// direction itself is written as the background colour, a deliberate
// placeholder kept from the original design.
func (t *Tracer) Trace(origin, dir vmath.Vec3, out *vmath.Vec4) {
	t.root.Intersect(origin, dir, 0.0, &t.scratch)

	if t.scratch.Hit {
		pos := origin
		if t.shadeAtHit {
			pos = t.scratch.Point
		}
		// Shade through the object actually struck, which for
		// composites is the leaf, not the root.
		t.scratch.Object.AmbientColour(pos, out)
		return
	}

	out.X = dir.X
	out.Y = dir.Y
	out.Z = dir.Z
	out.W = 1
}
