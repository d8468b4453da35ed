package geom

import "lumen/pkg/vmath"

// Group is a composite primitive holding an ordered list of children.
// Intersection picks the nearest child hit; the hit Object is the
// leaf actually struck, not the group itself.
type Group struct {
	Children []Primitive
}

// NewGroup creates a group from the given children
func NewGroup(children ...Primitive) *Group {
	return &Group{Children: children}
}

// Add appends a child to the group
func (g *Group) Add(child Primitive) {
	g.Children = append(g.Children, child)
}

// Finite reports whether every child is bounded
func (g *Group) Finite() bool {
	for _, child := range g.Children {
		if !child.Finite() {
			return false
		}
	}
	return true
}

// Support returns the child support point extremal along normal
func (g *Group) Support(normal vmath.Vec3, out *IntersectionInfo) {
	out.Hit = false

	var best float64
	var scratch IntersectionInfo
	for i, child := range g.Children {
		child.Support(normal, &scratch)
		d := scratch.Point.Dot(normal)
		if i == 0 || d > best {
			best = d
			*out = scratch
		}
	}
}

// Intersect queries every child and keeps the nearest hit
func (g *Group) Intersect(start, dir vmath.Vec3, startDist float64, out *IntersectionInfo) {
	out.Hit = false

	var scratch IntersectionInfo
	for _, child := range g.Children {
		child.Intersect(start, dir, startDist, &scratch)
		if scratch.Hit && (!out.Hit || scratch.Distance < out.Distance) {
			*out = scratch
		}
	}
}

// AmbientColour evaluates the group's own colour function. Shading
// normally goes through the hit child instead; this is the fallback
// when the group itself is asked.
func (g *Group) AmbientColour(pos vmath.Vec3, out *vmath.Vec4) {
	DefaultColour(pos, out)
}
