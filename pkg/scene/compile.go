package scene

import (
	"fmt"

	"lumen/internal/logger"
	"lumen/pkg/geom"
	"lumen/pkg/vmath"
)

// Keyword marks a binding in a flat scene description sequence.
type Keyword string

// Recognized keywords
const (
	KeywordCamera Keyword = "camera"
	KeywordRoot   Keyword = "root"
	KeywordTag    Keyword = "tag"
	KeywordLight  Keyword = "light" // recognized, compilation not implemented
)

// Camera holds the compiled camera pose. The basis vectors are used
// as-is for ray generation; the compiler does not orthonormalize them.
type Camera struct {
	Position  vmath.Vec3
	Direction vmath.Vec3
	Up        vmath.Vec3
	Right     vmath.Vec3
}

// Graph is the compiled scene: a mapping from keyword to compiled
// value, at most one value per keyword.
type Graph map[Keyword]any

// Camera returns the compiled camera, if present
func (g Graph) Camera() (*Camera, bool) {
	cam, ok := g[KeywordCamera].(*Camera)
	return cam, ok
}

// Root returns the root object, if present
func (g Graph) Root() (geom.Primitive, bool) {
	root, ok := g[KeywordRoot].(geom.Primitive)
	return root, ok
}

// Tag returns the uninterpreted tag value, if present
func (g Graph) Tag() (any, bool) {
	tag, ok := g[KeywordTag]
	return tag, ok
}

// Compiler normalizes a flat scene description into a Graph. Warnings
// raised during compilation go to Log at WARN level, and only when
// ShowWarnings is set; they never abort compilation.
type Compiler struct {
	Log          *logger.Logger
	ShowWarnings bool
}

// Compile walks the sequence: each recognized keyword starts a
// binding, the following non-keyword element (if any) is its
// argument. Compiling the same keyword twice overwrites the previous
// value. An empty sequence yields an empty graph; missing root or
// camera is only an error at render time.
func (c *Compiler) Compile(seq []any) (Graph, error) {
	graph := Graph{}

	for i := 0; i < len(seq); {
		kw, ok := seq[i].(Keyword)
		if !ok {
			return nil, fmt.Errorf("unrecognized keyword: %v", seq[i])
		}
		i++

		var arg any
		if i < len(seq) {
			if _, isKeyword := seq[i].(Keyword); !isKeyword {
				arg = seq[i]
				i++
			}
		}

		value, err := c.compileValue(kw, arg)
		if err != nil {
			return nil, err
		}
		graph[kw] = value
	}

	return graph, nil
}

// compileValue dispatches per-keyword compilation
func (c *Compiler) compileValue(kw Keyword, arg any) (any, error) {
	switch kw {
	case KeywordCamera:
		return c.compileCamera(arg)
	case KeywordRoot, KeywordTag:
		// Identity pass-through; root is type-checked at render time
		return arg, nil
	case KeywordLight:
		return nil, fmt.Errorf("keyword not implemented: %v", kw)
	default:
		return nil, fmt.Errorf("unrecognized keyword: %v", kw)
	}
}

// compileCamera materializes a camera record from an optional
// attribute map. Missing up/right default silently; missing
// position/direction default with a warning.
func (c *Compiler) compileCamera(arg any) (*Camera, error) {
	var attrs map[string]vmath.Vec3
	switch m := arg.(type) {
	case nil:
	case map[string]vmath.Vec3:
		attrs = m
	default:
		return nil, fmt.Errorf("invalid camera description: %v", arg)
	}

	for key := range attrs {
		switch key {
		case "position", "direction", "up", "right":
		default:
			return nil, fmt.Errorf("unrecognized camera attribute: %v", key)
		}
	}

	cam := &Camera{
		Direction: vmath.NewVec3(0, 0, 1),
		Up:        vmath.NewVec3(0, 1, 0),
		Right:     vmath.NewVec3(1, 0, 0),
	}

	if pos, ok := attrs["position"]; ok {
		cam.Position = pos
	} else {
		c.warnf("camera has no position, defaulting to the origin")
	}
	if dir, ok := attrs["direction"]; ok {
		cam.Direction = dir
	} else {
		c.warnf("camera has no direction, defaulting to +z")
	}
	if up, ok := attrs["up"]; ok {
		cam.Up = up
	}
	if right, ok := attrs["right"]; ok {
		cam.Right = right
	}

	return cam, nil
}

// warnf emits a non-fatal compilation warning
func (c *Compiler) warnf(format string, v ...interface{}) {
	if c.ShowWarnings && c.Log != nil {
		c.Log.Warnf(format, v...)
	}
}
