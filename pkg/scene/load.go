package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"lumen/pkg/geom"
	"lumen/pkg/vmath"
)

// The YAML scene format is a list whose entries map 1:1 onto the flat
// keyword sequence the compiler consumes: a single-key map binds a
// keyword to an argument, a bare string is a keyword with no argument.
//
//	- camera:
//	    position: [0, 0, -5]
//	    direction: [0, 0, 1]
//	- root:
//	    sphere: {center: [0, 0, 0], radius: 1, colour: [1, 0, 0]}
//	- tag: example

// LoadFile reads a YAML scene description from disk
func LoadFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %v", err)
	}
	return Load(data)
}

// Load parses a YAML scene description into a flat sequence ready for
// the compiler.
func Load(data []byte) ([]any, error) {
	var doc []interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %v", err)
	}

	seq := make([]any, 0, len(doc)*2)
	for _, entry := range doc {
		switch v := entry.(type) {
		case string:
			seq = append(seq, Keyword(v))
		case map[interface{}]interface{}:
			if len(v) != 1 {
				return nil, fmt.Errorf("scene entry must bind a single keyword, got %d", len(v))
			}
			for rawKey, rawArg := range v {
				name, ok := rawKey.(string)
				if !ok {
					return nil, fmt.Errorf("scene keyword must be a string: %v", rawKey)
				}
				kw := Keyword(name)
				seq = append(seq, kw)
				if rawArg == nil {
					continue
				}
				arg, err := decodeArgument(kw, rawArg)
				if err != nil {
					return nil, err
				}
				seq = append(seq, arg)
			}
		default:
			return nil, fmt.Errorf("invalid scene entry: %v", entry)
		}
	}

	return seq, nil
}

// decodeArgument converts a raw YAML argument into the form the
// compiler expects for the given keyword. Arguments for unknown
// keywords pass through untouched so the compiler can report them.
func decodeArgument(kw Keyword, raw interface{}) (any, error) {
	switch kw {
	case KeywordCamera:
		return decodeCameraAttrs(raw)
	case KeywordRoot:
		return decodeObject(raw)
	default:
		return raw, nil
	}
}

// decodeCameraAttrs converts a YAML mapping into camera attributes
func decodeCameraAttrs(raw interface{}) (map[string]vmath.Vec3, error) {
	m, ok := raw.(map[interface{}]interface{})
	if !ok {
		return nil, fmt.Errorf("camera description must be a mapping: %v", raw)
	}
	attrs := make(map[string]vmath.Vec3, len(m))
	for rawKey, rawVal := range m {
		name, ok := rawKey.(string)
		if !ok {
			return nil, fmt.Errorf("camera attribute must be a string: %v", rawKey)
		}
		vec, err := decodeVec3(rawVal)
		if err != nil {
			return nil, fmt.Errorf("camera attribute %q: %v", name, err)
		}
		attrs[name] = vec
	}
	return attrs, nil
}

// decodeObject builds a primitive from its YAML form: a single-key
// map naming the shape.
func decodeObject(raw interface{}) (geom.Primitive, error) {
	m, ok := raw.(map[interface{}]interface{})
	if !ok || len(m) != 1 {
		return nil, fmt.Errorf("object description must name a single shape: %v", raw)
	}

	for rawKey, body := range m {
		shape, ok := rawKey.(string)
		if !ok {
			return nil, fmt.Errorf("shape name must be a string: %v", rawKey)
		}
		switch shape {
		case "sphere":
			return decodeSphere(body)
		case "sky":
			return decodeSky(body)
		case "group":
			return decodeGroup(body)
		default:
			return nil, fmt.Errorf("unrecognized shape: %v", shape)
		}
	}
	return nil, fmt.Errorf("empty object description")
}

// decodeSphere builds a sphere from {center, radius, colour forms}
func decodeSphere(body interface{}) (geom.Primitive, error) {
	fields, err := toFieldMap(body, "sphere")
	if err != nil {
		return nil, err
	}

	center := vmath.Vec3{}
	if raw, ok := fields["center"]; ok {
		if center, err = decodeVec3(raw); err != nil {
			return nil, fmt.Errorf("sphere center: %v", err)
		}
	}

	radius := 1.0
	if raw, ok := fields["radius"]; ok {
		if radius, err = toFloat(raw); err != nil {
			return nil, fmt.Errorf("sphere radius: %v", err)
		}
		if radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive: %v", radius)
		}
	}

	colour, err := decodeColourFunc(fields)
	if err != nil {
		return nil, err
	}
	return geom.NewColouredSphere(center, radius, colour), nil
}

// decodeSky builds a sky sphere from {colour forms}
func decodeSky(body interface{}) (geom.Primitive, error) {
	if body == nil {
		return geom.NewSkySphere(), nil
	}
	fields, err := toFieldMap(body, "sky")
	if err != nil {
		return nil, err
	}
	colour, err := decodeColourFunc(fields)
	if err != nil {
		return nil, err
	}
	return geom.NewColouredSkySphere(colour), nil
}

// decodeGroup builds a group from a list of object descriptions
func decodeGroup(body interface{}) (geom.Primitive, error) {
	list, ok := body.([]interface{})
	if !ok {
		return nil, fmt.Errorf("group must be a list of objects: %v", body)
	}
	group := geom.NewGroup()
	for _, entry := range list {
		child, err := decodeObject(entry)
		if err != nil {
			return nil, err
		}
		group.Add(child)
	}
	return group, nil
}

// decodeColourFunc picks the colour form present in the shape fields:
// colour (constant), checker, or noise. Absent forms leave the
// primitive on its default colour function.
func decodeColourFunc(fields map[string]interface{}) (geom.ColourFunc, error) {
	if raw, ok := fields["colour"]; ok {
		c, err := decodeColour(raw)
		if err != nil {
			return nil, fmt.Errorf("colour: %v", err)
		}
		return geom.Constant(c), nil
	}

	if raw, ok := fields["checker"]; ok {
		params, err := toFieldMap(raw, "checker")
		if err != nil {
			return nil, err
		}
		a, err := decodeColourField(params, "a", vmath.RGB(0, 0, 0))
		if err != nil {
			return nil, err
		}
		b, err := decodeColourField(params, "b", vmath.RGB(1, 1, 1))
		if err != nil {
			return nil, err
		}
		size := 1.0
		if rawSize, ok := params["size"]; ok {
			if size, err = toFloat(rawSize); err != nil {
				return nil, fmt.Errorf("checker size: %v", err)
			}
		}
		return geom.Checker(a, b, size), nil
	}

	if raw, ok := fields["noise"]; ok {
		params, err := toFieldMap(raw, "noise")
		if err != nil {
			return nil, err
		}
		a, err := decodeColourField(params, "a", vmath.RGB(0, 0, 0))
		if err != nil {
			return nil, err
		}
		b, err := decodeColourField(params, "b", vmath.RGB(1, 1, 1))
		if err != nil {
			return nil, err
		}
		scale := 1.0
		if rawScale, ok := params["scale"]; ok {
			if scale, err = toFloat(rawScale); err != nil {
				return nil, fmt.Errorf("noise scale: %v", err)
			}
		}
		var seed int64
		if rawSeed, ok := params["seed"]; ok {
			f, err := toFloat(rawSeed)
			if err != nil {
				return nil, fmt.Errorf("noise seed: %v", err)
			}
			seed = int64(f)
		}
		return geom.Noise(a, b, scale, seed), nil
	}

	return nil, nil
}

// decodeColourField reads an optional colour parameter with a default
func decodeColourField(params map[string]interface{}, key string, fallback vmath.Vec4) (vmath.Vec4, error) {
	raw, ok := params[key]
	if !ok {
		return fallback, nil
	}
	c, err := decodeColour(raw)
	if err != nil {
		return vmath.Vec4{}, fmt.Errorf("colour %q: %v", key, err)
	}
	return c, nil
}

// toFieldMap converts a YAML mapping to string-keyed fields
func toFieldMap(raw interface{}, what string) (map[string]interface{}, error) {
	if raw == nil {
		return map[string]interface{}{}, nil
	}
	m, ok := raw.(map[interface{}]interface{})
	if !ok {
		return nil, fmt.Errorf("%s description must be a mapping: %v", what, raw)
	}
	fields := make(map[string]interface{}, len(m))
	for rawKey, val := range m {
		name, ok := rawKey.(string)
		if !ok {
			return nil, fmt.Errorf("%s field must be a string: %v", what, rawKey)
		}
		fields[name] = val
	}
	return fields, nil
}

// decodeVec3 converts a YAML [x, y, z] list
func decodeVec3(raw interface{}) (vmath.Vec3, error) {
	nums, err := toFloats(raw)
	if err != nil {
		return vmath.Vec3{}, err
	}
	if len(nums) != 3 {
		return vmath.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(nums))
	}
	return vmath.NewVec3(nums[0], nums[1], nums[2]), nil
}

// decodeColour converts a YAML [r, g, b] or [r, g, b, a] list
func decodeColour(raw interface{}) (vmath.Vec4, error) {
	nums, err := toFloats(raw)
	if err != nil {
		return vmath.Vec4{}, err
	}
	switch len(nums) {
	case 3:
		return vmath.RGB(nums[0], nums[1], nums[2]), nil
	case 4:
		return vmath.NewVec4(nums[0], nums[1], nums[2], nums[3]), nil
	default:
		return vmath.Vec4{}, fmt.Errorf("expected 3 or 4 components, got %d", len(nums))
	}
}

// toFloats converts a YAML list of numbers
func toFloats(raw interface{}) ([]float64, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list of numbers: %v", raw)
	}
	nums := make([]float64, len(list))
	for i, item := range list {
		f, err := toFloat(item)
		if err != nil {
			return nil, err
		}
		nums[i] = f
	}
	return nums, nil
}

// toFloat accepts the numeric types yaml.v2 produces
func toFloat(raw interface{}) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected a number: %v", raw)
	}
}
