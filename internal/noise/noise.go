package noise

import "math"

// Generator produces seeded gradient noise, used by procedural colour
// functions.
type Generator struct {
	seed int64
}

// NewGenerator creates a noise generator with the given seed
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Perlin3D generates 3D Perlin noise in roughly [-1, 1]
func (g *Generator) Perlin3D(x, y, z float64) float64 {
	// Get grid points
	x0 := math.Floor(x)
	x1 := x0 + 1.0
	y0 := math.Floor(y)
	y1 := y0 + 1.0
	z0 := math.Floor(z)
	z1 := z0 + 1.0

	// Smooth interpolation factors
	sx := smoothstep(x - x0)
	sy := smoothstep(y - y0)
	sz := smoothstep(z - z0)

	// Gradients at the cell corners
	g000 := gradient3D(hash(int(x0), int(y0), int(z0), int(g.seed)))
	g100 := gradient3D(hash(int(x1), int(y0), int(z0), int(g.seed)))
	g010 := gradient3D(hash(int(x0), int(y1), int(z0), int(g.seed)))
	g110 := gradient3D(hash(int(x1), int(y1), int(z0), int(g.seed)))
	g001 := gradient3D(hash(int(x0), int(y0), int(z1), int(g.seed)))
	g101 := gradient3D(hash(int(x1), int(y0), int(z1), int(g.seed)))
	g011 := gradient3D(hash(int(x0), int(y1), int(z1), int(g.seed)))
	g111 := gradient3D(hash(int(x1), int(y1), int(z1), int(g.seed)))

	// Dot products with the corner offsets
	dp000 := dot3D(g000[0], g000[1], g000[2], x-x0, y-y0, z-z0)
	dp100 := dot3D(g100[0], g100[1], g100[2], x-x1, y-y0, z-z0)
	dp010 := dot3D(g010[0], g010[1], g010[2], x-x0, y-y1, z-z0)
	dp110 := dot3D(g110[0], g110[1], g110[2], x-x1, y-y1, z-z0)
	dp001 := dot3D(g001[0], g001[1], g001[2], x-x0, y-y0, z-z1)
	dp101 := dot3D(g101[0], g101[1], g101[2], x-x1, y-y0, z-z1)
	dp011 := dot3D(g011[0], g011[1], g011[2], x-x0, y-y1, z-z1)
	dp111 := dot3D(g111[0], g111[1], g111[2], x-x1, y-y1, z-z1)

	// Interpolate along x
	v00 := lerp(dp000, dp100, sx)
	v10 := lerp(dp010, dp110, sx)
	v01 := lerp(dp001, dp101, sx)
	v11 := lerp(dp011, dp111, sx)

	// Interpolate along y
	v0 := lerp(v00, v10, sy)
	v1 := lerp(v01, v11, sy)

	// Interpolate along z
	return lerp(v0, v1, sz)
}

// FBM3D generates 3D Fractal Brownian Motion noise
func (g *Generator) FBM3D(x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	result := 0.0
	amplitude := 1.0
	frequency := 1.0
	max := 0.0

	for i := 0; i < octaves; i++ {
		o := Generator{seed: g.seed + int64(i)}
		result += o.Perlin3D(x*frequency, y*frequency, z*frequency) * amplitude
		max += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}

	// Normalize
	return result / max
}

// Helper functions

// hash combines the coordinates and seed to create a unique hash
func hash(x, y, z, seed int) int {
	h := seed + x*374761393 + y*668265263 + z*374761393
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// gradient3D generates a 3D gradient from a hash
func gradient3D(hash int) [3]float64 {
	h := hash & 15

	u := float64(1)
	if h&8 != 0 {
		u = -1
	}

	v := float64(1)
	if h&4 != 0 {
		v = -1
	}

	var dx, dy, dz float64

	if h&1 != 0 {
		dx = u
	}
	if h&2 != 0 {
		dy = v
	}
	if dx == 0 && dy == 0 {
		if h&3 == 0 {
			dz = u
		} else {
			dz = -u
		}
	}

	// Normalize gradient
	length := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if length > 0 {
		dx /= length
		dy /= length
		dz /= length
	}

	return [3]float64{dx, dy, dz}
}

// dot3D calculates 3D dot product
func dot3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	return x1*x2 + y1*y2 + z1*z2
}

// lerp performs linear interpolation
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// smoothstep applies the improved Perlin fade: 6t^5 - 15t^4 + 10t^3
func smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}
