package render

import (
	"image/color"
	"strings"
	"testing"

	"lumen/pkg/geom"
	"lumen/pkg/scene"
	"lumen/pkg/vmath"
)

func testCameraAttrs() map[string]vmath.Vec3 {
	return map[string]vmath.Vec3{
		"position":  vmath.NewVec3(0, 0, -5),
		"direction": vmath.NewVec3(0, 0, 1),
		"up":        vmath.NewVec3(0, 1, 0),
		"right":     vmath.NewVec3(1, 0, 0),
	}
}

func TestRenderer_Render_MissingRoot(t *testing.T) {
	r := New(Options{Width: 4, Height: 4}, nil)

	// An empty scene compiles, but rendering it fails before any
	// pixel work.
	_, err := r.Render(nil)
	if err == nil || !strings.Contains(err.Error(), "no root") {
		t.Errorf("Expected a no-root error, got: %v", err)
	}

	_, err = r.Render([]any{scene.KeywordCamera, testCameraAttrs()})
	if err == nil || !strings.Contains(err.Error(), "no root") {
		t.Errorf("Expected a no-root error, got: %v", err)
	}
}

func TestRenderer_Render_MissingCamera(t *testing.T) {
	r := New(Options{Width: 4, Height: 4}, nil)
	sphere := geom.NewSphere(vmath.NewVec3(0, 0, 0), 1.0)

	_, err := r.Render([]any{scene.KeywordRoot, sphere})
	if err == nil || !strings.Contains(err.Error(), "no camera") {
		t.Errorf("Expected a no-camera error, got: %v", err)
	}
}

func TestRenderer_Render_CompilationErrorPropagates(t *testing.T) {
	r := New(Options{Width: 4, Height: 4}, nil)
	_, err := r.Render([]any{scene.Keyword("banana")})
	if err == nil || !strings.Contains(err.Error(), "banana") {
		t.Errorf("Expected the compilation error to surface, got: %v", err)
	}
}

func TestRenderer_Render_CenterHitCornersBackground(t *testing.T) {
	// The 4x4 offset grid is {-0.5, -0.25, 0, 0.25} per axis, so a
	// pixel ray passes the origin at distance 5*sqrt(s/(s+1)) with
	// s = xp^2 + yp^2: 0 at (2,2), ~1.213 for its axis neighbours,
	// ~1.667 for the diagonals and ~2.236 beyond. Radius 1.5 therefore
	// hits exactly the centre cross of five pixels.
	sphere := geom.NewColouredSphere(vmath.NewVec3(0, 0, 0), 1.5, geom.Constant(vmath.RGB(1, 0, 0)))
	r := New(Options{Width: 4, Height: 4}, nil)

	img, err := r.Render([]any{
		scene.KeywordCamera, testCameraAttrs(),
		scene.KeywordRoot, sphere,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	hit := map[[2]int]bool{
		{2, 2}: true,
		{1, 2}: true, {3, 2}: true,
		{2, 1}: true, {2, 3}: true,
	}

	red := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	cam := testCameraAttrs()
	for iy := 0; iy < 4; iy++ {
		for ix := 0; ix < 4; ix++ {
			got := img.RGBAAt(ix, iy)
			if hit[[2]int{ix, iy}] {
				if got != red {
					t.Errorf("Expected pixel (%d,%d) to hit the sphere, got %v", ix, iy, got)
				}
				continue
			}

			xp := float64(ix)/4.0 - 0.5
			yp := float64(iy)/4.0 - 0.5
			dir := cam["direction"].
				Add(cam["right"].Mul(xp)).
				Sub(cam["up"].Mul(yp)).
				Normalize()
			want := PackColour(vmath.NewVec4(dir.X, dir.Y, dir.Z, 1))

			if got != want {
				t.Errorf("Expected pixel (%d,%d) to show the background %v, got %v", ix, iy, want, got)
			}
			if got == red {
				t.Errorf("Pixel (%d,%d) must not hit the sphere", ix, iy)
			}
		}
	}
}

func TestRenderer_Render_SinglePixel(t *testing.T) {
	// A miss everywhere, so the single pixel shows the background
	// derived from screen offset (-0.5, -0.5).
	sphere := geom.NewSphere(vmath.NewVec3(0, 0, 1000), 1.0)
	r := New(Options{Width: 1, Height: 1}, nil)

	img, err := r.Render([]any{
		scene.KeywordCamera, testCameraAttrs(),
		scene.KeywordRoot, sphere,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 1 || bounds.Dy() != 1 {
		t.Fatalf("Expected a 1x1 image, got %v", bounds)
	}

	cam := testCameraAttrs()
	dir := cam["direction"].
		Add(cam["right"].Mul(-0.5)).
		Sub(cam["up"].Mul(-0.5)).
		Normalize()
	want := PackColour(vmath.NewVec4(dir.X, dir.Y, dir.Z, 1))

	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("Expected pixel %v from offset (-0.5,-0.5), got %v", want, got)
	}
}

func TestRenderer_Render_DefaultSize(t *testing.T) {
	sky := geom.NewColouredSkySphere(geom.Constant(vmath.RGB(0.2, 0.2, 0.2)))
	r := New(Options{}, nil)

	img, err := r.Render([]any{
		scene.KeywordCamera, testCameraAttrs(),
		scene.KeywordRoot, sky,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != DefaultSize || bounds.Dy() != DefaultSize {
		t.Errorf("Expected a %dx%d default image, got %v", DefaultSize, DefaultSize, bounds)
	}
}

func TestRenderer_Render_ParallelMatchesSerial(t *testing.T) {
	buildScene := func() []any {
		root := geom.NewGroup(
			geom.NewColouredSphere(vmath.NewVec3(0, 0, 0), 2.0,
				geom.Checker(vmath.RGB(0, 0, 0), vmath.RGB(1, 1, 1), 0.5)),
			geom.NewSkySphere(),
		)
		return []any{
			scene.KeywordCamera, testCameraAttrs(),
			scene.KeywordRoot, root,
		}
	}

	serial, err := New(Options{Width: 16, Height: 16, NumThreads: 1}, nil).Render(buildScene())
	if err != nil {
		t.Fatalf("Serial render failed: %v", err)
	}
	parallel, err := New(Options{Width: 16, Height: 16, NumThreads: 4}, nil).Render(buildScene())
	if err != nil {
		t.Fatalf("Parallel render failed: %v", err)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if serial.RGBAAt(x, y) != parallel.RGBAAt(x, y) {
				t.Fatalf("Pixel (%d,%d) differs between serial and parallel renders", x, y)
			}
		}
	}
}

func TestPackColour(t *testing.T) {
	tests := []struct {
		name   string
		colour vmath.Vec4
		want   color.RGBA
	}{
		{name: "opaque white", colour: vmath.NewVec4(1, 1, 1, 1), want: color.RGBA{255, 255, 255, 255}},
		{name: "clamped overbright", colour: vmath.NewVec4(2, -1, 0.5, 1), want: color.RGBA{255, 0, 128, 255}},
		{name: "mid grey", colour: vmath.NewVec4(0.5, 0.5, 0.5, 0.5), want: color.RGBA{128, 128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackColour(tt.colour); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
