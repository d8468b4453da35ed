package geom

import (
	"math"
	"testing"

	"lumen/pkg/vmath"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name  string
		start vmath.Vec3
		dir   vmath.Vec3
	}{
		{
			name:  "pointing away",
			start: vmath.NewVec3(0, 0, -5),
			dir:   vmath.NewVec3(0, 0, -1),
		},
		{
			name:  "parallel offset",
			start: vmath.NewVec3(2, 0, 0),
			dir:   vmath.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info IntersectionInfo
			sphere.Intersect(tt.start, tt.dir, 0.0, &info)
			if info.Hit {
				t.Errorf("Expected miss, but got hit at t=%f", info.Distance)
			}
		})
	}
}

func TestSphere_Intersect_MissLeavesFieldsUntouched(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 1.0)

	info := IntersectionInfo{
		Hit:      true,
		Distance: 42.0,
		Point:    vmath.NewVec3(1, 2, 3),
	}
	sphere.Intersect(vmath.NewVec3(0, 0, -5), vmath.NewVec3(0, 0, -1), 0.0, &info)

	if info.Hit {
		t.Fatal("Expected miss, but got hit")
	}
	if info.Distance != 42.0 || info.Point != vmath.NewVec3(1, 2, 3) {
		t.Error("Miss must leave non-flag fields untouched")
	}
}

func TestSphere_Intersect_NearestRoot(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 1.0)
	start := vmath.NewVec3(0, 0, -5)
	dir := vmath.NewVec3(0, 0, 1)

	var info IntersectionInfo
	sphere.Intersect(start, dir, 0.0, &info)

	if !info.Hit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(info.Distance-4.0) > 1e-9 {
		t.Errorf("Expected nearest root t=4, got t=%f", info.Distance)
	}

	// The reconstructed hit point must lie on the sphere surface
	reconstructed := start.Add(dir.Mul(info.Distance))
	if d := math.Abs(reconstructed.Sub(sphere.Center).Length() - sphere.Radius); d > 1e-9 {
		t.Errorf("Hit point is %g off the sphere surface", d)
	}
	if reconstructed.Sub(info.Point).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", reconstructed, info.Point)
	}
	if info.Object != Primitive(sphere) {
		t.Error("Expected hit object to be the sphere")
	}
}

func TestSphere_Intersect_StartDistBoundary(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 1.0)
	start := vmath.NewVec3(0, 0, -5)
	dir := vmath.NewVec3(0, 0, 1)

	tests := []struct {
		name      string
		startDist float64
		wantHit   bool
		wantT     float64
	}{
		{name: "exactly at near root", startDist: 4.0, wantHit: true, wantT: 4.0},
		{name: "past near root falls to far root", startDist: 4.0 + 1e-9, wantHit: true, wantT: 6.0},
		{name: "exactly at far root", startDist: 6.0, wantHit: true, wantT: 6.0},
		{name: "past far root", startDist: 6.0 + 1e-9, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info IntersectionInfo
			sphere.Intersect(start, dir, tt.startDist, &info)
			if info.Hit != tt.wantHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.wantHit, info.Hit)
			}
			if tt.wantHit && math.Abs(info.Distance-tt.wantT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.wantT, info.Distance)
			}
		})
	}
}

func TestSphere_Intersect_OriginInside(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 1.0)

	var info IntersectionInfo
	sphere.Intersect(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, 1), 0.0, &info)

	if !info.Hit {
		t.Fatal("Expected far-root hit from inside the sphere")
	}
	if math.Abs(info.Distance-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", info.Distance)
	}
	if info.Normal.Sub(vmath.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected outward normal (0,0,1), got %v", info.Normal)
	}
}

func TestSphere_Support(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(1, 0, 0), 2.0)

	var info IntersectionInfo
	sphere.Support(vmath.NewVec3(0, 0, 5), &info)

	expected := vmath.NewVec3(1, 0, 2)
	if info.Point.Sub(expected).Length() > 1e-9 {
		t.Errorf("Expected support point %v, got %v", expected, info.Point)
	}
}

func TestSphere_Finite(t *testing.T) {
	if !NewSphere(vmath.NewVec3(0, 0, 0), 1.0).Finite() {
		t.Error("Spheres are bounded")
	}
	if NewSkySphere().Finite() {
		t.Error("Sky spheres are unbounded")
	}
}

func TestSphere_RadiusHonored(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 3.0)

	var info IntersectionInfo
	sphere.Intersect(vmath.NewVec3(0, 0, -5), vmath.NewVec3(0, 0, 1), 0.0, &info)

	if !info.Hit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(info.Distance-2.0) > 1e-9 {
		t.Errorf("Expected t=2 for radius 3, got t=%f", info.Distance)
	}
}

func TestSkySphere_Intersect_AlwaysHits(t *testing.T) {
	sky := NewSkySphere()

	var info IntersectionInfo
	sky.Intersect(vmath.NewVec3(10, -3, 7), vmath.NewVec3(0, 1, 0), 0.0, &info)

	if !info.Hit {
		t.Fatal("Sky sphere must hit every ray")
	}
	if info.Object != Primitive(sky) {
		t.Error("Expected hit object to be the sky sphere")
	}
	if info.Normal.Sub(vmath.NewVec3(0, -1, 0)).Length() > 1e-9 {
		t.Errorf("Expected normal facing back along the ray, got %v", info.Normal)
	}
}
