package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	var rec core.HitRecord
	if sphere.Hit(ray, 0.001, 1000.0, &rec) {
		t.Errorf("Expected miss, but got hit at t=%f", rec.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 3)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			var rec core.HitRecord
			if !sphere.Hit(ray, 0.001, 1000.0, &rec) {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, rec.T)
			}
			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, rec.FrontFace)
			}
			if !vecNear(rec.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
			if rec.MaterialID != 3 {
				t.Errorf("Expected material id 3, got %d", rec.MaterialID)
			}
		})
	}
}

func TestSphere_Hit_DistanceFromOrigin(t *testing.T) {
	for _, r := range []float64{0.25, 0.5, 1, 2, 4} {
		sphere := NewSphere(core.NewVec3(0, 0, 0), r, 0)
		ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

		var rec core.HitRecord
		if !sphere.Hit(ray, 0.001, math.Inf(1), &rec) {
			t.Fatalf("radius %v: expected hit", r)
		}
		if math.Abs(rec.T-(5-r)) > 1e-9 {
			t.Errorf("radius %v: expected t=%f, got t=%f", r, 5-r, rec.T)
		}
		if !vecNear(rec.Normal, core.NewVec3(0, 0, 1), 1e-9) {
			t.Errorf("radius %v: expected normal (0,0,1), got %v", r, rec.Normal)
		}
		if !rec.FrontFace {
			t.Errorf("radius %v: expected front face", r)
		}
	}
}

func TestSphere_Hit_FarRootWhenNearRootOutOfRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	var rec core.HitRecord
	if !sphere.Hit(ray, 4.5, 100, &rec) {
		t.Fatal("Expected hit on far side")
	}
	if math.Abs(rec.T-6) > 1e-9 {
		t.Errorf("Expected t=6, got t=%f", rec.T)
	}
	if rec.FrontFace {
		t.Error("Expected back face hit from inside range")
	}

	if sphere.Hit(ray, 6.5, 100, &rec) {
		t.Error("Expected miss when both roots fall outside range")
	}
}

func TestSphere_Hit_Degenerate(t *testing.T) {
	var rec core.HitRecord

	zeroRadius := NewSphere(core.NewVec3(0, 0, 0), 0, 0)
	if zeroRadius.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 100, &rec) {
		t.Error("Expected zero-radius sphere to never be hit")
	}

	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, 0)
	if sphere.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0)), 0.001, 100, &rec) {
		t.Error("Expected zero-length direction to miss")
	}
}

func TestSphere_NegativeRadius(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	var rec core.HitRecord
	if !sphere.Hit(ray, 0.001, 100, &rec) {
		t.Fatal("Expected hit on inverted sphere")
	}
	// Outward normal points inward, so the outside hit is a back face
	if rec.FrontFace {
		t.Error("Expected back face for negative radius")
	}
	if !vecNear(rec.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal against ray (0,0,1), got %v", rec.Normal)
	}

	box, ok := sphere.BoundingBox()
	if !ok {
		t.Fatal("Expected sphere to be bounded")
	}
	expected := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
	if box != expected {
		t.Errorf("Expected box %v, got %v", expected, box)
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, 0)
	box, ok := sphere.BoundingBox()
	if !ok {
		t.Fatal("Expected sphere to be bounded")
	}
	if !vecNear(box.Min, core.NewVec3(0.5, 1.5, 2.5), 1e-12) || !vecNear(box.Max, core.NewVec3(1.5, 2.5, 3.5), 1e-12) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{"minus x", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"plus z", core.NewVec3(0, 0, 1), 0.75, 0.5},
		{"plus x", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"minus z", core.NewVec3(0, 0, -1), 0.25, 0.5},
		{"top", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"bottom", core.NewVec3(0, -1, 0), 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.point)
			if u < 0 || u >= 1 {
				t.Errorf("Expected u in [0,1), got %f", u)
			}
			// u is undefined at the poles
			if tt.point.Y == 0 && math.Abs(u-tt.u) > 1e-9 {
				t.Errorf("Expected u=%f, got %f", tt.u, u)
			}
			if math.Abs(v-tt.v) > 1e-9 {
				t.Errorf("Expected v=%f, got %f", tt.v, v)
			}
		})
	}
}
