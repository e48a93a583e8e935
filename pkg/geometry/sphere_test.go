package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"perpendicular offset beyond radius", core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1))},
		{"sphere behind origin", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))},
		{"ray pointing sideways", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := sphere.Hit(tt.ray); isHit {
				t.Errorf("Expected miss, but got hit at distance %f", hit.Distance)
			}
		})
	}
}

func TestSphere_Hit_ThroughCenter(t *testing.T) {
	tests := []struct {
		name   string
		center core.Vec3
		radius float64
		origin core.Vec3
	}{
		{"unit sphere at origin", core.NewVec3(0, 0, 0), 1, core.NewVec3(0, 0, 5)},
		{"offset sphere", core.NewVec3(1, 2, -3), 0.5, core.NewVec3(1, 2, 4)},
		{"large sphere", core.NewVec3(0, 0, -10), 4, core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius)
			direction := tt.center.Subtract(tt.origin).Normalize()
			ray := core.NewRay(tt.origin, direction)

			hit, isHit := sphere.Hit(ray)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			expected := tt.center.Subtract(tt.origin).Length() - tt.radius
			if math.Abs(hit.Distance-expected) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", expected, hit.Distance)
			}

			// Normal points back toward the ray origin
			if !hit.Normal.Equals(direction.Negate()) {
				t.Errorf("Expected normal %v, got %v", direction.Negate(), hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_FromInsideCenterBehind(t *testing.T) {
	// The center projects behind the origin, so the far wall is not reported
	// even though the origin lies inside the sphere
	sphere := NewSphere(core.NewVec3(0, 0, 0), 10)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"moving away from center", core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, -1))},
		{"oblique away from center", core.NewRay(core.NewVec3(1, 1, 0), core.NewVec3(1, 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := sphere.Hit(tt.ray); isHit {
				t.Errorf("Expected miss, but got hit at %v", hit.Position)
			}
		})
	}
}

func TestSphere_Hit_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if !hit.Position.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected exit point (0,0,1), got %v", hit.Position)
	}
	if math.Abs(hit.Distance-1) > 1e-9 {
		t.Errorf("Expected distance 1, got %f", hit.Distance)
	}
	// Normal is flipped to face the origin inside the sphere
	if !hit.Normal.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	if !hit.Position.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected hit point (1,0,0), got %v", hit.Position)
	}
}
