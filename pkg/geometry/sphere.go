package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents an analytic sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere.
// The ray direction is expected to be normalized.
func (s Sphere) Hit(ray core.Ray) (Intersection, bool) {
	// Vector from ray origin to sphere center
	originToCenter := s.Center.Subtract(ray.Origin)

	// Projection of the center onto the ray; behind the origin means no hit
	tc := originToCenter.Dot(ray.Direction)
	if tc < 0 {
		return Intersection{}, false
	}

	centerDistSq := originToCenter.LengthSquared()
	if centerDistSq < tc*tc {
		return Intersection{}, false
	}

	// Closest approach distance between the ray and the center
	d := math.Sqrt(centerDistSq - tc*tc)
	if d > s.Radius {
		return Intersection{}, false
	}

	// Half length of the chord cut by the sphere
	halfChord := math.Sqrt(s.Radius*s.Radius - d*d)

	inside := ray.Origin.Subtract(s.Center).Length() < s.Radius

	var point core.Vec3
	if inside {
		point = ray.At(tc + halfChord)
	} else {
		point = ray.At(tc - halfChord)
	}

	normal := point.Subtract(s.Center).Normalize()
	if inside {
		normal = normal.Negate()
	}

	return Intersection{
		Position: point,
		Normal:   normal,
		Distance: point.Subtract(ray.Origin).Length(),
	}, true
}
