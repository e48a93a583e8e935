package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Intersection contains information about a ray-primitive intersection
type Intersection struct {
	Position core.Vec3 // Point of intersection
	Normal   core.Vec3 // Surface normal, oriented against the incoming ray
	Distance float64   // Distance from the ray origin to Position
}

// Shape interface for primitives that can be hit by rays
type Shape interface {
	Hit(ray core.Ray) (Intersection, bool)
}
