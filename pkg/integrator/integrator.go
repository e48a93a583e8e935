package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for per-ray evaluation strategies.
// Implementations must be safe for concurrent use since the scene is shared
// read-only across render workers.
type Integrator interface {
	// RayColor evaluates a camera ray. The bool reports whether the ray hit
	// any geometry, which image-wide post passes use to treat background pixels.
	RayColor(ray core.Ray, scene *scene.Scene) (core.Vec3, bool)
}

// NormalIntegrator visualizes shading normals remapped from [-1,1] to [0,1]
type NormalIntegrator struct{}

// RayColor implements Integrator
func (NormalIntegrator) RayColor(ray core.Ray, s *scene.Scene) (core.Vec3, bool) {
	hit, isHit := s.Intersect(ray)
	if !isHit {
		return core.Vec3{}, false
	}
	return hit.Normal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5)), true
}

// DepthIntegrator returns the distance to the nearest hit in every channel
type DepthIntegrator struct{}

// RayColor implements Integrator
func (DepthIntegrator) RayColor(ray core.Ray, s *scene.Scene) (core.Vec3, bool) {
	hit, isHit := s.Intersect(ray)
	if !isHit {
		return core.Vec3{}, false
	}
	return core.NewVec3(hit.Distance, hit.Distance, hit.Distance), true
}
