package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SurfaceOffset is how far secondary rays start from the surface they leave
const SurfaceOffset = 1e-8

// WhittedIntegrator implements recursive Whitted-style ray tracing: direct
// lighting with hard shadows, mirror reflection and refraction
type WhittedIntegrator struct {
	MaxDepth int
}

// NewWhittedIntegrator creates a new Whitted integrator. The primary ray is
// always shaded, so a maximum depth below 1 behaves like 1.
func NewWhittedIntegrator(maxDepth int) *WhittedIntegrator {
	return &WhittedIntegrator{MaxDepth: maxDepth}
}

// RayColor implements Integrator. The result is linear radiance.
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) (core.Vec3, bool) {
	hit, isHit := s.Intersect(ray)
	if !isHit {
		return core.Vec3{}, false
	}
	return w.shadeHit(ray, hit, s, 1, false), true
}

// Shade returns the radiance arriving along ray. Depth counts from 1 for the
// primary ray; inside is set while the ray travels through a refracting medium.
func (w *WhittedIntegrator) Shade(ray core.Ray, s *scene.Scene, depth int, inside bool) core.Vec3 {
	if depth > w.maxDepth() {
		return core.Vec3{}
	}

	hit, isHit := s.Intersect(ray)
	if !isHit {
		return core.Vec3{}
	}
	return w.shadeHit(ray, hit, s, depth, inside)
}

func (w *WhittedIntegrator) maxDepth() int {
	if w.MaxDepth < 1 {
		return 1
	}
	return w.MaxDepth
}

func (w *WhittedIntegrator) shadeHit(ray core.Ray, hit scene.Hit, s *scene.Scene, depth int, inside bool) core.Vec3 {
	m := hit.Material

	var reflected core.Vec3
	if m.IsReflective() && !inside {
		reflected = w.calculateReflection(ray, hit, s, depth)
	}

	var refracted core.Vec3
	if m.IsTransmissive() {
		refracted = w.calculateRefraction(ray, hit, s, depth, inside)
	}

	diffuse, specular := w.calculateDirectLighting(ray, hit, s)

	color := m.DiffuseColor.MultiplyVec(diffuse).Multiply(m.Albedo.Diffuse)
	color = color.Add(m.SpecularColor.MultiplyVec(specular).Multiply(m.Albedo.Diffuse))
	color = color.Add(reflected.Multiply(m.Albedo.Mirror))
	color = color.Add(refracted)
	color = color.Add(m.AmbientColor)
	return color.Add(m.Emission)
}

// calculateReflection traces the mirror ray. The albedo weight is applied by the caller.
func (w *WhittedIntegrator) calculateReflection(ray core.Ray, hit scene.Hit, s *scene.Scene, depth int) core.Vec3 {
	direction := geometry.Reflect(ray.Direction, hit.Normal)
	origin := hit.Position.Add(hit.Normal.Multiply(SurfaceOffset))
	return w.Shade(core.NewRay(origin, direction), s, depth+1, false)
}

// calculateRefraction traces the transmitted ray. Only the entering leg is
// weighted by the transmission albedo; total internal reflection contributes nothing.
func (w *WhittedIntegrator) calculateRefraction(ray core.Ray, hit scene.Hit, s *scene.Scene, depth int, inside bool) core.Vec3 {
	m := hit.Material

	eta := 1 / m.RefractionIndex
	if inside {
		eta = m.RefractionIndex
	}

	direction, ok := geometry.Refract(ray.Direction, hit.Normal, eta)
	if !ok {
		return core.Vec3{}
	}

	origin := hit.Position.Subtract(hit.Normal.Multiply(SurfaceOffset))
	transmitted := w.Shade(core.NewRay(origin, direction), s, depth+1, !inside)
	if inside {
		return transmitted
	}
	return transmitted.Multiply(m.Albedo.Transmission)
}

// calculateDirectLighting accumulates unshadowed Lambertian and Phong terms over all lights
func (w *WhittedIntegrator) calculateDirectLighting(ray core.Ray, hit scene.Hit, s *scene.Scene) (core.Vec3, core.Vec3) {
	var diffuse, specular core.Vec3

	origin := hit.Position.Add(hit.Normal.Multiply(SurfaceOffset))
	for _, light := range s.Lights {
		toLight, distance := light.Illuminate(hit.Position)
		if s.Occluded(core.NewRay(origin, toLight), distance) {
			continue
		}

		cosine := math.Max(0, toLight.Dot(hit.Normal))
		diffuse = diffuse.Add(light.Intensity.Multiply(cosine))

		mirrored := geometry.Reflect(toLight.Negate(), hit.Normal)
		highlight := math.Max(0, mirrored.Negate().Dot(ray.Direction))
		specular = specular.Add(light.Intensity.Multiply(math.Pow(highlight, hit.Material.SpecularExponent)))
	}

	return diffuse, specular
}
