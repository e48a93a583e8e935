package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an infinitesimal light source. Intensity encodes color and
// brightness jointly and is not attenuated with distance.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Illuminate returns the unit direction from point toward the light and the distance to it
func (l PointLight) Illuminate(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	return toLight.Normalize(), toLight.Length()
}
