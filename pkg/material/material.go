package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Albedo holds the independent weights of the three light transport terms.
// The weights are not required to sum to 1.
type Albedo struct {
	Diffuse      float64 // Weight of the local diffuse and specular terms
	Mirror       float64 // Weight of the recursive reflection term
	Transmission float64 // Weight of the recursive refraction term
}

// Material describes how a surface responds to light
type Material struct {
	Name             string
	AmbientColor     core.Vec3 // Ka
	DiffuseColor     core.Vec3 // Kd
	SpecularColor    core.Vec3 // Ks
	Emission         core.Vec3 // Ke
	SpecularExponent float64   // Ns
	RefractionIndex  float64   // Ni
	Albedo           Albedo
}

// New creates a default material with the given name: black, non-emissive,
// purely diffuse, with a refraction index of 1
func New(name string) Material {
	return Material{
		Name:            name,
		RefractionIndex: 1,
		Albedo:          Albedo{Diffuse: 1},
	}
}

// IsReflective reports whether the material contributes a mirror term
func (m *Material) IsReflective() bool {
	return m.Albedo.Mirror != 0
}

// IsTransmissive reports whether the material contributes a refraction term
func (m *Material) IsTransmissive() bool {
	return m.Albedo.Transmission != 0
}
