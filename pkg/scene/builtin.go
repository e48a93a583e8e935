package scene

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// View is the suggested camera placement for a built-in scene
type View struct {
	LookFrom   core.Vec3
	LookTo     core.Vec3
	FOVDegrees float64
}

// builtinScenes maps scene IDs to their constructors
var builtinScenes = map[string]func() (*Scene, View){
	"cornell": NewCornellScene,
	"default": NewDefaultScene,
}

// NewBuiltinScene creates a built-in scene by ID
func NewBuiltinScene(id string) (*Scene, View, bool) {
	constructor, ok := builtinScenes[id]
	if !ok {
		return nil, View{}, false
	}
	s, view := constructor()
	return s, view, true
}

// BuiltinSceneIDs returns the sorted IDs of all built-in scenes
func BuiltinSceneIDs() []string {
	ids := make([]string, 0, len(builtinScenes))
	for id := range builtinScenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AddQuad adds the parallelogram corner, corner+u, corner+u+v, corner+v as two triangles
func (s *Scene) AddQuad(corner, u, v core.Vec3, id MaterialID) {
	p1 := corner.Add(u)
	p2 := p1.Add(v)
	p3 := corner.Add(v)
	s.AddTriangle(geometry.NewTriangle(corner, p1, p2), id)
	s.AddTriangle(geometry.NewTriangle(corner, p2, p3), id)
}

// NewCornellScene creates a classic Cornell box with a mirror sphere, a glass
// sphere and a point light below the ceiling
func NewCornellScene() (*Scene, View) {
	s := NewScene()

	white := material.New("white")
	white.DiffuseColor = core.NewVec3(0.73, 0.73, 0.73)
	red := material.New("red")
	red.DiffuseColor = core.NewVec3(0.65, 0.05, 0.05)
	green := material.New("green")
	green.DiffuseColor = core.NewVec3(0.12, 0.45, 0.15)

	mirror := material.New("mirror")
	mirror.DiffuseColor = core.NewVec3(0.8, 0.8, 0.9)
	mirror.SpecularColor = core.NewVec3(1, 1, 1)
	mirror.SpecularExponent = 200
	mirror.Albedo = material.Albedo{Diffuse: 0.2, Mirror: 0.8}

	glass := material.New("glass")
	glass.SpecularColor = core.NewVec3(1, 1, 1)
	glass.SpecularExponent = 125
	glass.RefractionIndex = 1.5
	glass.Albedo = material.Albedo{Diffuse: 0, Mirror: 0.1, Transmission: 0.9}

	whiteID := s.AddMaterial(white)
	redID := s.AddMaterial(red)
	greenID := s.AddMaterial(green)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), whiteID)       // Floor
	s.AddQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), whiteID) // Ceiling
	s.AddQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), whiteID) // Back wall
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), redID)         // Left wall
	s.AddQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), greenID) // Right wall

	s.AddSphere(geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5), s.AddMaterial(mirror))
	s.AddSphere(geometry.NewSphere(core.NewVec3(370, 90, 351), 90), s.AddMaterial(glass))

	s.AddLight(lights.NewPointLight(core.NewVec3(278, 540, 278), core.NewVec3(1, 1, 1)))

	return s, View{
		LookFrom:   core.NewVec3(278, 278, -800),
		LookTo:     core.NewVec3(278, 278, 0),
		FOVDegrees: 40,
	}
}

// NewDefaultScene creates a ground plane with a diffuse, a mirror and a glass sphere
func NewDefaultScene() (*Scene, View) {
	s := NewScene()

	ground := material.New("ground")
	ground.DiffuseColor = core.NewVec3(0.8, 0.8, 0.0)

	matte := material.New("matte")
	matte.DiffuseColor = core.NewVec3(0.1, 0.2, 0.5)
	matte.SpecularColor = core.NewVec3(0.3, 0.3, 0.3)
	matte.SpecularExponent = 50

	mirror := material.New("mirror")
	mirror.DiffuseColor = core.NewVec3(0.8, 0.6, 0.2)
	mirror.Albedo = material.Albedo{Diffuse: 0.3, Mirror: 0.7}

	glass := material.New("glass")
	glass.RefractionIndex = 1.5
	glass.Albedo = material.Albedo{Diffuse: 0, Mirror: 0.1, Transmission: 0.9}

	s.AddQuad(core.NewVec3(-50, -0.5, 50), core.NewVec3(100, 0, 0), core.NewVec3(0, 0, -100), s.AddMaterial(ground))

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), s.AddMaterial(matte))
	s.AddSphere(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5), s.AddMaterial(mirror))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5), s.AddMaterial(glass))

	s.AddLight(lights.NewPointLight(core.NewVec3(-5, 10, 5), core.NewVec3(0.8, 0.8, 0.8)))
	s.AddLight(lights.NewPointLight(core.NewVec3(5, 5, 0), core.NewVec3(0.4, 0.4, 0.4)))

	return s, View{
		LookFrom:   core.NewVec3(0, 0.75, 2),
		LookTo:     core.NewVec3(0, 0, -1),
		FOVDegrees: 40,
	}
}
