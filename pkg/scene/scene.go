package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// MaterialID indexes the material table owned by a Scene
type MaterialID int

// TriangleObject is a triangle bound to a material, with optional vertex normals
type TriangleObject struct {
	Triangle   geometry.Triangle
	Normals    geometry.Triangle // Per-vertex normals, valid when HasNormals is set
	HasNormals bool
	Material   MaterialID
}

// ShadingNormal returns the barycentric interpolation of the vertex normals at
// the intersection, or the geometric normal when none were supplied
func (o *TriangleObject) ShadingNormal(hit geometry.Intersection) core.Vec3 {
	if !o.HasNormals {
		return hit.Normal
	}

	weights := geometry.Barycentric(o.Triangle, hit.Position)
	normal := o.Normals.Vertex(0).Multiply(weights.X).
		Add(o.Normals.Vertex(1).Multiply(weights.Y)).
		Add(o.Normals.Vertex(2).Multiply(weights.Z))
	return normal.Normalize()
}

// SphereObject is an analytic sphere bound to a material
type SphereObject struct {
	Sphere   geometry.Sphere
	Material MaterialID
}

// Scene contains all the elements needed for rendering.
// It is built once and read-only afterwards, so it is safe for concurrent use.
type Scene struct {
	Materials []material.Material
	Triangles []TriangleObject
	Spheres   []SphereObject
	Lights    []lights.PointLight

	materialIndex map[string]MaterialID
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{materialIndex: make(map[string]MaterialID)}
}

// AddMaterial registers a material, replacing any earlier material with the same name
func (s *Scene) AddMaterial(m material.Material) MaterialID {
	if id, exists := s.materialIndex[m.Name]; exists {
		s.Materials[id] = m
		return id
	}

	id := MaterialID(len(s.Materials))
	s.Materials = append(s.Materials, m)
	s.materialIndex[m.Name] = id
	return id
}

// MaterialByName returns the ID for a material name, inserting a default
// material on first reference to an unknown name
func (s *Scene) MaterialByName(name string) MaterialID {
	if id, exists := s.materialIndex[name]; exists {
		return id
	}
	return s.AddMaterial(material.New(name))
}

// LookupMaterial returns the ID of a registered material without inserting
func (s *Scene) LookupMaterial(name string) (MaterialID, bool) {
	id, exists := s.materialIndex[name]
	return id, exists
}

// Material returns the material for an ID
func (s *Scene) Material(id MaterialID) *material.Material {
	return &s.Materials[id]
}

// AddTriangle adds a flat-shaded triangle
func (s *Scene) AddTriangle(triangle geometry.Triangle, id MaterialID) {
	s.Triangles = append(s.Triangles, TriangleObject{Triangle: triangle, Material: id})
}

// AddSmoothTriangle adds a triangle with per-vertex normals
func (s *Scene) AddSmoothTriangle(triangle, normals geometry.Triangle, id MaterialID) {
	s.Triangles = append(s.Triangles, TriangleObject{
		Triangle:   triangle,
		Normals:    normals,
		HasNormals: true,
		Material:   id,
	})
}

// AddSphere adds an analytic sphere
func (s *Scene) AddSphere(sphere geometry.Sphere, id MaterialID) {
	s.Spheres = append(s.Spheres, SphereObject{Sphere: sphere, Material: id})
}

// AddLight adds a point light
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// Hit is the nearest intersection of a ray with the scene
type Hit struct {
	geometry.Intersection
	Material *material.Material
}

// Intersect finds the nearest intersection across all triangles and spheres.
// Ties are resolved in favor of the primitive scanned last. The returned normal
// is the shading normal.
func (s *Scene) Intersect(ray core.Ray) (Hit, bool) {
	var closest Hit
	closestDist := math.Inf(1)
	found := false

	for i := range s.Triangles {
		object := &s.Triangles[i]
		intersection, isHit := object.Triangle.Hit(ray)
		if !isHit || intersection.Distance > closestDist {
			continue
		}
		closestDist = intersection.Distance
		intersection.Normal = object.ShadingNormal(intersection)
		closest = Hit{Intersection: intersection, Material: s.Material(object.Material)}
		found = true
	}

	for i := range s.Spheres {
		object := &s.Spheres[i]
		intersection, isHit := object.Sphere.Hit(ray)
		if !isHit || intersection.Distance > closestDist {
			continue
		}
		closestDist = intersection.Distance
		closest = Hit{Intersection: intersection, Material: s.Material(object.Material)}
		found = true
	}

	return closest, found
}

// Occluded reports whether any primitive is hit closer than maxDist along the ray
func (s *Scene) Occluded(ray core.Ray, maxDist float64) bool {
	for i := range s.Triangles {
		if hit, isHit := s.Triangles[i].Triangle.Hit(ray); isHit && hit.Distance < maxDist {
			return true
		}
	}
	for i := range s.Spheres {
		if hit, isHit := s.Spheres[i].Sphere.Hit(ray); isHit && hit.Distance < maxDist {
			return true
		}
	}
	return false
}

// PrimitiveCount returns the number of triangles and spheres
func (s *Scene) PrimitiveCount() int {
	return len(s.Triangles) + len(s.Spheres)
}
