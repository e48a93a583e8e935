package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// Load reads a geometry file and the material libraries it references.
// Material library paths are resolved relative to the geometry file's directory.
// Only an unreadable geometry file is an error; everything else is logged and skipped.
func Load(filename string, logger core.Logger) (*Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	obj, err := loaders.LoadOBJ(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	for _, warning := range obj.Warnings {
		logger.Printf("Warning: %s: %s\n", filename, warning)
	}

	return Build(obj, filepath.Dir(filename), logger), nil
}

// Build converts parsed geometry into a Scene. Polygons are fan-triangulated
// around their first vertex.
func Build(obj *loaders.OBJFile, baseDir string, logger core.Logger) *Scene {
	if logger == nil {
		logger = core.NopLogger{}
	}

	s := NewScene()

	// Register every library before binding so faces read before the mtllib line still resolve
	for _, lib := range obj.MaterialLibs {
		path := lib
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, lib)
		}

		mtl, err := loaders.LoadMTL(path)
		if err != nil {
			logger.Printf("Warning: skipping material library: %v\n", err)
			continue
		}
		for _, warning := range mtl.Warnings {
			logger.Printf("Warning: %s: %s\n", path, warning)
		}
		for _, m := range mtl.Materials {
			s.AddMaterial(m)
		}
	}

	bind := func(name string) MaterialID {
		if _, exists := s.LookupMaterial(name); !exists && name != "" {
			logger.Printf("Warning: material %q is not defined, using default\n", name)
		}
		return s.MaterialByName(name)
	}

	for _, face := range obj.Faces {
		id := bind(face.Material)

		for i := 1; i < len(face.Vertices)-1; i++ {
			triangle := geometry.NewTriangle(face.Vertices[0], face.Vertices[i], face.Vertices[i+1])
			if len(face.Normals) == len(face.Vertices) {
				normals := geometry.NewTriangle(face.Normals[0], face.Normals[i], face.Normals[i+1])
				s.AddSmoothTriangle(triangle, normals, id)
			} else {
				s.AddTriangle(triangle, id)
			}
		}
	}

	for _, sphere := range obj.Spheres {
		id := bind(sphere.Material)
		s.AddSphere(geometry.NewSphere(sphere.Center, sphere.Radius), id)
	}

	for _, light := range obj.Lights {
		s.AddLight(lights.NewPointLight(light.Position, light.Intensity))
	}

	logger.Printf("Scene loaded: %d triangles, %d spheres, %d lights, %d materials\n",
		len(s.Triangles), len(s.Spheres), len(s.Lights), len(s.Materials))

	return s
}
