package loaders

import (
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestParseMTL(t *testing.T) {
	input := `
# two materials
newmtl glass
    Ka 0.1 0.1 0.1
    Kd 0.2 0.3 0.4
    Ks 1 1 1
    Ke 0 0 0
    Ns 125
    Ni 1.5
    al 0 0.1 0.9
    illum 7

newmtl lamp
Ke 5 4 3
d 1.0
`
	mtl, err := ParseMTL(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseMTL() error = %v", err)
	}
	if len(mtl.Materials) != 2 {
		t.Fatalf("Expected 2 materials, got %d", len(mtl.Materials))
	}
	if len(mtl.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", mtl.Warnings)
	}

	glass := mtl.Materials[0]
	if glass.Name != "glass" {
		t.Errorf("Expected name 'glass', got %q", glass.Name)
	}
	if glass.AmbientColor != core.NewVec3(0.1, 0.1, 0.1) {
		t.Errorf("Unexpected Ka %v", glass.AmbientColor)
	}
	if glass.DiffuseColor != core.NewVec3(0.2, 0.3, 0.4) {
		t.Errorf("Unexpected Kd %v", glass.DiffuseColor)
	}
	if glass.SpecularColor != core.NewVec3(1, 1, 1) {
		t.Errorf("Unexpected Ks %v", glass.SpecularColor)
	}
	if glass.SpecularExponent != 125 || glass.RefractionIndex != 1.5 {
		t.Errorf("Unexpected Ns/Ni %f/%f", glass.SpecularExponent, glass.RefractionIndex)
	}
	expectedAlbedo := material.Albedo{Diffuse: 0, Mirror: 0.1, Transmission: 0.9}
	if glass.Albedo != expectedAlbedo {
		t.Errorf("Expected albedo %+v, got %+v", expectedAlbedo, glass.Albedo)
	}

	lamp := mtl.Materials[1]
	if lamp.Emission != core.NewVec3(5, 4, 3) {
		t.Errorf("Unexpected Ke %v", lamp.Emission)
	}
	// Unspecified fields keep the defaults
	if lamp.Albedo != (material.Albedo{Diffuse: 1}) || lamp.RefractionIndex != 1 {
		t.Errorf("Expected default albedo and index, got %+v", lamp)
	}
}

func TestParseMTL_Warnings(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"directive before newmtl", "Kd 1 1 1\n"},
		{"newmtl without name", "newmtl\n"},
		{"short color", "newmtl a\nKd 1 1\n"},
		{"bad number", "newmtl a\nNs abc\n"},
		{"non-positive index", "newmtl a\nNi 0\n"},
		{"negative albedo", "newmtl a\nal 1 -1 0\n"},
		{"redefinition", "newmtl a\nnewmtl a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mtl, err := ParseMTL(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseMTL() error = %v", err)
			}
			if len(mtl.Warnings) != 1 {
				t.Errorf("Expected 1 warning, got %v", mtl.Warnings)
			}
		})
	}
}

func TestParseMTL_RedefinitionReplaces(t *testing.T) {
	input := "newmtl a\nKd 1 0 0\nnewmtl b\nnewmtl a\nKs 0 1 0\n"

	mtl, err := ParseMTL(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseMTL() error = %v", err)
	}
	if len(mtl.Materials) != 2 {
		t.Fatalf("Expected 2 materials, got %d", len(mtl.Materials))
	}
	a := mtl.Materials[0]
	if a.DiffuseColor != (core.Vec3{}) || a.SpecularColor != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected the second block of 'a' to replace the first, got %+v", a)
	}
}
