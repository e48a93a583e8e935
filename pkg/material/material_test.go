package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNew_Defaults(t *testing.T) {
	m := New("plain")

	if m.Name != "plain" {
		t.Errorf("Expected name 'plain', got %q", m.Name)
	}
	if m.Albedo != (Albedo{Diffuse: 1}) {
		t.Errorf("Expected albedo (1,0,0), got %+v", m.Albedo)
	}
	if m.RefractionIndex != 1 {
		t.Errorf("Expected refraction index 1, got %f", m.RefractionIndex)
	}
	zero := core.Vec3{}
	if m.AmbientColor != zero || m.DiffuseColor != zero || m.SpecularColor != zero || m.Emission != zero {
		t.Errorf("Expected black colors, got %+v", m)
	}
	if m.IsReflective() || m.IsTransmissive() {
		t.Error("Default material should be neither reflective nor transmissive")
	}
}

func TestMaterial_TransportFlags(t *testing.T) {
	tests := []struct {
		name         string
		albedo       Albedo
		reflective   bool
		transmissive bool
	}{
		{"diffuse", Albedo{Diffuse: 1}, false, false},
		{"mirror", Albedo{Mirror: 0.8}, true, false},
		{"glass", Albedo{Transmission: 0.9, Mirror: 0.1}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.name)
			m.Albedo = tt.albedo
			if m.IsReflective() != tt.reflective {
				t.Errorf("IsReflective() = %t, want %t", m.IsReflective(), tt.reflective)
			}
			if m.IsTransmissive() != tt.transmissive {
				t.Errorf("IsTransmissive() = %t, want %t", m.IsTransmissive(), tt.transmissive)
			}
		})
	}
}
