package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestToneMap(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		maxValue float64
		expected core.Vec3
	}{
		{"zero maximum is black", core.NewVec3(0, 0, 0), 0, core.Vec3{}},
		{"maximum maps to one", core.NewVec3(2, 0, 0), 2, core.NewVec3(1, 0, 0)},
		{"unit maximum", core.NewVec3(1, 1, 1), 1, core.NewVec3(1, 1, 1)},
		{
			"mid range",
			core.NewVec3(1, 1, 1),
			4,
			core.NewVec3(
				math.Pow(1*(1+1.0/16)/2, 1/2.2),
				math.Pow(1*(1+1.0/16)/2, 1/2.2),
				math.Pow(1*(1+1.0/16)/2, 1/2.2),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "tone mapped color", tt.expected, ToneMap(tt.input, tt.maxValue))
		})
	}
}

func TestToneMap_Monotonic(t *testing.T) {
	previous := -1.0
	for c := 0.0; c <= 5; c += 0.25 {
		mapped := ToneMap(core.NewVec3(c, c, c), 5).X
		if mapped < previous {
			t.Errorf("Tone mapping is not monotonic at %f: %f < %f", c, mapped, previous)
		}
		previous = mapped
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		input    float64
		expected uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 127},
		{1.5, 255},
		{-0.5, 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := quantize(tt.input); got != tt.expected {
			t.Errorf("quantize(%f) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}
