package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func TestParseVec3(t *testing.T) {
	tests := []struct {
		input       string
		expected    core.Vec3
		expectError bool
	}{
		{"0,0,0", core.NewVec3(0, 0, 0), false},
		{"1.5, -2, 3e1", core.NewVec3(1.5, -2, 30), false},
		{"1,2", core.Vec3{}, true},
		{"1,2,3,4", core.Vec3{}, true},
		{"a,b,c", core.Vec3{}, true},
		{"", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseVec3(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RAYTRACER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("RAYTRACER_WIDTH", "320")
	t.Setenv("RAYTRACER_FOV", "60")
	t.Setenv("RAYTRACER_MODE", "depth")
	t.Setenv("RAYTRACER_DEPTH", "not-a-number")
	t.Setenv("S3_BUCKET", "renders")

	cfg := loadConfig()

	if cfg.Width != 320 {
		t.Errorf("Expected width 320, got %d", cfg.Width)
	}
	if cfg.FOVDegrees != 60 {
		t.Errorf("Expected fov 60, got %f", cfg.FOVDegrees)
	}
	if cfg.Mode != "depth" {
		t.Errorf("Expected mode depth, got %q", cfg.Mode)
	}
	// Unparseable values fall back to the defaults
	if cfg.Depth != renderer.DefaultRenderOptions().Depth {
		t.Errorf("Expected default depth, got %d", cfg.Depth)
	}
	if cfg.S3.Bucket != "renders" {
		t.Errorf("Expected S3 bucket 'renders', got %q", cfg.S3.Bucket)
	}
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, []byte("RAYTRACER_HEIGHT=123\nRAYTRACER_SCALE=0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RAYTRACER_ENV_FILE", envFile)
	// godotenv does not override variables that are already set
	t.Setenv("RAYTRACER_HEIGHT", "")
	os.Unsetenv("RAYTRACER_HEIGHT")
	t.Setenv("RAYTRACER_SCALE", "")
	os.Unsetenv("RAYTRACER_SCALE")

	cfg := loadConfig()
	if cfg.Height != 123 {
		t.Errorf("Expected height 123 from .env file, got %d", cfg.Height)
	}
	if cfg.Scale != 0.5 {
		t.Errorf("Expected scale 0.5 from .env file, got %f", cfg.Scale)
	}
}

func TestBuildOptions(t *testing.T) {
	base := Config{Width: 64, Height: 48, FOVDegrees: 90, Depth: 3, Mode: "full", TileSize: 16}
	from := core.NewVec3(0, 0, 0)
	to := core.NewVec3(0, 0, -1)

	cam, opts, err := buildOptions(base, from, to, nil)
	if err != nil {
		t.Fatalf("buildOptions() error = %v", err)
	}
	if math.Abs(cam.FOV-math.Pi/2) > 1e-12 {
		t.Errorf("Expected fov converted to radians, got %f", cam.FOV)
	}
	if opts.Mode != renderer.ModeFull || opts.Depth != 3 || opts.TileSize != 16 {
		t.Errorf("Unexpected render options %+v", opts)
	}

	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr error
	}{
		{"bad mode", func(cfg *Config) { cfg.Mode = "sketch" }, renderer.ErrInvalidMode},
		{"bad width", func(cfg *Config) { cfg.Width = 0 }, renderer.ErrInvalidResolution},
		{"bad fov", func(cfg *Config) { cfg.FOVDegrees = 180 }, renderer.ErrInvalidFOV},
		{"bad depth", func(cfg *Config) { cfg.Depth = -2 }, renderer.ErrInvalidDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			if _, _, err := buildOptions(cfg, from, to, nil); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)
	got := defaultOutputPath("scenes/box/cornell.obj", now)
	expected := filepath.Join("output", "cornell", "render_20240301_140509.png")
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.obj")
	mtlPath := filepath.Join(dir, "scene.mtl")

	if err := os.WriteFile(mtlPath, []byte("newmtl red\nKd 1 0 0\nKa 0.1 0 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	sceneFile := `mtllib scene.mtl
usemtl red
S 0 0 -4 1
P 0 5 0 1 1 1
`
	if err := os.WriteFile(scenePath, []byte(sceneFile), 0644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "out", "frame.png")
	cfg := Config{Width: 32, Height: 24, FOVDegrees: 60, Depth: 2, Mode: "full", TileSize: 8, Output: outPath, Scale: 1}

	if err := run(cfg, scenePath, viewArgs{from: "0,0,0", to: "0,0,-1"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	img, err := imaging.Open(outPath)
	if err != nil {
		t.Fatalf("Expected rendered image at %s: %v", outPath, err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %v", img.Bounds())
	}

	if err := run(cfg, scenePath, viewArgs{from: "0,0", to: "0,0,-1"}); err == nil {
		t.Error("Expected error for malformed camera position")
	}
	if err := run(cfg, filepath.Join(dir, "missing.obj"), viewArgs{from: "0,0,0", to: "0,0,-1"}); err == nil {
		t.Error("Expected error for missing scene")
	}
}

func TestRun_BuiltinScene(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "cornell.jpg")
	cfg := Config{Width: 16, Height: 16, FOVDegrees: 90, Depth: 3, Mode: "full", TileSize: 8, Output: outPath, Scale: 1}

	if err := run(cfg, "cornell", viewArgs{from: "0,0,0", to: "0,0,-1"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("Expected output file: %v", err)
	}
}

func TestLoadScene(t *testing.T) {
	s, view, err := loadScene("default", core.NopLogger{})
	if err != nil {
		t.Fatalf("loadScene(default) error = %v", err)
	}
	if view == nil || s.PrimitiveCount() == 0 {
		t.Errorf("Expected built-in scene with a view, got view=%v primitives=%d", view, s.PrimitiveCount())
	}

	path := filepath.Join(t.TempDir(), "one.obj")
	if err := os.WriteFile(path, []byte("S 0 0 -3 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, view, err = loadScene(path, core.NopLogger{})
	if err != nil {
		t.Fatalf("loadScene(file) error = %v", err)
	}
	if view != nil {
		t.Error("Expected no view for scene files")
	}
	if len(s.Spheres) != 1 {
		t.Errorf("Expected 1 sphere, got %d", len(s.Spheres))
	}

	if err := listScenes(t.TempDir()); err != nil {
		t.Errorf("listScenes() error = %v", err)
	}
}
