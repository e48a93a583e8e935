package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Config holds CLI defaults loaded from the environment
type Config struct {
	Width      int
	Height     int
	FOVDegrees float64
	Depth      int
	Mode       string
	Workers    int
	TileSize   int
	Output     string // Empty means output/<scene>/render_<timestamp>.png
	Scale      float64
	S3         output.S3Config
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return value
}

// loadConfig reads an optional .env file, then the environment
func loadConfig() Config {
	_ = godotenv.Load(getEnv("RAYTRACER_ENV_FILE", ".env"))

	defaults := renderer.DefaultRenderOptions()
	camera := renderer.DefaultCameraOptions()

	return Config{
		Width:      getEnvInt("RAYTRACER_WIDTH", camera.Width),
		Height:     getEnvInt("RAYTRACER_HEIGHT", camera.Height),
		FOVDegrees: getEnvFloat("RAYTRACER_FOV", 90),
		Depth:      getEnvInt("RAYTRACER_DEPTH", defaults.Depth),
		Mode:       getEnv("RAYTRACER_MODE", string(defaults.Mode)),
		Workers:    getEnvInt("RAYTRACER_WORKERS", defaults.NumWorkers),
		TileSize:   getEnvInt("RAYTRACER_TILE_SIZE", defaults.TileSize),
		Output:     getEnv("RAYTRACER_OUTPUT", ""),
		Scale:      getEnvFloat("RAYTRACER_SCALE", 1),
		S3: output.S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    os.Getenv("S3_REGION"),
			Bucket:    os.Getenv("S3_BUCKET"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
	}
}

// buildOptions converts CLI values into renderer options
func buildOptions(cfg Config, from, to core.Vec3, logger core.Logger) (renderer.CameraOptions, renderer.RenderOptions, error) {
	mode, err := renderer.ParseRenderMode(cfg.Mode)
	if err != nil {
		return renderer.CameraOptions{}, renderer.RenderOptions{}, err
	}

	cam := renderer.CameraOptions{
		LookFrom: from,
		LookTo:   to,
		FOV:      mgl64.DegToRad(cfg.FOVDegrees),
		Width:    cfg.Width,
		Height:   cfg.Height,
	}
	opts := renderer.RenderOptions{
		Mode:       mode,
		Depth:      cfg.Depth,
		NumWorkers: cfg.Workers,
		TileSize:   cfg.TileSize,
		Logger:     logger,
	}

	if err := renderer.ValidateOptions(cam, opts); err != nil {
		return renderer.CameraOptions{}, renderer.RenderOptions{}, err
	}
	return cam, opts, nil
}

// parseVec3 parses "x,y,z"
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}

	var values [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		values[i] = value
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
