package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	cfg := loadConfig()

	// Parse command line flags
	scenePath := flag.String("scene", "", "Built-in scene name or path to a geometry file (.obj)")
	from := flag.String("from", "0,0,0", "Camera position as x,y,z (built-in scenes provide their own)")
	to := flag.String("to", "0,0,-1", "Camera target as x,y,z (built-in scenes provide their own)")
	fov := flag.Float64("fov", cfg.FOVDegrees, "Vertical field of view in degrees")
	width := flag.Int("width", cfg.Width, "Image width in pixels")
	height := flag.Int("height", cfg.Height, "Image height in pixels")
	depth := flag.Int("depth", cfg.Depth, "Maximum recursion depth (full mode)")
	mode := flag.String("mode", cfg.Mode, "Render mode: 'full', 'normal' or 'depth'")
	workers := flag.Int("workers", cfg.Workers, "Number of parallel workers (0 = auto-detect CPU count)")
	tileSize := flag.Int("tile", cfg.TileSize, "Tile size in pixels")
	outputPath := flag.String("output", cfg.Output, "Output file or s3://bucket/key (default output/<scene>/render_<timestamp>.png)")
	scale := flag.Float64("scale", cfg.Scale, "Resample factor applied before saving")
	list := flag.String("list", "", "List built-in scenes and the .obj scenes in this directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *list != "" {
		if err := listScenes(*list); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Show help if requested
	if *help || *scenePath == "" {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer -scene <name|file.obj> [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Printf("Built-in scenes: %s\n", strings.Join(scene.BuiltinSceneIDs(), ", "))
		fmt.Println("Defaults can also be set with RAYTRACER_* variables or a .env file.")
		fmt.Println("S3 output uses S3_ENDPOINT, S3_REGION, S3_BUCKET, S3_ACCESS_KEY and S3_SECRET_KEY.")
		if *scenePath == "" && !*help {
			os.Exit(2)
		}
		return
	}

	cfg.FOVDegrees = *fov
	cfg.Width = *width
	cfg.Height = *height
	cfg.Depth = *depth
	cfg.Mode = *mode
	cfg.Workers = *workers
	cfg.TileSize = *tileSize
	cfg.Output = *outputPath
	cfg.Scale = *scale

	view := viewArgs{from: *from, to: *to}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "from":
			view.fromSet = true
		case "to":
			view.toSet = true
		case "fov":
			view.fovSet = true
		}
	})

	if err := run(cfg, *scenePath, view); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// viewArgs carries the camera flags and whether they were given explicitly
type viewArgs struct {
	from, to               string
	fromSet, toSet, fovSet bool
}

func run(cfg Config, sceneArg string, view viewArgs) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger()

	lookFrom, err := parseVec3(view.from)
	if err != nil {
		return fmt.Errorf("invalid -from: %w", err)
	}
	lookTo, err := parseVec3(view.to)
	if err != nil {
		return fmt.Errorf("invalid -to: %w", err)
	}

	fmt.Println("Starting Whitted Raytracer...")

	loaded, builtinView, err := loadScene(sceneArg, logger)
	if err != nil {
		return err
	}

	// Built-in scenes supply a camera unless the flags override it
	if builtinView != nil {
		if !view.fromSet {
			lookFrom = builtinView.LookFrom
		}
		if !view.toSet {
			lookTo = builtinView.LookTo
		}
		if !view.fovSet {
			cfg.FOVDegrees = builtinView.FOVDegrees
		}
	}

	cam, opts, err := buildOptions(cfg, lookFrom, lookTo, logger)
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(loaded, cam, opts)
	if err != nil {
		return err
	}

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("Render completed in %v (%d/%d pixels hit geometry)\n",
		stats.Elapsed, stats.HitPixels, stats.TotalPixels)

	var uploader *output.S3Uploader
	if cfg.S3.Enabled() {
		uploader, err = output.NewS3Uploader(cfg.S3, logger)
		if err != nil {
			return err
		}
	}

	dest := cfg.Output
	if dest == "" {
		dest = defaultOutputPath(sceneArg, time.Now())
	}

	written, err := output.Write(ctx, img, dest, output.Options{Scale: cfg.Scale, JPEGQuality: 95}, uploader)
	if err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", written)
	return nil
}

// loadScene resolves a built-in scene name or loads a geometry file
func loadScene(sceneArg string, logger core.Logger) (*scene.Scene, *scene.View, error) {
	if s, view, ok := scene.NewBuiltinScene(sceneArg); ok {
		fmt.Printf("Using built-in %s scene...\n", sceneArg)
		return s, &view, nil
	}

	s, err := scene.Load(sceneArg, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, nil, nil
}

// listScenes prints built-in scenes and the geometry files found in dir
func listScenes(dir string) error {
	groups, err := scene.ListAllScenes(dir)
	if err != nil {
		return err
	}

	for _, group := range groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			if info.Description != "" {
				fmt.Printf("  %-24s %s - %s\n", info.ID, info.Name, info.Description)
			} else {
				fmt.Printf("  %-24s %s\n", info.ID, info.Name)
			}
		}
	}
	return nil
}

// defaultOutputPath returns output/<scene name>/render_<timestamp>.png
func defaultOutputPath(scenePath string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath))
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
}
