package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer renders a loaded scene from a single camera
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	cameraOpts CameraOptions
	options    RenderOptions
	integrator integrator.Integrator
	logger     core.Logger
}

// Render loads the scene file and renders it. It is the one-call entry point
// for callers that do not need render statistics.
func Render(ctx context.Context, scenePath string, cam CameraOptions, opts RenderOptions) (*image.RGBA, error) {
	if err := ValidateOptions(cam, opts); err != nil {
		return nil, err
	}

	s, err := scene.Load(scenePath, opts.Logger)
	if err != nil {
		return nil, err
	}

	rt, err := NewRaytracer(s, cam, opts)
	if err != nil {
		return nil, err
	}

	img, _, err := rt.Render(ctx)
	return img, err
}

// NewRaytracer creates a new raytracer for an in-memory scene
func NewRaytracer(s *scene.Scene, cam CameraOptions, opts RenderOptions) (*Raytracer, error) {
	if err := ValidateOptions(cam, opts); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      s,
		camera:     NewCamera(cam),
		cameraOpts: cam,
		options:    opts,
		integrator: newIntegrator(opts),
		logger:     logger,
	}, nil
}

func newIntegrator(opts RenderOptions) integrator.Integrator {
	switch opts.Mode {
	case ModeNormal:
		return integrator.NormalIntegrator{}
	case ModeDepth:
		return integrator.DepthIntegrator{}
	default:
		return integrator.NewWhittedIntegrator(opts.Depth)
	}
}

// Render evaluates every pixel in parallel tiles, then runs the image-wide
// post pass for the selected mode. On cancellation no image is returned.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	width, height := rt.cameraOpts.Width, rt.cameraOpts.Height

	pixels := make([]PixelSample, width*height)
	tiles := NewTileGrid(width, height, rt.options.TileSize)

	workerPool := NewWorkerPool(ctx, rt, len(tiles), rt.options.NumWorkers)
	stats := RenderStats{
		Mode:       rt.options.Mode,
		TotalTiles: len(tiles),
		NumWorkers: workerPool.GetNumWorkers(),
	}

	rt.logger.Printf("Rendering %dx%d in %s mode: %d primitives, %d lights, %d tiles, %d workers\n",
		width, height, rt.options.Mode, rt.scene.PrimitiveCount(), len(rt.scene.Lights),
		len(tiles), stats.NumWorkers)

	workerPool.Start()

	submitted := 0
	var renderErr error
	for taskID, tile := range tiles {
		if err := ctx.Err(); err != nil {
			renderErr = err
			break
		}
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Pixels: pixels})
		submitted++
	}

	for i := 0; i < submitted; i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
	}
	workerPool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	img := rt.postProcess(pixels, stats.MaxValue)

	stats.Elapsed = time.Since(start)
	rt.logger.Printf("Render complete: %d/%d pixels hit, max value %.4f, %v\n",
		stats.HitPixels, stats.TotalPixels, stats.MaxValue, stats.Elapsed)

	return img, stats, nil
}

// RenderBounds evaluates the pixels inside bounds into the shared buffer
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixels []PixelSample) TileStats {
	width := rt.cameraOpts.Width
	var stats TileStats

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := rt.camera.GetRay(x, y)
			c, isHit := rt.integrator.RayColor(ray, rt.scene)

			pixels[y*width+x] = PixelSample{Color: c, Hit: isHit}
			stats.Pixels++
			if isHit {
				stats.HitPixels++
				stats.MaxValue = max(stats.MaxValue, c.MaxComponent())
			}
		}
	}

	return stats
}

// postProcess maps the raw buffer to 8-bit colors once the image-wide maximum is known
func (rt *Raytracer) postProcess(pixels []PixelSample, maxValue float64) *image.RGBA {
	width, height := rt.cameraOpts.Width, rt.cameraOpts.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, rt.pixelColor(pixels[y*width+x], maxValue))
		}
	}

	return img
}

func (rt *Raytracer) pixelColor(p PixelSample, maxValue float64) color.RGBA {
	switch rt.options.Mode {
	case ModeNormal:
		if !p.Hit {
			return color.RGBA{A: 255}
		}
		return vec3ToColor(p.Color)
	case ModeDepth:
		if !p.Hit || maxValue <= 0 {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		gray := quantize(p.Color.X / maxValue)
		return color.RGBA{R: gray, G: gray, B: gray, A: 255}
	default:
		return vec3ToColor(ToneMap(p.Color, maxValue))
	}
}
