package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Mode        RenderMode    // Mode the frame was rendered in
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit geometry
	TotalTiles  int           // Number of tiles dispatched
	NumWorkers  int           // Number of parallel workers used
	MaxValue    float64       // Image-wide maximum used for normalization (radiance or distance)
	Elapsed     time.Duration // Wall time spent rendering
}

// PixelSample is the raw per-pixel result before the image-wide post pass
type PixelSample struct {
	Color core.Vec3 // Radiance, remapped normal or distance depending on mode
	Hit   bool      // Whether the primary ray hit anything
}

// TileStats summarizes a single rendered tile
type TileStats struct {
	Pixels    int
	HitPixels int
	MaxValue  float64
}

// merge folds tile statistics into the frame statistics
func (rs *RenderStats) merge(ts TileStats) {
	rs.TotalPixels += ts.Pixels
	rs.HitPixels += ts.HitPixels
	if ts.MaxValue > rs.MaxValue {
		rs.MaxValue = ts.MaxValue
	}
}
