package renderer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrInvalidFOV        = errors.New("invalid field of view")
	ErrInvalidDepth      = errors.New("invalid recursion depth")
	ErrInvalidMode       = errors.New("invalid render mode")
	ErrInvalidCamera     = errors.New("invalid camera placement")
)

// RenderMode selects what the renderer computes per pixel
type RenderMode string

const (
	ModeFull   RenderMode = "full"   // Whitted shading, tone mapped
	ModeNormal RenderMode = "normal" // Shading normals as colors
	ModeDepth  RenderMode = "depth"  // Distance to nearest hit as gray
)

// ParseRenderMode converts a mode name into a RenderMode
func ParseRenderMode(name string) (RenderMode, error) {
	mode := RenderMode(strings.ToLower(strings.TrimSpace(name)))
	switch mode {
	case ModeFull, ModeNormal, ModeDepth:
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q (expected full, normal or depth)", ErrInvalidMode, name)
}

// CameraOptions describes a pinhole camera and the output resolution
type CameraOptions struct {
	LookFrom core.Vec3 // Eye position
	LookTo   core.Vec3 // Point the camera looks at
	FOV      float64   // Vertical field of view in radians
	Width    int       // Image width in pixels
	Height   int       // Image height in pixels
}

// DefaultCameraOptions returns a 640x480 camera at the origin looking down -Z
func DefaultCameraOptions() CameraOptions {
	return CameraOptions{
		LookFrom: core.NewVec3(0, 0, 0),
		LookTo:   core.NewVec3(0, 0, -1),
		FOV:      math.Pi / 2,
		Width:    640,
		Height:   480,
	}
}

// RenderOptions contains rendering configuration
type RenderOptions struct {
	Mode       RenderMode  // full, normal or depth
	Depth      int         // Maximum recursion depth, only used in full mode
	NumWorkers int         // Number of parallel workers (0 = use CPU count)
	TileSize   int         // Size of each square tile in pixels
	Logger     core.Logger // Optional; nil discards output
}

// DefaultRenderOptions returns sensible default values
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Mode:       ModeFull,
		Depth:      4,
		NumWorkers: 0,
		TileSize:   32,
	}
}

// ValidateOptions checks camera and render options before any work is done
func ValidateOptions(cam CameraOptions, opts RenderOptions) error {
	if cam.Width <= 0 || cam.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, cam.Width, cam.Height)
	}
	if !(cam.FOV > 0 && cam.FOV < math.Pi) {
		return fmt.Errorf("%w: %g radians (must be in (0, pi))", ErrInvalidFOV, cam.FOV)
	}
	if cam.LookFrom.Equals(cam.LookTo) {
		return fmt.Errorf("%w: position and target coincide", ErrInvalidCamera)
	}
	if opts.Depth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, opts.Depth)
	}
	if _, err := ParseRenderMode(string(opts.Mode)); err != nil {
		return err
	}
	return nil
}
