package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var worldUp = core.NewVec3(0, 1, 0)

// Camera generates one primary ray per pixel from a pinhole at LookFrom
type Camera struct {
	origin     core.Vec3
	right      core.Vec3
	up         core.Vec3
	forward    core.Vec3 // Points from the target back toward the eye
	toWorld    mgl64.Mat4
	tanHalfFOV float64
	width      int
	height     int
}

// NewCamera creates a camera from the given options
func NewCamera(opts CameraOptions) *Camera {
	forward := opts.LookFrom.Subtract(opts.LookTo).Normalize()

	var right, up core.Vec3
	switch {
	case forward.Equals(worldUp):
		right = core.NewVec3(-1, 0, 0)
		up = core.NewVec3(0, 0, -1)
	case forward.Equals(worldUp.Negate()):
		right = core.NewVec3(1, 0, 0)
		up = core.NewVec3(0, 0, 1)
	default:
		right = worldUp.Cross(forward).Normalize()
		up = forward.Cross(right).Normalize()
	}

	// Columns are the camera basis and the eye position
	toWorld := mgl64.Mat4FromCols(
		toMgl(right).Vec4(0),
		toMgl(up).Vec4(0),
		toMgl(forward).Vec4(0),
		toMgl(opts.LookFrom).Vec4(1),
	)

	return &Camera{
		origin:     opts.LookFrom,
		right:      right,
		up:         up,
		forward:    forward,
		toWorld:    toWorld,
		tanHalfFOV: math.Tan(opts.FOV / 2),
		width:      opts.Width,
		height:     opts.Height,
	}
}

// GetRay generates the ray through the center of pixel (x, y), with y growing downward
func (c *Camera) GetRay(x, y int) core.Ray {
	w := float64(c.width)
	h := float64(c.height)

	local := core.NewVec3(
		(2*(float64(x)+0.5)/w-1)*c.tanHalfFOV*w/h,
		-(2*(float64(y)+0.5)/h-1)*c.tanHalfFOV,
		-1,
	).Normalize()

	origin := c.transformPoint(core.Vec3{})
	target := c.transformPoint(local)
	return core.NewRay(origin, target.Subtract(origin).Normalize())
}

// Basis returns the camera's right, up and forward vectors in world space
func (c *Camera) Basis() (right, up, forward core.Vec3) {
	return c.right, c.up, c.forward
}

func (c *Camera) transformPoint(p core.Vec3) core.Vec3 {
	return fromMgl(c.toWorld.Mul4x1(toMgl(p).Vec4(1)).Vec3())
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
