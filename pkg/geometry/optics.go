package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflect calculates the reflection of direction d off a surface with normal n
func Reflect(d, n core.Vec3) core.Vec3 {
	// r = d - 2*dot(d,n)*n
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

// Refract bends direction d through a surface with normal n using Snell's law.
// eta is the ratio of the refractive index on the incoming side to the index on
// the outgoing side. The normal is flipped when it does not oppose d.
// Returns false on total internal reflection.
func Refract(d, n core.Vec3, eta float64) (core.Vec3, bool) {
	cosIncidence := -d.Dot(n)
	if cosIncidence > 1 || cosIncidence < -1 {
		return core.Vec3{}, false
	}

	if cosIncidence < 0 {
		cosIncidence = -cosIncidence
		n = n.Negate()
	}

	k := 1 - eta*eta*(1-cosIncidence*cosIncidence)
	if k <= 0 {
		return core.Vec3{}, false
	}

	return d.Multiply(eta).Add(n.Multiply(eta*cosIncidence - math.Sqrt(k))), true
}

// Barycentric returns the barycentric coordinates of point p relative to triangle t,
// computed as ratios of sub-triangle areas. Component i weights vertex i.
func Barycentric(t Triangle, p core.Vec3) core.Vec3 {
	area := t.Area()
	if area == 0 {
		return core.Vec3{}
	}

	return core.NewVec3(
		NewTriangle(t.v[1], t.v[2], p).Area()/area,
		NewTriangle(t.v[2], t.v[0], p).Area()/area,
		NewTriangle(t.v[0], t.v[1], p).Area()/area,
	)
}
