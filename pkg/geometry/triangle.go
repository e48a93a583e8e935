package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// TriangleEpsilon guards the Möller-Trumbore determinant and the minimum hit distance
const TriangleEpsilon = 1e-7

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	v [3]core.Vec3
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	return Triangle{v: [3]core.Vec3{v0, v1, v2}}
}

// Vertex returns the i-th vertex (0, 1 or 2)
func (t Triangle) Vertex(i int) core.Vec3 {
	return t.v[i]
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.v[1].Subtract(t.v[0])
	edge2 := t.v[2].Subtract(t.v[0])
	return edge1.Cross(edge2).Length() / 2
}

// Normal returns the unit face normal given by the vertex winding order
func (t Triangle) Normal() core.Vec3 {
	edge1 := t.v[1].Subtract(t.v[0])
	edge2 := t.v[2].Subtract(t.v[0])
	return edge1.Cross(edge2).Normalize()
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t Triangle) Hit(ray core.Ray) (Intersection, bool) {
	// Calculate two edge vectors
	edge1 := t.v[1].Subtract(t.v[0])
	edge2 := t.v[2].Subtract(t.v[0])

	// Calculate determinant
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -TriangleEpsilon && a < TriangleEpsilon {
		return Intersection{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.v[0])
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Intersection{}, false
	}

	// Reject hits behind the origin and grazing self-hits
	tParam := f * edge2.Dot(q)
	if tParam < TriangleEpsilon {
		return Intersection{}, false
	}

	point := ray.At(tParam)

	normal := edge1.Cross(edge2).Normalize()
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}

	return Intersection{
		Position: point,
		Normal:   normal,
		Distance: point.Subtract(ray.Origin).Length(),
	}, true
}
