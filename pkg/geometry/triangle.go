package geometry

import (
	"github.com/df07/go-ray-intersect/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// A zero-area triangle is a caller precondition, not validated here.
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached unit normal
}

// NewTriangle creates a new triangle from three vertices.
// The outward normal follows the right-hand rule over (V1-V0, V2-V0).
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}
	t.computeNormal()
	return t
}

// computeNormal calculates and caches the triangle's unit normal
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Normal returns the triangle's cached unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Centroid returns the mean of the three vertices
func (t *Triangle) Centroid() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Multiply(1.0 / 3.0)
}

// Hit tests if a ray intersects with the triangle using the
// Möller–Trumbore algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	// Determinant near zero means the ray lies in the triangle's plane
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -Epsilon && a < Epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)

	// The lower bound here is Epsilon rather than tMin: hits at or just
	// past the ray origin are rejected even when the caller asked for
	// them. Plane and sphere honor tMin instead; a test pins this down.
	if tParam < Epsilon || tParam > tMax {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:     tParam,
		Point: ray.At(tParam),
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}
