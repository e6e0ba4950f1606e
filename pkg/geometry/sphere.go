package geometry

import (
	"math"

	"github.com/df07/go-ray-intersect/pkg/core"
)

// Sphere represents a sphere defined by a center and a radius.
// A non-positive radius is a caller precondition, not validated here.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit tests if a ray intersects with the sphere.
// Ray directions are unit length, so the quadratic simplifies to
// t² + 2ht + c = 0 with h = direction·oc.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	interval := core.NewInterval(tMin, tMax)

	// Prefer the entry point; fall back to the exit point if the entry
	// lies outside the valid range
	root := -h - sqrtD
	if !interval.Contains(root) {
		root = -h + sqrtD
		if !interval.Contains(root) {
			return nil, false
		}
	}

	hitRecord := &HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	// Outward normal points from center to hit point
	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
