package geometry

import (
	"math"

	"github.com/df07/go-ray-intersect/pkg/core"
)

// Plane represents an infinite plane in implicit form: P·Normal + Offset = 0
type Plane struct {
	Normal core.Vec3 // Unit normal vector
	Offset float64   // Signed distance term
}

// NewPlane creates a new plane from a normal and a signed offset.
// The normal is normalized and the offset rescaled to match, so the
// implicit surface is unchanged for non-unit input.
func NewPlane(normal core.Vec3, offset float64) *Plane {
	length := normal.Length()
	if length == 0 {
		return &Plane{Normal: normal, Offset: offset}
	}
	return &Plane{
		Normal: normal.Multiply(1.0 / length),
		Offset: offset / length,
	}
}

// NewPlaneFromPoint creates a new plane through a point with the given normal
func NewPlaneFromPoint(point, normal core.Vec3) *Plane {
	unit := normal.Normalize()
	return &Plane{
		Normal: unit,
		Offset: -point.Dot(unit),
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Ray parallel to the plane when the denominator is near zero
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < Epsilon {
		return nil, false
	}

	t := -(ray.Origin.Dot(p.Normal) + p.Offset) / denominator
	if !core.NewInterval(tMin, tMax).Contains(t) {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}
