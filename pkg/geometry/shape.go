package geometry

import "github.com/df07/go-ray-intersect/pkg/core"

// Epsilon is the threshold used to reject near-parallel and near-degenerate
// configurations before they turn into near-zero divisions.
const Epsilon = 1e-5

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, unit length
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The outward normal must be unit length; the stored normal always
// opposes the incoming ray direction.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be hit by rays.
// Hit returns the closest intersection within [tMin, tMax], or nil and
// false when there is none. Implementations are stateless during queries,
// so one shape may be queried from many goroutines concurrently.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
