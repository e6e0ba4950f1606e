package geometry

import "github.com/df07/go-ray-intersect/pkg/core"

// HittableList aggregates shapes behind the Shape contract, so lists can
// nest inside other lists.
type HittableList struct {
	Shapes []Shape
}

// NewHittableList creates a list containing the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	return &HittableList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *HittableList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Clear removes all shapes from the list
func (l *HittableList) Clear() {
	l.Shapes = nil
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.Shapes)
}

// Hit finds the closest intersection among all shapes in the list.
// Each member is queried with the upper bound narrowed to the closest hit
// found so far, so later members can only win by being strictly closer.
// One pass, no sorting, and the result does not depend on member order.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
