package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-ray-intersect/pkg/core"
)

func TestHittableList_Hit_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, isHit := list.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss for empty list, but got hit at t=%f", hit.T)
	}
}

func TestHittableList_Hit_ClosestOfTwoSpheres(t *testing.T) {
	// Two spheres along the same ray; the near one must win regardless
	// of insertion order
	near := NewSphere(core.NewVec3(0, 0, 3), 1.0)
	far := NewSphere(core.NewVec3(0, 0, 10), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	orders := []struct {
		name   string
		shapes []Shape
	}{
		{name: "near first", shapes: []Shape{near, far}},
		{name: "far first", shapes: []Shape{far, near}},
	}

	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			list := NewHittableList(tt.shapes...)
			hit, isHit := list.Hit(ray, 0.001, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-2.0) > 1e-9 {
				t.Errorf("Expected nearest hit at t=2.0, got t=%f", hit.T)
			}
		})
	}
}

func TestHittableList_Hit_SphereInFrontOfPlane(t *testing.T) {
	// Plane behind a sphere along the same ray: the aggregate must
	// return the sphere's nearer intersection
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0)
	plane := NewPlaneFromPoint(core.NewVec3(0, 0, 20), core.NewVec3(0, 0, -1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	list := NewHittableList(plane, sphere)
	hit, isHit := list.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected sphere hit at t=4.0, got t=%f", hit.T)
	}

	expectedNormal := core.NewVec3(0, 0, -1)
	if expectedNormal.Subtract(hit.Normal).Length() > 1e-9 {
		t.Errorf("Expected sphere normal %v, got %v", expectedNormal, hit.Normal)
	}
}

func TestHittableList_Hit_MatchesIndividualMinimum(t *testing.T) {
	// The aggregate result equals the smallest t among the members'
	// individual results
	shapes := []Shape{
		NewSphere(core.NewVec3(0, 0, 8), 1.0),
		NewSphere(core.NewVec3(0.5, 0, 4), 1.0),
		NewPlaneFromPoint(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, -1)),
		NewTriangle(core.NewVec3(-1, -1, 6), core.NewVec3(1, -1, 6), core.NewVec3(0, 1, 6)),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	bestT := math.Inf(1)
	for _, shape := range shapes {
		if hit, isHit := shape.Hit(ray, 0.001, 1000.0); isHit && hit.T < bestT {
			bestT = hit.T
		}
	}

	list := NewHittableList(shapes...)
	hit, isHit := list.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-bestT) > 1e-9 {
		t.Errorf("Expected aggregate t=%f to match individual minimum, got t=%f", bestT, hit.T)
	}
}

func TestHittableList_Hit_NestedLists(t *testing.T) {
	// Lists satisfy the Shape contract, so they nest
	inner := NewHittableList(NewSphere(core.NewVec3(0, 0, 3), 1.0))
	outer := NewHittableList(inner, NewSphere(core.NewVec3(0, 0, 10), 1.0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, isHit := outer.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected nested closest hit at t=2.0, got t=%f", hit.T)
	}
}

func TestHittableList_Hit_NarrowedIntervalExcludesAll(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, 5), 1.0),
		NewSphere(core.NewVec3(0, 0, 9), 1.0),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, isHit := list.Hit(ray, 0.001, 3.0)
	if isHit {
		t.Errorf("Expected miss with tMax before both spheres, but got hit at t=%f", hit.T)
	}
}

func TestHittableList_AddClear(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	list.Add(NewSphere(core.NewVec3(0, 0, 3), 1.0))
	list.Add(NewSphere(core.NewVec3(0, 0, 7), 1.0))
	if list.Len() != 2 {
		t.Errorf("Expected 2 shapes, got %d", list.Len())
	}

	if _, isHit := list.Hit(ray, 0.001, 1000.0); !isHit {
		t.Error("Expected hit after Add, but got miss")
	}

	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Expected 0 shapes after Clear, got %d", list.Len())
	}
	if _, isHit := list.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("Expected miss after Clear, but got hit")
	}
}
