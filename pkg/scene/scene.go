package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/geometry"
	"github.com/df07/go-ray-intersect/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	World        *geometry.HittableList
}

// PrimitiveCount returns the total number of primitives in the scene,
// counting through nested lists
func (s *Scene) PrimitiveCount() int {
	return countShapes(s.World.Shapes)
}

func countShapes(shapes []geometry.Shape) int {
	count := 0
	for _, shape := range shapes {
		if list, ok := shape.(*geometry.HittableList); ok {
			count += countShapes(list.Shapes)
		} else {
			count++
		}
	}
	return count
}

var builders = map[string]func() *Scene{
	"default":  NewDefaultScene,
	"pyramid":  NewTrianglePyramidScene,
	"triangle": NewTriangleScene,
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName creates the named scene
func ByName(name string) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder(), nil
}

// NewDefaultScene creates a scene with a ground plane, two spheres and a
// triangle
func NewDefaultScene() *Scene {
	world := geometry.NewHittableList()

	// Ground plane at y = -0.5
	world.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), 0.5))

	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(-1.2, 0, -2.5), 0.5))

	world.Add(geometry.NewTriangle(
		core.NewVec3(0.8, -0.5, -1.5),
		core.NewVec3(1.8, -0.5, -2.0),
		core.NewVec3(1.3, 0.6, -1.8),
	))

	return &Scene{
		Name: "default",
		CameraConfig: renderer.CameraConfig{
			Center: core.NewVec3(0, 0.3, 1),
			LookAt: core.NewVec3(0, 0, -2),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   50,
		},
		World: world,
	}
}

// NewTriangleScene creates a scene with a single triangle over a ground
// plane
func NewTriangleScene() *Scene {
	world := geometry.NewHittableList()

	world.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), 1))
	world.Add(geometry.NewTriangle(
		core.NewVec3(-1, -1, -2),
		core.NewVec3(1, -1, -2),
		core.NewVec3(0, 1, -2),
	))

	return &Scene{
		Name: "triangle",
		CameraConfig: renderer.CameraConfig{
			Center: core.NewVec3(0, 0, 1),
			LookAt: core.NewVec3(0, 0, -2),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   60,
		},
		World: world,
	}
}

// NewTrianglePyramidScene creates a scene with a four-sided pyramid built
// from triangles, demonstrating nested aggregates
func NewTrianglePyramidScene() *Scene {
	apex := core.NewVec3(0, 0.8, -2)
	base := []core.Vec3{
		core.NewVec3(-0.8, -0.5, -1.2),
		core.NewVec3(0.8, -0.5, -1.2),
		core.NewVec3(0.8, -0.5, -2.8),
		core.NewVec3(-0.8, -0.5, -2.8),
	}

	// The pyramid is its own aggregate nested inside the world list
	pyramid := geometry.NewHittableList()
	for i := range base {
		pyramid.Add(geometry.NewTriangle(base[i], base[(i+1)%len(base)], apex))
	}
	pyramid.Add(geometry.NewTriangle(base[0], base[2], base[1]))
	pyramid.Add(geometry.NewTriangle(base[0], base[3], base[2]))

	world := geometry.NewHittableList()
	world.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), 0.5))
	world.Add(pyramid)

	return &Scene{
		Name: "pyramid",
		CameraConfig: renderer.CameraConfig{
			Center: core.NewVec3(0, 0.5, 1.5),
			LookAt: core.NewVec3(0, 0, -2),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   55,
		},
		World: world,
	}
}
