package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/geometry"
)

// Query interval for primary rays: just past the camera to effectively
// unbounded
const (
	TMin = 0.001
	TMax = 1e30
)

// RayHook observes every traced ray and its result. Used by the trace
// recorder; hooks must be safe for concurrent calls when rendering with
// multiple workers.
type RayHook func(ray core.Ray, hit *geometry.HitRecord, isHit bool)

// Raytracer renders normal-visualization images of a world of shapes
type Raytracer struct {
	camera *Camera
	world  geometry.Shape
	width  int
	height int
	hook   RayHook
}

// NewRaytracer creates a raytracer for the given world and camera
func NewRaytracer(world geometry.Shape, camera *Camera, width, height int) *Raytracer {
	return &Raytracer{
		camera: camera,
		world:  world,
		width:  width,
		height: height,
	}
}

// SetRayHook installs a hook observing every traced ray
func (rt *Raytracer) SetRayHook(hook RayHook) {
	rt.hook = hook
}

// Width returns the image width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the image height in pixels
func (rt *Raytracer) Height() int { return rt.height }

// RenderPixel traces the primary ray for pixel (i, j) and returns its color
func (rt *Raytracer) RenderPixel(i, j int) (color.RGBA, bool) {
	s := (float64(i) + 0.5) / float64(rt.width)
	t := 1.0 - (float64(j)+0.5)/float64(rt.height)
	ray := rt.camera.GetRay(s, t)

	hit, isHit := rt.world.Hit(ray, TMin, TMax)
	if rt.hook != nil {
		rt.hook(ray, hit, isHit)
	}

	if !isHit {
		return backgroundColor(ray), false
	}
	return normalColor(hit.Normal), true
}

// RenderBounds renders pixels within the specified bounds into the shared
// image. Bounds from different calls must not overlap when called
// concurrently.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	var stats RenderStats

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			pixelColor, isHit := rt.RenderPixel(i, j)
			img.SetRGBA(i, j, pixelColor)

			stats.PixelCount++
			stats.RayCount++
			if isHit {
				stats.HitCount++
			}
		}
	}

	return stats
}

// RenderPass renders the full frame sequentially
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	startTime := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	stats := rt.RenderBounds(img.Bounds(), img)
	stats.Elapsed = time.Since(startTime)

	return img, stats
}

// normalColor maps a unit normal into the visible color range via
// 0.5 * (n + 1)
func normalColor(normal core.Vec3) color.RGBA {
	mapped := normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
	return vecToRGBA(mapped)
}

// backgroundColor returns the vertical white-to-blue gradient for rays
// that miss everything
func backgroundColor(ray core.Ray) color.RGBA {
	t := 0.5 * (ray.Direction.Y + 1.0)
	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return vecToRGBA(white.Multiply(1.0 - t).Add(blue.Multiply(t)))
}

// vecToRGBA converts a [0,1] color vector to 8-bit RGBA
func vecToRGBA(v core.Vec3) color.RGBA {
	clamped := v.Clamp(0, 1)
	return color.RGBA{
		R: uint8(clamped.X * 255.999),
		G: uint8(clamped.Y * 255.999),
		B: uint8(clamped.Z * 255.999),
		A: 255,
	}
}
