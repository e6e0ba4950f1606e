package renderer

import "time"

// RenderStats contains statistics from a render pass
type RenderStats struct {
	PixelCount int           // Pixels rendered
	RayCount   int           // Rays traced
	HitCount   int           // Rays that hit geometry
	Elapsed    time.Duration // Wall-clock render time
}

// Merge accumulates another stats value into this one
func (s *RenderStats) Merge(other RenderStats) {
	s.PixelCount += other.PixelCount
	s.RayCount += other.RayCount
	s.HitCount += other.HitCount
}

// HitRate returns the fraction of rays that hit geometry
func (s *RenderStats) HitRate() float64 {
	if s.RayCount == 0 {
		return 0
	}
	return float64(s.HitCount) / float64(s.RayCount)
}
