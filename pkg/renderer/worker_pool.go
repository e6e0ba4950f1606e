package renderer

import (
	"image"
	"runtime"
	"sync"
	"time"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Bounds image.Rectangle
	TaskID int // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Bounds image.Rectangle
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering. Tiles have non-overlapping
// bounds, so workers write the shared image without locking.
type WorkerPool struct {
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	tileSize    int
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count defaults to the number of CPUs.
func NewWorkerPool(raytracer *Raytracer, tileSize, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	maxTiles := ((raytracer.Width() + tileSize - 1) / tileSize) *
		((raytracer.Height() + tileSize - 1) / tileSize)

	return &WorkerPool{
		raytracer:   raytracer,
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		tileSize:    tileSize,
		numWorkers:  numWorkers,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Render renders the full frame in parallel and invokes onTile (if
// non-nil) for each completed tile, in completion order. The callback
// receives the shared image; the completed tile's bounds are fully
// written by the time it runs.
func (wp *WorkerPool) Render(onTile func(*image.RGBA, TileResult)) (*image.RGBA, RenderStats) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, wp.raytracer.Width(), wp.raytracer.Height()))

	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(img)
	}

	tiles := Tiles(wp.raytracer.Width(), wp.raytracer.Height(), wp.tileSize)
	for taskID, bounds := range tiles {
		wp.taskQueue <- TileTask{Bounds: bounds, TaskID: taskID}
	}
	close(wp.taskQueue)

	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()

	var stats RenderStats
	for result := range wp.resultQueue {
		stats.Merge(result.Stats)
		if onTile != nil {
			onTile(img, result)
		}
	}
	stats.Elapsed = time.Since(startTime)

	return img, stats
}

// run is the main worker loop
func (wp *WorkerPool) run(img *image.RGBA) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		stats := wp.raytracer.RenderBounds(task.Bounds, img)
		wp.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Bounds: task.Bounds,
			Stats:  stats,
		}
	}
}

// Tiles splits a width x height frame into tile bounds of at most
// tileSize x tileSize pixels, in row-major order
func Tiles(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+tileSize, width),
				min(y+tileSize, height),
			))
		}
	}
	return tiles
}
