package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/geometry"
	"github.com/df07/go-ray-intersect/pkg/record"
	"github.com/df07/go-ray-intersect/pkg/renderer"
	"github.com/df07/go-ray-intersect/pkg/scene"
)

// renderOptions collects the CLI configuration for one render
type renderOptions struct {
	sceneName string
	width     int
	height    int
	tileSize  int
	workers   int
	outputDir string
	recordDir string // empty disables trace recording
}

func main() {
	sceneName := flag.String("scene", "default", "Scene to render")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	tileSize := flag.Int("tile", 64, "Tile edge length in pixels")
	workers := flag.Int("workers", 0, "Worker count (0 = number of CPUs)")
	recordDir := flag.String("record", "", "Directory for render trace bundles (empty disables recording)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray Intersection Renderer")
		fmt.Println("Usage: go-ray-intersect [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	opts := renderOptions{
		sceneName: *sceneName,
		width:     *width,
		height:    *height,
		tileSize:  *tileSize,
		workers:   *workers,
		outputDir: "output",
		recordDir: *recordDir,
	}

	if err := runRender(opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runRender renders the selected scene and writes the PNG (and optional
// trace bundle) to disk
func runRender(opts renderOptions, logger core.Logger) error {
	selectedScene, err := scene.ByName(opts.sceneName)
	if err != nil {
		return err
	}

	logger.Printf("Rendering scene %q (%dx%d, %d primitives)...\n",
		selectedScene.Name, opts.width, opts.height, selectedScene.PrimitiveCount())

	camera := renderer.NewCamera(selectedScene.CameraConfig, opts.width, opts.height)
	raytracer := renderer.NewRaytracer(selectedScene.World, camera, opts.width, opts.height)

	var traceWriter *record.Writer
	if opts.recordDir != "" {
		writer, _, err := record.NewWriter(opts.recordDir, selectedScene.Name, opts.width, opts.height)
		if err != nil {
			return fmt.Errorf("open trace bundle: %w", err)
		}
		traceWriter = writer
		raytracer.SetRayHook(recordHook(writer, logger))
	}

	pool := renderer.NewWorkerPool(raytracer, opts.tileSize, opts.workers)
	img, stats := pool.Render(nil)

	logger.Printf("Render completed in %v (%d workers)\n", stats.Elapsed, pool.NumWorkers())
	logger.Printf("Rays: %d, hits: %d (%.1f%%)\n",
		stats.RayCount, stats.HitCount, stats.HitRate()*100)

	if traceWriter != nil {
		if err := traceWriter.RecordFrame(img); err != nil {
			return fmt.Errorf("record frame: %w", err)
		}
		if err := traceWriter.Close(); err != nil {
			return fmt.Errorf("close trace bundle: %w", err)
		}
		logger.Printf("Trace bundle saved to %s (%d events)\n",
			traceWriter.Directory(), traceWriter.EventCount())
	}

	outputDir := filepath.Join(opts.outputDir, selectedScene.Name)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	logger.Printf("Saved %s\n", filename)
	return nil
}

// recordHook adapts the trace writer to the renderer's ray hook. Workers
// call it concurrently; the writer serializes internally.
func recordHook(writer *record.Writer, logger core.Logger) renderer.RayHook {
	var warn sync.Once
	return func(ray core.Ray, hit *geometry.HitRecord, isHit bool) {
		event := record.RayEvent{
			Origin:    ray.Origin,
			Direction: ray.Direction,
			Hit:       isHit,
		}
		if isHit {
			event.T = hit.T
			event.Point = hit.Point
			event.Normal = hit.Normal
			event.FrontFace = hit.FrontFace
		}
		if err := writer.RecordRay(event); err != nil {
			warn.Do(func() {
				logger.Printf("Warning: trace recording failed: %v\n", err)
			})
		}
	}
}
