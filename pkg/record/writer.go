// Package record persists render trace bundles: a compressed stream of
// per-ray intersection events plus framebuffer snapshots, described by a
// JSON manifest. Bundles are meant for offline inspection of intersection
// behavior without re-running a render.
package record

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/df07/go-ray-intersect/pkg/core"
)

const (
	eventsFileName   = "events.bin.sz"
	framesFileName   = "frames.bin.zst"
	manifestFileName = "manifest.json"
)

// Manifest describes the bundle layout so tooling can locate artefacts
type Manifest struct {
	Version    int    `json:"version"`
	CreatedAt  string `json:"created_at"`
	Scene      string `json:"scene"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	EventsPath string `json:"events_path"`
	FramesPath string `json:"frames_path"`
}

// RayEvent is one recorded intersection query and its outcome
type RayEvent struct {
	Origin    core.Vec3
	Direction core.Vec3
	Hit       bool
	T         float64
	Point     core.Vec3
	Normal    core.Vec3
	FrontFace bool
}

// rayEventRecord is the fixed-size wire form of a RayEvent
type rayEventRecord struct {
	Origin    [3]float64
	Direction [3]float64
	T         float64
	Point     [3]float64
	Normal    [3]float64
	Hit       uint8
	FrontFace uint8
	_         [6]uint8 // pad to an 8-byte multiple
}

// Writer streams render trace artefacts to disk. Ray events go through a
// snappy stream (high volume, cheap compression); frame snapshots go
// through a zstd stream. Safe for concurrent use.
type Writer struct {
	mu          sync.Mutex
	dir         string
	eventFile   *os.File
	eventStream *snappy.Writer
	frameFile   *os.File
	frameStream *zstd.Encoder
	eventCount  uint64
	frameCount  int
}

// NewWriter prepares the bundle directory and opens compressed sinks.
// The bundle lands in root/<scene>-<timestamp>/.
func NewWriter(root, sceneName string, width, height int) (*Writer, Manifest, error) {
	if root == "" {
		return nil, Manifest{}, fmt.Errorf("record root must be provided")
	}

	created := time.Now().UTC()
	folder := fmt.Sprintf("%s-%s", sceneName, created.Format("20060102T150405Z"))
	dir := filepath.Join(root, folder)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, Manifest{}, err
	}

	eventFile, err := os.Create(filepath.Join(dir, eventsFileName))
	if err != nil {
		return nil, Manifest{}, err
	}
	eventStream := snappy.NewBufferedWriter(eventFile)

	frameFile, err := os.Create(filepath.Join(dir, framesFileName))
	if err != nil {
		eventFile.Close()
		return nil, Manifest{}, err
	}
	frameStream, err := zstd.NewWriter(frameFile)
	if err != nil {
		eventStream.Close()
		eventFile.Close()
		frameFile.Close()
		return nil, Manifest{}, err
	}

	manifest := Manifest{
		Version:    1,
		CreatedAt:  created.Format(time.RFC3339Nano),
		Scene:      sceneName,
		Width:      width,
		Height:     height,
		EventsPath: eventsFileName,
		FramesPath: framesFileName,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		frameStream.Close()
		frameFile.Close()
		eventStream.Close()
		eventFile.Close()
		return nil, Manifest{}, err
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFileName), data, 0o644); err != nil {
		frameStream.Close()
		frameFile.Close()
		eventStream.Close()
		eventFile.Close()
		return nil, Manifest{}, err
	}

	writer := &Writer{
		dir:         dir,
		eventFile:   eventFile,
		eventStream: eventStream,
		frameFile:   frameFile,
		frameStream: frameStream,
	}

	return writer, manifest, nil
}

// Directory exposes the directory backing the bundle
func (w *Writer) Directory() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// RecordRay appends one intersection event to the event stream
func (w *Writer) RecordRay(event RayEvent) error {
	record := rayEventRecord{
		Origin:    [3]float64{event.Origin.X, event.Origin.Y, event.Origin.Z},
		Direction: [3]float64{event.Direction.X, event.Direction.Y, event.Direction.Z},
		T:         event.T,
		Point:     [3]float64{event.Point.X, event.Point.Y, event.Point.Z},
		Normal:    [3]float64{event.Normal.X, event.Normal.Y, event.Normal.Z},
	}
	if event.Hit {
		record.Hit = 1
	}
	if event.FrontFace {
		record.FrontFace = 1
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := binary.Write(w.eventStream, binary.LittleEndian, &record); err != nil {
		return fmt.Errorf("write ray event: %w", err)
	}
	w.eventCount++
	return nil
}

// RecordFrame appends a PNG-encoded snapshot of the framebuffer to the
// frame stream, length-prefixed so the reader can split frames back out
func (w *Writer) RecordFrame(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := binary.Write(w.frameStream, binary.LittleEndian, uint32(buf.Len())); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	if _, err := w.frameStream.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	w.frameCount++
	return nil
}

// EventCount returns the number of ray events recorded so far
func (w *Writer) EventCount() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.eventCount
}

// Close flushes and closes both streams
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var firstErr error
	if err := w.eventStream.Close(); err != nil {
		firstErr = err
	}
	if err := w.eventFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.frameStream.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.frameFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
