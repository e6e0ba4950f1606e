package record

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/df07/go-ray-intersect/pkg/core"
)

func TestWriter_RoundTrip(t *testing.T) {
	root := t.TempDir()

	writer, manifest, err := NewWriter(root, "default", 16, 9)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if manifest.Scene != "default" || manifest.Width != 16 || manifest.Height != 9 {
		t.Errorf("Unexpected manifest: %+v", manifest)
	}

	events := []RayEvent{
		{
			Origin:    core.NewVec3(0, 0, 0),
			Direction: core.NewVec3(0, 0, 1),
			Hit:       true,
			T:         4.0,
			Point:     core.NewVec3(0, 0, 4),
			Normal:    core.NewVec3(0, 0, -1),
			FrontFace: true,
		},
		{
			Origin:    core.NewVec3(1, 2, 3),
			Direction: core.NewVec3(0, 1, 0),
			Hit:       false,
		},
	}
	for _, event := range events {
		if err := writer.RecordRay(event); err != nil {
			t.Fatalf("RecordRay failed: %v", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	img.SetRGBA(3, 4, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	if err := writer.RecordFrame(img); err != nil {
		t.Fatalf("RecordFrame failed: %v", err)
	}

	if got := writer.EventCount(); got != 2 {
		t.Errorf("Expected 2 events recorded, got %d", got)
	}

	dir := writer.Directory()
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Bundle lands under the requested root
	if filepath.Dir(dir) != root {
		t.Errorf("Expected bundle under %s, got %s", root, dir)
	}

	readEvents, err := ReadEvents(dir)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(readEvents) != len(events) {
		t.Fatalf("Expected %d events, got %d", len(events), len(readEvents))
	}
	for i, event := range events {
		got := readEvents[i]
		if got.Hit != event.Hit || got.FrontFace != event.FrontFace {
			t.Errorf("Event %d flags: expected %+v, got %+v", i, event, got)
		}
		if math.Abs(got.T-event.T) > 1e-12 {
			t.Errorf("Event %d t: expected %f, got %f", i, event.T, got.T)
		}
		if got.Origin != event.Origin || got.Direction != event.Direction ||
			got.Point != event.Point || got.Normal != event.Normal {
			t.Errorf("Event %d vectors: expected %+v, got %+v", i, event, got)
		}
	}

	frames, err := ReadFrames(dir)
	if err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("Expected 1 frame, got %d", len(frames))
	}

	decoded, err := png.Decode(bytes.NewReader(frames[0]))
	if err != nil {
		t.Fatalf("Frame did not decode as PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("Expected frame bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}

func TestNewWriter_RequiresRoot(t *testing.T) {
	if _, _, err := NewWriter("", "default", 1, 1); err == nil {
		t.Error("Expected error for empty root")
	}
}

func TestReadEvents_MissingBundle(t *testing.T) {
	if _, err := ReadEvents(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing bundle directory")
	}
}
