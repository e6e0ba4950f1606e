package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/record"
)

// testLogger implements core.Logger for testing by discarding all output
type testLogger struct{}

var _ core.Logger = (*testLogger)(nil)

func (l *testLogger) Printf(format string, args ...interface{}) {}

func TestRunRender_WritesOutput(t *testing.T) {
	outputDir := t.TempDir()

	opts := renderOptions{
		sceneName: "default",
		width:     64,
		height:    48,
		tileSize:  32,
		workers:   2,
		outputDir: outputDir,
	}

	if err := runRender(opts, &testLogger{}); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(outputDir, "default"))
	if err != nil {
		t.Fatalf("read output directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 output file, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "render_") || !strings.HasSuffix(entries[0].Name(), ".png") {
		t.Errorf("Unexpected output file name %q", entries[0].Name())
	}
}

func TestRunRender_UnknownScene(t *testing.T) {
	opts := renderOptions{
		sceneName: "nope",
		width:     16,
		height:    16,
		outputDir: t.TempDir(),
	}

	if err := runRender(opts, &testLogger{}); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestRunRender_RecordsTraceBundle(t *testing.T) {
	outputDir := t.TempDir()
	recordDir := t.TempDir()

	opts := renderOptions{
		sceneName: "triangle",
		width:     32,
		height:    24,
		tileSize:  16,
		workers:   2,
		outputDir: outputDir,
		recordDir: recordDir,
	}

	if err := runRender(opts, &testLogger{}); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	bundles, err := os.ReadDir(recordDir)
	if err != nil {
		t.Fatalf("read record directory: %v", err)
	}
	if len(bundles) != 1 {
		t.Fatalf("Expected 1 trace bundle, got %d", len(bundles))
	}
	bundleDir := filepath.Join(recordDir, bundles[0].Name())

	// One event per pixel
	events, err := record.ReadEvents(bundleDir)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(events) != 32*24 {
		t.Errorf("Expected %d ray events, got %d", 32*24, len(events))
	}

	var hits int
	for _, event := range events {
		if event.Hit {
			hits++
			if event.T <= 0 {
				t.Errorf("Expected positive hit distance, got %f", event.T)
			}
		}
	}
	if hits == 0 {
		t.Error("Expected recorded hits in the triangle scene")
	}

	// One frame snapshot of the final render
	frames, err := record.ReadFrames(bundleDir)
	if err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}
	if len(frames) != 1 {
		t.Errorf("Expected 1 frame snapshot, got %d", len(frames))
	}
}
