package record

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/df07/go-ray-intersect/pkg/core"
)

// ReadManifest loads the manifest from a bundle directory
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		return Manifest{}, err
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return manifest, nil
}

// ReadEvents replays every ray event in a bundle directory
func ReadEvents(dir string) ([]RayEvent, error) {
	manifest, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(dir, manifest.EventsPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := snappy.NewReader(file)
	var events []RayEvent
	for {
		var record rayEventRecord
		err := binary.Read(reader, binary.LittleEndian, &record)
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read ray event %d: %w", len(events), err)
		}

		events = append(events, RayEvent{
			Origin:    core.NewVec3(record.Origin[0], record.Origin[1], record.Origin[2]),
			Direction: core.NewVec3(record.Direction[0], record.Direction[1], record.Direction[2]),
			Hit:       record.Hit != 0,
			T:         record.T,
			Point:     core.NewVec3(record.Point[0], record.Point[1], record.Point[2]),
			Normal:    core.NewVec3(record.Normal[0], record.Normal[1], record.Normal[2]),
			FrontFace: record.FrontFace != 0,
		})
	}
}

// ReadFrames replays every PNG-encoded frame snapshot in a bundle
// directory, returning the raw PNG bytes per frame
func ReadFrames(dir string) ([][]byte, error) {
	manifest, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(dir, manifest.FramesPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("open frame stream: %w", err)
	}
	defer decoder.Close()

	var frames [][]byte
	for {
		var length uint32
		err := binary.Read(decoder, binary.LittleEndian, &length)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read frame %d length: %w", len(frames), err)
		}

		frame := make([]byte, length)
		if _, err := io.ReadFull(decoder, frame); err != nil {
			return nil, fmt.Errorf("read frame %d: %w", len(frames), err)
		}
		frames = append(frames, frame)
	}
}
