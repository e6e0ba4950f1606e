package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/df07/go-ray-intersect/pkg/renderer"
	"github.com/df07/go-ray-intersect/pkg/scene"
)

const (
	maxDimension    = 2000
	defaultWidth    = 400
	defaultHeight   = 300
	defaultTileSize = 64
)

var upgrader = websocket.Upgrader{
	// The preview is served same-origin in production and from httptest
	// hosts in tests
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RenderRequest is the single message a client sends after connecting
type RenderRequest struct {
	Scene    string `json:"scene"`    // Scene name (e.g. "default")
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	TileSize int    `json:"tileSize"` // Tile edge length in pixels
	Workers  int    `json:"workers"`  // Worker count, 0 for CPU count
}

// Update is the envelope for every message streamed back to the client
type Update struct {
	Type       string `json:"type"` // "tile", "complete" or "error"
	TileX      int    `json:"tileX,omitempty"`
	TileY      int    `json:"tileY,omitempty"`
	TileNumber int    `json:"tileNumber,omitempty"` // 1-based completion order
	TotalTiles int    `json:"totalTiles,omitempty"`
	ImageData  string `json:"imageData,omitempty"` // Base64 encoded PNG
	Stats      *Stats `json:"stats,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Stats represents render statistics sent with the complete message
type Stats struct {
	TotalPixels int     `json:"totalPixels"`
	TotalRays   int     `json:"totalRays"`
	Hits        int     `json:"hits"`
	HitRate     float64 `json:"hitRate"`
	ElapsedMs   int64   `json:"elapsedMs"`
}

// handleRender streams a tile-by-tile render over a websocket. The client
// sends one RenderRequest; the server answers with tile updates and a
// final complete message, then closes.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.writeError(conn, fmt.Sprintf("invalid request: %v", err))
		return
	}
	applyDefaults(&req)

	selectedScene, err := scene.ByName(req.Scene)
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}

	camera := renderer.NewCamera(selectedScene.CameraConfig, req.Width, req.Height)
	raytracer := renderer.NewRaytracer(selectedScene.World, camera, req.Width, req.Height)
	pool := renderer.NewWorkerPool(raytracer, req.TileSize, req.Workers)

	totalTiles := len(renderer.Tiles(req.Width, req.Height, req.TileSize))
	tileNumber := 0
	var streamErr error

	// Tile callbacks arrive on the collector goroutine, so writes to the
	// connection stay single-threaded
	img, stats := pool.Render(func(frame *image.RGBA, result renderer.TileResult) {
		if streamErr != nil {
			return
		}
		tileNumber++
		streamErr = s.writeTile(conn, frame, result, tileNumber, totalTiles)
	})

	if streamErr != nil {
		log.Printf("render stream aborted: %v", streamErr)
		return
	}

	if err := s.writeComplete(conn, img, stats); err != nil {
		log.Printf("render complete write failed: %v", err)
	}
}

func applyDefaults(req *RenderRequest) {
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Width <= 0 {
		req.Width = defaultWidth
	}
	if req.Height <= 0 {
		req.Height = defaultHeight
	}
	req.Width = min(req.Width, maxDimension)
	req.Height = min(req.Height, maxDimension)
	if req.TileSize <= 0 {
		req.TileSize = defaultTileSize
	}
}

// writeTile sends one finished tile as a base64 PNG crop
func (s *Server) writeTile(conn *websocket.Conn, img *image.RGBA, result renderer.TileResult, tileNumber, totalTiles int) error {
	tileImg := img.SubImage(result.Bounds)

	data, err := encodePNG(tileImg)
	if err != nil {
		return fmt.Errorf("encode tile: %w", err)
	}

	return conn.WriteJSON(Update{
		Type:       "tile",
		TileX:      result.Bounds.Min.X,
		TileY:      result.Bounds.Min.Y,
		TileNumber: tileNumber,
		TotalTiles: totalTiles,
		ImageData:  data,
	})
}

// writeComplete sends the full frame and final statistics
func (s *Server) writeComplete(conn *websocket.Conn, img *image.RGBA, stats renderer.RenderStats) error {
	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	return conn.WriteJSON(Update{
		Type:      "complete",
		ImageData: data,
		Stats: &Stats{
			TotalPixels: stats.PixelCount,
			TotalRays:   stats.RayCount,
			Hits:        stats.HitCount,
			HitRate:     stats.HitRate(),
			ElapsedMs:   stats.Elapsed.Milliseconds(),
		},
	})
}

func (s *Server) writeError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(Update{Type: "error", Message: message}); err != nil {
		log.Printf("error write failed: %v", err)
	}
}

func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
