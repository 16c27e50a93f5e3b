package system

import (
	"math"

	"github.com/lixenwraith/wildhunt/parameter"
)

// CameraSystem keeps the viewport centred on the player inside the world
type CameraSystem struct {
	x, y float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Init() {
	s.x, s.y = 0, 0
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

// Update centres the viewport on (px, py), clamped to [0, max(0, world-view)] per axis
func (s *CameraSystem) Update(px, py, worldW, worldH, viewW, viewH float64) {
	s.x = clampOffset(px-viewW/2, worldW-viewW)
	s.y = clampOffset(py-viewH/2, worldH-viewH)
}

func clampOffset(v, limit float64) float64 {
	limit = math.Max(0, limit)
	return math.Max(0, math.Min(limit, v))
}

// Offset returns the world position of the viewport's top-left corner
func (s *CameraSystem) Offset() (float64, float64) {
	return s.x, s.y
}

// ToWorld converts viewport coordinates to world coordinates
func (s *CameraSystem) ToWorld(sx, sy float64) (float64, float64) {
	return sx + s.x, sy + s.y
}

// ToScreen converts world coordinates to viewport coordinates
func (s *CameraSystem) ToScreen(wx, wy float64) (float64, float64) {
	return wx - s.x, wy - s.y
}
