package render

import (
	"math"

	"github.com/lixenwraith/wildhunt/engine"
	"github.com/lixenwraith/wildhunt/status"
)

// HUDRows is the number of terminal rows reserved below the play area
const HUDRows = 3

// Context provides frame state for layers, passed by value
type Context struct {
	Snap engine.Snapshot

	// World units per terminal cell
	CellW float64
	CellH float64

	// Terminal dimensions
	Width  int
	Height int

	Paused   bool
	Messages []string
	Metrics  []status.Line
}

// PlayHeight is the row count of the world view
func (c Context) PlayHeight() int {
	h := c.Height - HUDRows
	if h < 0 {
		return 0
	}
	return h
}

// ToCell maps a world point to a cell of the play area
func (c Context) ToCell(wx, wy float64) (int, int, bool) {
	if c.CellW <= 0 || c.CellH <= 0 {
		return 0, 0, false
	}
	x := int(math.Floor((wx - c.Snap.CameraX) / c.CellW))
	y := int(math.Floor((wy - c.Snap.CameraY) / c.CellH))
	if x < 0 || x >= c.Width || y < 0 || y >= c.PlayHeight() {
		return x, y, false
	}
	return x, y, true
}

// CellCenter maps a play-area cell to the viewport point at its centre
func (c Context) CellCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * c.CellW, (float64(y) + 0.5) * c.CellH
}
