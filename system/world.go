package system

import (
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/vmath"
)

// Bounds is the playable world extent shared by every system
type Bounds struct {
	Width  float64
	Height float64
}

// DefaultBounds returns the standard world size
func DefaultBounds() Bounds {
	return Bounds{Width: parameter.WorldWidth, Height: parameter.WorldHeight}
}

// ClampInside clamps a point to the world minus the wall margin
// A world too small for the margin pins to its centre
func (b Bounds) ClampInside(x, y float64) (float64, float64) {
	if b.Width < 2*parameter.WallMargin || b.Height < 2*parameter.WallMargin {
		return b.Width / 2, b.Height / 2
	}
	return vmath.ClampToRect(x, y, b.Width, b.Height, parameter.WallMargin)
}
