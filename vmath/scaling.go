package vmath

import "math"

// DistanceScaling maps normalized distance from world center onto [minScale, maxScale]
// Center yields minScale; the corner (half diagonal) and beyond yield maxScale
func DistanceScaling(x, y, worldW, worldH, minScale, maxScale float64) float64 {
	cx := worldW / 2
	cy := worldH / 2
	maxDist := math.Sqrt(cx*cx + cy*cy)
	if maxDist == 0 {
		return minScale
	}
	ratio := math.Min(Distance(x, y, cx, cy)/maxDist, 1.0)
	return minScale + (maxScale-minScale)*ratio
}
