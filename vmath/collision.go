package vmath

// CircleOverlap reports whether two circles intersect (strict)
func CircleOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	rs := r1 + r2
	return DistanceSq(x1, y1, x2, y2) < rs*rs
}

// InBounds reports whether point lies within [0,w]x[0,h]
func InBounds(x, y, w, h float64) bool {
	return x >= 0 && x <= w && y >= 0 && y <= h
}

// ClampToRect clamps a point into [margin, w-margin]x[margin, h-margin]
func ClampToRect(x, y, w, h, margin float64) (cx, cy float64) {
	return Clamp(x, margin, w-margin), Clamp(y, margin, h-margin)
}
