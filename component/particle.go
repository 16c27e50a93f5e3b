package component

// Particle is a cosmetic point; no gameplay reads it
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   string
	Size    float64
	Alpha   float64
}
