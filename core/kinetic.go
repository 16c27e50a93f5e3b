package core

// Kinetic is the shared body of every simulated entity
// Position is in world units; velocity is in world units per tick
type Kinetic struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Integrate advances position by one tick of velocity
func (k *Kinetic) Integrate() {
	k.X += k.VX
	k.Y += k.VY
}

// Nudge displaces position without touching velocity
func (k *Kinetic) Nudge(dx, dy float64) {
	k.X += dx
	k.Y += dy
}
