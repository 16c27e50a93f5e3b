package parameter

// Tick phase order (lower runs first), mirrors the simulation order
const (
	PriorityPlayer     = 10
	PriorityProjectile = 20
	PriorityCollision  = 30
	PriorityEnemy      = 40
	PriorityCamera     = 50
	PriorityParticle   = 60
)
