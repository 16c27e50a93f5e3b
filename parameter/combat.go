package parameter

// Base damage formula: DamageBase + DamageStrFactor*STR + DamagePerFactor*PER
const (
	DamageBase      = 6.0
	DamageStrFactor = 0.5
	DamagePerFactor = 1.5
)

// Projectile hit radii added to the target radius
const (
	// HitRadiusEnemy pads enemy radius for player projectiles
	HitRadiusEnemy = 4.0
	// HitRadiusPlayer pads player radius for enemy projectiles
	HitRadiusPlayer = 6.0
)

// Projectile lifetimes in ticks
const (
	ProjectileTTLPlayer = 120
	ProjectileTTLEnemy  = 180
)
