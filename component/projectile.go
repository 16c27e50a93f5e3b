package component

import "github.com/lixenwraith/wildhunt/core"

// ProjectileOwner decides which side a projectile can hit
type ProjectileOwner uint8

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

// ProjectileKind is the visual and behavioural variant
type ProjectileKind uint8

const (
	ProjectileBolt ProjectileKind = iota
	ProjectileManaBolt
	ProjectileFireball
	ProjectileArrow
	ProjectileEnemyShot
)

// String returns the kind name
func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBolt:
		return "bolt"
	case ProjectileManaBolt:
		return "mana_bolt"
	case ProjectileFireball:
		return "fireball"
	case ProjectileArrow:
		return "arrow"
	case ProjectileEnemyShot:
		return "enemy_shot"
	}
	return "unknown"
}

// Projectile is an in-flight shot owned by ProjectileSystem
type Projectile struct {
	ID core.Entity
	core.Kinetic

	Damage    float64
	Owner     ProjectileOwner
	Kind      ProjectileKind
	AOERadius float64 // 0 = single target
	TTL       int     // ticks
}

// IsArea reports whether a hit damages every enemy within AOERadius
// Only fireballs splash; other kinds ignore AOERadius
func (p *Projectile) IsArea() bool {
	return p.Kind == ProjectileFireball && p.AOERadius > 0
}
