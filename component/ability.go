package component

// EffectKind discriminates ability effects
type EffectKind uint8

const (
	EffectMelee EffectKind = iota
	EffectBuff
	EffectTeleport
	EffectProjectile
	EffectHealStrike
)

// String returns the effect name
func (k EffectKind) String() string {
	switch k {
	case EffectMelee:
		return "melee"
	case EffectBuff:
		return "buff"
	case EffectTeleport:
		return "teleport"
	case EffectProjectile:
		return "projectile"
	case EffectHealStrike:
		return "heal_strike"
	}
	return "unknown"
}

// Effect is a tagged union over the effect parameter structs
// Only the types in this file implement it
type Effect interface {
	Kind() EffectKind
}

// MeleeEffect damages enemies within Radius of the player
// FirstOnly stops after the first enemy in range
type MeleeEffect struct {
	Radius         float64
	Damage         float64 // multiplier on base damage
	CritChance     float64
	CritMultiplier float64
	FirstOnly      bool
}

// BuffEffect adds a timed damage reduction
type BuffEffect struct {
	Reduction float64
	Duration  float64 // seconds
}

// TeleportEffect moves the player along the aim vector
type TeleportEffect struct {
	Range       float64
	StaminaCost float64
}

// ProjectileEffect launches a player projectile toward the aim point
type ProjectileEffect struct {
	Damage      float64 // multiplier on base damage
	SpeedMin    float64
	SpeedJitter float64
	AOE         float64
	Accuracy    float64 // 0 disables jitter
	Shot        ProjectileKind
}

// HealStrikeEffect damages the first enemy in Range and heals Healing*base damage
type HealStrikeEffect struct {
	Range   float64
	Damage  float64
	Healing float64
}

func (MeleeEffect) Kind() EffectKind      { return EffectMelee }
func (BuffEffect) Kind() EffectKind       { return EffectBuff }
func (TeleportEffect) Kind() EffectKind   { return EffectTeleport }
func (ProjectileEffect) Kind() EffectKind { return EffectProjectile }
func (HealStrikeEffect) Kind() EffectKind { return EffectHealStrike }

// AbilityDef is one class ability; a nil Effect resolves by name
type AbilityDef struct {
	Name        string
	Key         string // "click" or "E"
	Description string
	Cost        float64
	Cooldown    float64 // seconds, 0 = default
	Effect      Effect
}

// ClassDef is an immutable class template
type ClassDef struct {
	Key         string
	Name        string
	Description string
	Color       string
	Bonuses     Stats
	AutoAlloc   StatKind
	Abilities   []AbilityDef
}
