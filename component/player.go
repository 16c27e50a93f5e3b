package component

import "github.com/lixenwraith/wildhunt/core"

// StatusKind identifies a timed status effect
type StatusKind uint8

const (
	StatusDamageReduction StatusKind = iota
)

// StatusEffect is a timed modifier; Remaining counts down in seconds
type StatusEffect struct {
	Kind      StatusKind
	Magnitude float64
	Remaining float64
}

// Player is the singleton avatar state owned by PlayerSystem
type Player struct {
	core.Kinetic

	MaxSpeed   float64
	SpeedBonus float64 // dex-derived, added to MaxSpeed

	Stats Stats

	HP, MaxHP           float64
	Mana, MaxMana       float64
	Stamina, MaxStamina float64

	Level    int
	XP       int
	XPToNext int

	ClassKey  string // empty until a class is bound
	ClassName string
	Abilities []AbilityDef

	FreeStatPoints int
	Inventory      []LootItem
	StatusEffects  []StatusEffect
	Cooldowns      map[string]float64 // lowercased ability name -> seconds remaining

	Dead bool
}

// HasClass reports whether a class is bound
func (p *Player) HasClass() bool {
	return p.ClassKey != ""
}

// EffectiveMaxSpeed is the walking speed cap
func (p *Player) EffectiveMaxSpeed() float64 {
	return p.MaxSpeed + p.SpeedBonus
}
