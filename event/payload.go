package event

import (
	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/core"
)

// ClassSelectedPayload names the newly bound class
type ClassSelectedPayload struct {
	Key  string
	Name string
}

// LevelUpPayload reports the level reached and how many levels the award covered
type LevelUpPayload struct {
	Level      int
	Levels     int
	FreePoints int
}

// StatAllocatedPayload reports the stat raised by one point
type StatAllocatedPayload struct {
	Stat       component.StatKind
	Value      int
	FreePoints int
}

// AbilityCastPayload identifies the cast ability
type AbilityCastPayload struct {
	Index int
	Name  string
	Kind  component.EffectKind
}

// EnemySpawnedPayload describes a spawned enemy
type EnemySpawnedPayload struct {
	ID     core.Entity
	TypeID string
	X, Y   float64
}

// EnemyKilledPayload describes a removed enemy and its XP reward
type EnemyKilledPayload struct {
	ID     core.Entity
	TypeID string
	XP     int
}

// LootGainedPayload carries the dropped item
type LootGainedPayload struct {
	Item component.LootItem
}

// PlayerDamagedPayload reports applied damage after reduction
type PlayerDamagedPayload struct {
	Amount float64
	HP     float64
}

// PlayerDiedPayload records progression at the moment of death
type PlayerDiedPayload struct {
	Level int
	Class string
}
