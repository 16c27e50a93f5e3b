package component

import "github.com/lixenwraith/wildhunt/core"

// EnemyState is the AI state of one enemy
type EnemyState uint8

const (
	EnemyIdle EnemyState = iota
	EnemyPatrol
	EnemyChase
	EnemyAttack
)

// String returns the lowercase state name
func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyPatrol:
		return "patrol"
	case EnemyChase:
		return "chase"
	case EnemyAttack:
		return "attack"
	}
	return "unknown"
}

// EnemyType is an immutable template in the enemy table
type EnemyType struct {
	ID     string
	Name   string
	HP     float64
	Speed  float64
	Damage float64
	Color  string // rendering hint
	XP     int
	Rarity Rarity
	Ranged bool
}

// Enemy is a live enemy owned by EnemySystem
type Enemy struct {
	ID     core.Entity
	TypeID string
	Name   string
	Color  string

	core.Kinetic

	HP     float64
	BaseHP float64 // fixed at spawn
	Damage float64
	Speed  float64
	Ranged bool

	State EnemyState

	// State scratch
	PatrolX, PatrolY float64
	AttackTimer      int // ticks
	ShootCooldown    int // ticks

	XP     int
	Rarity Rarity
}

// HealthRatio returns HP/BaseHP in [0,1]
func (e *Enemy) HealthRatio() float64 {
	if e.BaseHP <= 0 {
		return 0
	}
	r := e.HP / e.BaseHP
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
