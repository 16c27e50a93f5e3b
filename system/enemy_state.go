package system

import (
	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/parameter"
)

// EnemyContext is the per-tick input to the state transition
type EnemyContext struct {
	Dist        float64 // enemy to player
	Aggro       float64 // detection radius
	ContactDist float64 // radius sum + contact padding
	LeaveDist   float64 // radius sum + disengage padding
	PatrolDist  float64 // enemy to patrol target, measured before this tick's move
	PatrolRoll  bool    // idle rolled into patrol this tick
}

// NewEnemyContext derives the thresholds from the two bodies and player perception
func NewEnemyContext(dist, enemyRadius, playerRadius float64, perception int) EnemyContext {
	rSum := enemyRadius + playerRadius
	return EnemyContext{
		Dist:        dist,
		Aggro:       AggroRadius(perception),
		ContactDist: rSum + parameter.EnemyContactPadding,
		LeaveDist:   rSum + parameter.EnemyDisengagePadding,
	}
}

// AggroRadius is the detection radius for a given player perception
func AggroRadius(perception int) float64 {
	return parameter.EnemyAggroBase + parameter.EnemyAggroPerPerception*float64(perception)
}

// NextEnemyState is the pure AI transition function
// Aggro always wins over patrol entry and arrival; leash wins over attack entry
func NextEnemyState(state component.EnemyState, ctx EnemyContext) component.EnemyState {
	switch state {
	case component.EnemyIdle:
		if ctx.Dist < ctx.Aggro {
			return component.EnemyChase
		}
		if ctx.PatrolRoll {
			return component.EnemyPatrol
		}
		return component.EnemyIdle

	case component.EnemyPatrol:
		if ctx.Dist < ctx.Aggro {
			return component.EnemyChase
		}
		if ctx.PatrolDist < parameter.EnemyPatrolArrival {
			return component.EnemyIdle
		}
		return component.EnemyPatrol

	case component.EnemyChase:
		if ctx.Dist > ctx.Aggro*parameter.EnemyLeashFactor {
			return component.EnemyIdle
		}
		if ctx.Dist < ctx.ContactDist {
			return component.EnemyAttack
		}
		return component.EnemyChase

	case component.EnemyAttack:
		if ctx.Dist > ctx.LeaveDist {
			return component.EnemyChase
		}
		return component.EnemyAttack
	}
	return component.EnemyIdle
}
