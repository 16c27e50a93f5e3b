package system

import (
	"github.com/lixenwraith/wildhunt/core"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/status"
	"github.com/lixenwraith/wildhunt/vmath"
)

// rig wires the systems the way the engine does, without the tick loop
type rig struct {
	reg         *status.Registry
	rng         *vmath.FastRand
	ids         *core.EntityAllocator
	players     *PlayerSystem
	projectiles *ProjectileSystem
	enemies     *EnemySystem
	particles   *ParticleSystem
	abilities   *AbilitySystem
	loot        *LootSystem
}

func newRig(seed uint64) *rig {
	r := &rig{
		reg: status.NewRegistry(),
		rng: vmath.NewFastRand(seed),
		ids: core.NewEntityAllocator(),
	}
	bounds := DefaultBounds()
	r.players = NewPlayerSystem(bounds, r.reg)
	r.projectiles = NewProjectileSystem(r.ids, r.reg)
	r.enemies = NewEnemySystem(bounds, SpawnRange{Min: parameter.SpawnMinDistance, Max: parameter.SpawnMaxDistance}, r.rng, r.ids, r.projectiles, r.reg)
	r.particles = NewParticleSystem(r.reg)
	r.abilities = NewAbilitySystem(r.players, r.enemies, r.projectiles, r.particles, r.rng, r.reg)
	r.loot = NewLootSystem(r.rng, r.reg)
	return r
}

// sturdy raises an enemy's hp so a single hit never kills it
func sturdy(r *rig, x, y float64, typeID string, hp float64) core.Entity {
	e := r.enemies.SpawnEnemyAt(x, y, typeID)
	e.HP, e.BaseHP = hp, hp
	return e.ID
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
