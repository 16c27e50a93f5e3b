package engine

import (
	"maps"
	"slices"

	"github.com/lixenwraith/wildhunt/component"
)

// Snapshot is a read-only copy of the world for renderers and tests
type Snapshot struct {
	Tick        int64
	Player      component.Player
	Enemies     []component.Enemy
	Projectiles []component.Projectile
	Particles   []component.Particle

	CameraX, CameraY float64
	ViewW, ViewH     float64
	WorldW, WorldH   float64
	AutoSpawn        bool
}

// copyPlayer clones the slices and map so the snapshot does not alias live state
func copyPlayer(p *component.Player) component.Player {
	cp := *p
	cp.Abilities = slices.Clone(p.Abilities)
	cp.Inventory = slices.Clone(p.Inventory)
	cp.StatusEffects = slices.Clone(p.StatusEffects)
	cp.Cooldowns = maps.Clone(p.Cooldowns)
	return cp
}
