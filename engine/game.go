// Package engine composes the simulation systems into a single tickable game
package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/config"
	"github.com/lixenwraith/wildhunt/content"
	"github.com/lixenwraith/wildhunt/core"
	"github.com/lixenwraith/wildhunt/event"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/status"
	"github.com/lixenwraith/wildhunt/system"
	"github.com/lixenwraith/wildhunt/vmath"
)

// Input is the host's per-tick movement intent
// MoveX and MoveY are in [-1, 1]
type Input struct {
	MoveX, MoveY float64
	Sprint       bool
}

// TickResult summarizes what happened during one tick
type TickResult struct {
	Tick        int64
	Collision   system.CollisionReport
	ContactHits int
	Spawned     int
	Died        bool
}

// Game owns the rng, entity ids, event queue, metrics and every system
// All methods must be called from the tick goroutine
type Game struct {
	cfg    config.Config
	bounds system.Bounds
	rng    *vmath.FastRand
	ids    *core.EntityAllocator
	queue  *event.EventQueue
	reg    *status.Registry

	players     *system.PlayerSystem
	enemies     *system.EnemySystem
	projectiles *system.ProjectileSystem
	abilities   *system.AbilitySystem
	loot        *system.LootSystem
	camera      *system.CameraSystem
	particles   *system.ParticleSystem
	director    *SpawnDirector

	// Resettable systems in priority order
	systems []System

	viewW, viewH float64
	tick         int64

	statTicks  *atomic.Int64
	statDeaths *atomic.Int64
}

// New wires every system around one shared rng
func New(cfg config.Config, rng *vmath.FastRand) *Game {
	reg := status.NewRegistry()
	ids := core.NewEntityAllocator()
	bounds := system.Bounds{Width: cfg.WorldWidth, Height: cfg.WorldHeight}

	g := &Game{
		cfg:        cfg,
		bounds:     bounds,
		rng:        rng,
		ids:        ids,
		queue:      event.NewEventQueue(),
		reg:        reg,
		viewW:      parameter.CameraDefaultViewportWidth,
		viewH:      parameter.CameraDefaultViewportHeight,
		statTicks:  reg.Ints.Get(status.KeyEngineTicks),
		statDeaths: reg.Ints.Get(status.KeyEngineDeaths),
	}

	g.players = system.NewPlayerSystem(bounds, reg)
	g.projectiles = system.NewProjectileSystem(ids, reg)
	spawnRange := system.SpawnRange{Min: cfg.SpawnMinDistance, Max: cfg.SpawnMaxDistance}
	g.enemies = system.NewEnemySystem(bounds, spawnRange, rng, ids, g.projectiles, reg)
	g.particles = system.NewParticleSystem(reg)
	g.abilities = system.NewAbilitySystem(g.players, g.enemies, g.projectiles, g.particles, rng, reg)
	g.loot = system.NewLootSystem(rng, reg)
	g.camera = system.NewCameraSystem()
	g.director = NewSpawnDirector(rng, cfg.AutoSpawn)

	g.enemies.SetKillHandler(g.onEnemyKilled)

	g.systems = []System{g.players, g.projectiles, g.enemies, g.camera, g.particles}
	sortSystems(g.systems)

	g.updateCamera()
	return g
}

// Tick advances the world by dt seconds
// Per-tick movement constants are applied once per call regardless of dt
func (g *Game) Tick(in Input, dt float64) TickResult {
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	g.tick++
	g.statTicks.Add(1)
	res := TickResult{Tick: g.tick}

	g.players.IntegrateMovement(in.MoveX, in.MoveY, in.Sprint, dt)
	g.players.Update(dt)

	g.projectiles.Update()
	res.Collision = g.projectiles.CheckCollision(g.enemies, g.players)
	if res.Collision.PlayerHits > 0 {
		g.emitDamaged(res.Collision.PlayerDamage)
	}
	if res.Collision.PlayerDied {
		g.handleDeath()
		res.Died = true
		return res
	}

	for _, hit := range g.enemies.UpdateAI(g.players.Player()) {
		res.ContactHits++
		before := g.players.Player().HP
		died := g.players.TakeDamage(hit.Damage)
		g.emitDamaged(before - g.players.Player().HP)
		if died {
			g.handleDeath()
			res.Died = true
			return res
		}
	}

	g.updateCamera()
	g.particles.Update()

	for waves := g.director.Advance(dt); waves > 0; waves-- {
		res.Spawned += g.SpawnWave()
	}

	return res
}

func (g *Game) updateCamera() {
	p := g.players.Player()
	g.camera.Update(p.X, p.Y, g.bounds.Width, g.bounds.Height, g.viewW, g.viewH)
}

func (g *Game) emitDamaged(amount float64) {
	g.queue.Emit(event.EventPlayerDamaged, event.PlayerDamagedPayload{
		Amount: amount,
		HP:     g.players.Player().HP,
	}, g.tick)
}

// onEnemyKilled grants XP and a drop exactly once per removed enemy
func (g *Game) onEnemyKilled(e component.Enemy) {
	g.queue.Emit(event.EventEnemyKilled, event.EnemyKilledPayload{ID: e.ID, TypeID: e.TypeID, XP: e.XP}, g.tick)
	g.particles.Burst(e.X, e.Y, parameter.ParticleBurstCount, parameter.ParticleBurstSpeed,
		parameter.ParticleDefaultLife, parameter.ColorKill, parameter.ParticleDefaultSize)

	if levels := g.players.GainXP(e.XP); levels > 0 {
		p := g.players.Player()
		g.queue.Emit(event.EventLevelUp, event.LevelUpPayload{
			Level:      p.Level,
			Levels:     levels,
			FreePoints: p.FreeStatPoints,
		}, g.tick)
		g.particles.Burst(p.X, p.Y, parameter.ParticleBurstCount, parameter.ParticleBurstSpeed,
			parameter.ParticleDefaultLife, parameter.ColorLevel, parameter.ParticleDefaultSize)
		log.Printf("Level up: %d (+%d), %d free points", p.Level, levels, p.FreeStatPoints)
	}

	item := g.loot.Drop(g.loot.RollDropRarity(e.Rarity))
	g.players.AddLoot(item)
	g.queue.Emit(event.EventLootGained, event.LootGainedPayload{Item: item}, g.tick)
}

// handleDeath records the death and restores the starting world
func (g *Game) handleDeath() {
	p := g.players.Player()
	g.queue.Emit(event.EventPlayerDied, event.PlayerDiedPayload{Level: p.Level, Class: p.ClassName}, g.tick)
	g.statDeaths.Add(1)
	log.Printf("Player died at level %d (%s), resetting", p.Level, p.ClassName)

	g.Reset()
}

// Reset restores every system to its starting state without touching the rng
func (g *Game) Reset() {
	for _, s := range g.systems {
		s.Init()
	}
	g.director.Reset()
	g.updateCamera()
	g.queue.Emit(event.EventGameReset, nil, g.tick)
}

// SelectClass binds a class by key
func (g *Game) SelectClass(key string) error {
	if err := g.players.SelectClass(key); err != nil {
		return err
	}
	p := g.players.Player()
	g.queue.Emit(event.EventClassSelected, event.ClassSelectedPayload{Key: p.ClassKey, Name: p.ClassName}, g.tick)
	log.Printf("Class selected: %s", p.ClassName)
	return nil
}

// AllocateStat spends one free point
func (g *Game) AllocateStat(kind component.StatKind) error {
	if err := g.players.AllocateStat(kind); err != nil {
		return err
	}
	p := g.players.Player()
	g.queue.Emit(event.EventStatAllocated, event.StatAllocatedPayload{
		Stat:       kind,
		Value:      p.Stats.Get(kind),
		FreePoints: p.FreeStatPoints,
	}, g.tick)
	return nil
}

// CastAbility fires ability index at a viewport point
func (g *Game) CastAbility(index int, screenX, screenY float64) error {
	wx, wy := g.camera.ToWorld(screenX, screenY)
	if err := g.abilities.Execute(index, wx, wy); err != nil {
		return err
	}
	def := g.players.Player().Abilities[index]
	g.queue.Emit(event.EventAbilityCast, event.AbilityCastPayload{
		Index: index,
		Name:  def.Name,
		Kind:  content.EffectFor(def).Kind(),
	}, g.tick)
	return nil
}

// SpawnEnemy places one enemy on the spawn ring around the player
func (g *Game) SpawnEnemy() *component.Enemy {
	p := g.players.Player()
	e := g.enemies.SpawnEnemy(p.X, p.Y)
	g.queue.Emit(event.EventEnemySpawned, event.EnemySpawnedPayload{ID: e.ID, TypeID: e.TypeID, X: e.X, Y: e.Y}, g.tick)
	return e
}

// SpawnWave spawns 1 + rand(1 + level/4) enemies once a class is bound
func (g *Game) SpawnWave() int {
	p := g.players.Player()
	if !p.HasClass() {
		return 0
	}
	count := 1 + g.rng.Intn(1+p.Level/parameter.SpawnLevelsPerExtra)
	for i := 0; i < count; i++ {
		g.SpawnEnemy()
	}
	return count
}

// TakeLoot empties the inventory and returns its former contents
func (g *Game) TakeLoot() []component.LootItem {
	return g.players.TakeInventory()
}

// SetViewport sets the visible world area used by the camera and screen mapping
func (g *Game) SetViewport(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	g.viewW, g.viewH = w, h
	g.updateCamera()
}

// SetAutoSpawn toggles the spawn director
func (g *Game) SetAutoSpawn(on bool) {
	g.director.SetEnabled(on)
}

// Events drains pending events in publication order
func (g *Game) Events() []event.GameEvent {
	return g.queue.Consume()
}

// Registry exposes the metrics for overlays; values are atomics
func (g *Game) Registry() *status.Registry {
	return g.reg
}

// Snapshot copies the current world state
func (g *Game) Snapshot() Snapshot {
	enemies := g.enemies.Enemies()
	snap := Snapshot{
		Tick:        g.tick,
		Player:      copyPlayer(g.players.Player()),
		Enemies:     make([]component.Enemy, len(enemies)),
		Projectiles: append([]component.Projectile(nil), g.projectiles.Projectiles()...),
		Particles:   append([]component.Particle(nil), g.particles.Particles()...),
		ViewW:       g.viewW,
		ViewH:       g.viewH,
		WorldW:      g.bounds.Width,
		WorldH:      g.bounds.Height,
		AutoSpawn:   g.director.Enabled(),
	}
	for i, e := range enemies {
		snap.Enemies[i] = *e
	}
	snap.CameraX, snap.CameraY = g.camera.Offset()
	return snap
}
