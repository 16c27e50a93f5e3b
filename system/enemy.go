package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/content"
	"github.com/lixenwraith/wildhunt/core"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/status"
	"github.com/lixenwraith/wildhunt/vmath"
)

// ContactHit is one melee hit on the player produced by an attack tick
type ContactHit struct {
	Enemy  core.Entity
	Damage float64
}

// KillHandler receives a copy of an enemy whose hp reached zero, before removal
type KillHandler func(e component.Enemy)

// ProjectileSpawner launches projectiles on behalf of enemies
type ProjectileSpawner interface {
	Spawn(spec ProjectileSpec) core.Entity
}

// SpawnRange is the ring around the anchor where enemies appear
type SpawnRange struct {
	Min float64
	Max float64
}

// EnemySystem owns the enemy collection and runs the per-enemy AI
type EnemySystem struct {
	enemies []*component.Enemy
	bounds  Bounds
	spawn   SpawnRange
	rng     *vmath.FastRand
	ids     *core.EntityAllocator
	shots   ProjectileSpawner
	onKill  KillHandler

	// Cached metric pointers
	statActive  *atomic.Int64
	statKilled  *atomic.Int64
	statSpawned *atomic.Int64
}

// NewEnemySystem creates an empty enemy system
// shots may be nil, in which case ranged enemies never fire
func NewEnemySystem(bounds Bounds, spawn SpawnRange, rng *vmath.FastRand, ids *core.EntityAllocator, shots ProjectileSpawner, reg *status.Registry) *EnemySystem {
	s := &EnemySystem{
		bounds:      bounds,
		spawn:       spawn,
		rng:         rng,
		ids:         ids,
		shots:       shots,
		statActive:  reg.Ints.Get(status.KeyEnemyActive),
		statKilled:  reg.Ints.Get(status.KeyEnemyKilled),
		statSpawned: reg.Ints.Get(status.KeyEnemySpawned),
	}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.Clear()
}

func (s *EnemySystem) Name() string {
	return "enemy"
}

func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

// SetKillHandler installs the reward callback
func (s *EnemySystem) SetKillHandler(h KillHandler) {
	s.onKill = h
}

// Enemies returns the live collection in spawn order; callers must not mutate hp
func (s *EnemySystem) Enemies() []*component.Enemy {
	return s.enemies
}

func (s *EnemySystem) Count() int {
	return len(s.enemies)
}

// Find returns the enemy with id, or nil
func (s *EnemySystem) Find(id core.Entity) *component.Enemy {
	for _, e := range s.enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Clear removes every enemy without rewards
func (s *EnemySystem) Clear() {
	s.enemies = nil
	s.statActive.Store(0)
}

// SpawnEnemy places a random enemy type on a ring around the anchor
func (s *EnemySystem) SpawnEnemy(anchorX, anchorY float64) *component.Enemy {
	angle := s.rng.Float64() * 2 * math.Pi
	dist := s.rng.Range(s.spawn.Min, s.spawn.Max)
	dx, dy := vmath.FromAngle(angle, dist)
	x := vmath.Clamp(anchorX+dx, 0, s.bounds.Width)
	y := vmath.Clamp(anchorY+dy, 0, s.bounds.Height)

	t := content.EnemyTypeAt(vmath.RandomIndex(content.EnemyTypeCount(), s.rng))
	return s.spawnType(x, y, t)
}

// SpawnEnemyAt places an enemy of typeID at an exact position
// Unknown type ids fall back to a random type
func (s *EnemySystem) SpawnEnemyAt(x, y float64, typeID string) *component.Enemy {
	t, ok := content.EnemyType(typeID)
	if !ok {
		t = content.EnemyTypeAt(vmath.RandomIndex(content.EnemyTypeCount(), s.rng))
	}
	return s.spawnType(x, y, t)
}

func (s *EnemySystem) spawnType(x, y float64, t component.EnemyType) *component.Enemy {
	scale := vmath.DistanceScaling(x, y, s.bounds.Width, s.bounds.Height, parameter.SpawnScaleMin, parameter.SpawnScaleMax)
	e := &component.Enemy{
		ID:     s.ids.Next(),
		TypeID: t.ID,
		Name:   t.Name,
		Color:  t.Color,
		Kinetic: core.Kinetic{
			X:      x,
			Y:      y,
			Radius: parameter.EnemyRadius,
		},
		HP:     t.HP * scale,
		BaseHP: t.HP * scale,
		Damage: t.Damage * scale,
		Speed:  t.Speed,
		Ranged: t.Ranged,
		State:  component.EnemyIdle,
		XP:     vmath.Round(float64(t.XP) * scale),
		Rarity: t.Rarity,
	}
	s.enemies = append(s.enemies, e)
	s.statSpawned.Add(1)
	s.statActive.Store(int64(len(s.enemies)))
	return e
}

// ApplyDamage is the only path that lowers enemy hp
// On death the kill handler runs exactly once and the enemy is removed
func (s *EnemySystem) ApplyDamage(id core.Entity, amount float64) (killed bool) {
	idx := s.indexOf(id)
	if idx < 0 || amount <= 0 {
		return false
	}
	e := s.enemies[idx]
	e.HP -= amount
	if e.HP > 0 {
		return false
	}

	dead := *e
	// Fresh slice so callers iterating an earlier Enemies() result stay valid
	rest := make([]*component.Enemy, 0, len(s.enemies)-1)
	rest = append(rest, s.enemies[:idx]...)
	s.enemies = append(rest, s.enemies[idx+1:]...)
	s.statActive.Store(int64(len(s.enemies)))
	s.statKilled.Add(1)
	if s.onKill != nil {
		s.onKill(dead)
	}
	return true
}

func (s *EnemySystem) indexOf(id core.Entity) int {
	for i, e := range s.enemies {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// UpdateAI advances every enemy by one tick against the player
// Returns the contact hits for the caller to apply once each
func (s *EnemySystem) UpdateAI(player *component.Player) []ContactHit {
	var hits []ContactHit
	for _, e := range s.enemies {
		sepX, sepY := s.separation(e)

		dx, dy := player.X-e.X, player.Y-e.Y
		dist := vmath.Magnitude(dx, dy)
		dirX, dirY := vmath.Normalize2D(dx, dy)
		ctx := NewEnemyContext(dist, e.Radius, player.Radius, player.Stats.Per)

		switch e.State {
		case component.EnemyIdle:
			if s.rng.Float64() < parameter.EnemyPatrolChance {
				ctx.PatrolRoll = true
				e.PatrolX = e.X + (s.rng.Float64()-0.5)*parameter.EnemyPatrolSpanX
				e.PatrolY = e.Y + (s.rng.Float64()-0.5)*parameter.EnemyPatrolSpanY
			}

		case component.EnemyPatrol:
			pdx, pdy := e.PatrolX-e.X, e.PatrolY-e.Y
			ctx.PatrolDist = vmath.Magnitude(pdx, pdy)
			nx, ny := vmath.Normalize2D(pdx, pdy)
			step := e.Speed * parameter.EnemyPatrolSpeedFactor
			e.Nudge(nx*step, ny*step)

		case component.EnemyChase:
			if e.Ranged {
				s.keepStandoff(e, dist, dirX, dirY)
				s.fireAt(e, dist, dirX, dirY)
			} else {
				e.Nudge(dirX*e.Speed, dirY*e.Speed)
			}

		case component.EnemyAttack:
			if e.AttackTimer <= 0 {
				if dist < ctx.ContactDist {
					hits = append(hits, ContactHit{Enemy: e.ID, Damage: e.Damage})
				}
				e.AttackTimer = parameter.EnemyAttackIntervalMin + s.rng.Intn(parameter.EnemyAttackIntervalSpread)
			} else {
				e.AttackTimer--
			}
		}

		next := NextEnemyState(e.State, ctx)
		if e.State == component.EnemyChase && next == component.EnemyAttack {
			e.AttackTimer = 0
		}
		e.State = next

		e.Nudge(sepX, sepY)
	}
	return hits
}

// keepStandoff holds a ranged enemy near the preferred distance
func (s *EnemySystem) keepStandoff(e *component.Enemy, dist, dirX, dirY float64) {
	near := parameter.EnemyStandoffDistance * (1 - parameter.EnemyStandoffDeadZone)
	far := parameter.EnemyStandoffDistance * (1 + parameter.EnemyStandoffDeadZone)
	switch {
	case dist < near:
		step := e.Speed * parameter.EnemyRetreatSpeedFactor
		e.Nudge(-dirX*step, -dirY*step)
	case dist > far:
		step := e.Speed * parameter.EnemyApproachSpeedFactor
		e.Nudge(dirX*step, dirY*step)
	}
}

// fireAt launches a shot when the cooldown allows, then ticks the cooldown down
func (s *EnemySystem) fireAt(e *component.Enemy, dist, dirX, dirY float64) {
	if e.ShootCooldown <= 0 && dist < parameter.EnemyShootRange {
		speed := parameter.EnemyShotSpeedMin + s.rng.Float64()*parameter.EnemyShotSpeedJitter
		if s.shots != nil {
			s.shots.Spawn(ProjectileSpec{
				X:      e.X,
				Y:      e.Y,
				VX:     dirX * speed,
				VY:     dirY * speed,
				Damage: e.Damage,
				Owner:  component.OwnerEnemy,
				Kind:   component.ProjectileEnemyShot,
				TTL:    parameter.ProjectileTTLEnemy,
			})
		}
		e.ShootCooldown = parameter.EnemyShootCooldownMin + s.rng.Intn(parameter.EnemyShootCooldownSpread)
	}
	if e.ShootCooldown > 0 {
		e.ShootCooldown--
	}
}

// separation sums repulsion from neighbours inside the squared threshold
func (s *EnemySystem) separation(e *component.Enemy) (float64, float64) {
	var ax, ay float64
	for _, other := range s.enemies {
		if other == e {
			continue
		}
		ddx, ddy := e.X-other.X, e.Y-other.Y
		if ddx*ddx+ddy*ddy < parameter.EnemySeparationDistSq {
			ax += ddx * parameter.EnemySeparationStrength
			ay += ddy * parameter.EnemySeparationStrength
		}
	}
	return ax, ay
}
