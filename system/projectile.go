package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/core"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/status"
	"github.com/lixenwraith/wildhunt/vmath"
)

// ProjectileSpec describes a projectile to launch; TTL 0 takes the owner default
type ProjectileSpec struct {
	X, Y   float64
	VX, VY float64
	Damage float64
	Owner  component.ProjectileOwner
	Kind   component.ProjectileKind
	AOE    float64
	TTL    int
}

// EnemyTarget is the enemy side of collision resolution
type EnemyTarget interface {
	Enemies() []*component.Enemy
	ApplyDamage(id core.Entity, amount float64) bool
}

// PlayerTarget is the player side of collision resolution
type PlayerTarget interface {
	Player() *component.Player
	TakeDamage(amount float64) bool
}

// CollisionReport summarizes one resolution pass
type CollisionReport struct {
	EnemyHits    int
	Kills        []core.Entity
	PlayerHits   int
	PlayerDamage float64 // hp actually lost after reduction
	PlayerDied   bool
}

// ProjectileSystem owns in-flight projectiles
type ProjectileSystem struct {
	projectiles []component.Projectile
	ids         *core.EntityAllocator

	statActive *atomic.Int64
}

func NewProjectileSystem(ids *core.EntityAllocator, reg *status.Registry) *ProjectileSystem {
	s := &ProjectileSystem{
		ids:        ids,
		statActive: reg.Ints.Get(status.KeyProjectileActive),
	}
	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.Clear()
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

// Projectiles returns the live projectiles in launch order
func (s *ProjectileSystem) Projectiles() []component.Projectile {
	return s.projectiles
}

func (s *ProjectileSystem) Count() int {
	return len(s.projectiles)
}

func (s *ProjectileSystem) Clear() {
	s.projectiles = nil
	s.statActive.Store(0)
}

// Spawn appends a projectile and returns its id
func (s *ProjectileSystem) Spawn(spec ProjectileSpec) core.Entity {
	ttl := spec.TTL
	if ttl <= 0 {
		ttl = parameter.ProjectileTTLPlayer
		if spec.Owner == component.OwnerEnemy {
			ttl = parameter.ProjectileTTLEnemy
		}
	}
	id := s.ids.Next()
	s.projectiles = append(s.projectiles, component.Projectile{
		ID: id,
		Kinetic: core.Kinetic{
			X:  spec.X,
			Y:  spec.Y,
			VX: spec.VX,
			VY: spec.VY,
		},
		Damage:    spec.Damage,
		Owner:     spec.Owner,
		Kind:      spec.Kind,
		AOERadius: spec.AOE,
		TTL:       ttl,
	})
	s.statActive.Store(int64(len(s.projectiles)))
	return id
}

// Update moves every projectile one tick and drops the expired
func (s *ProjectileSystem) Update() {
	for i := range s.projectiles {
		p := &s.projectiles[i]
		p.Integrate()
		p.TTL--
	}
	s.compact()
}

// CheckCollision resolves hits in launch order and consumes every projectile that hit
// Damage goes through the targets' own mutation paths
func (s *ProjectileSystem) CheckCollision(enemies EnemyTarget, player PlayerTarget) CollisionReport {
	var report CollisionReport
	pl := player.Player()

	for i := range s.projectiles {
		p := &s.projectiles[i]
		if p.TTL <= 0 {
			continue
		}

		switch p.Owner {
		case component.OwnerPlayer:
			struck := firstEnemyWithin(enemies.Enemies(), p.X, p.Y, parameter.HitRadiusEnemy)
			if struck == nil {
				continue
			}
			targets := []core.Entity{struck.ID}
			if p.IsArea() {
				targets = areaTargets(enemies.Enemies(), struck.ID, p.X, p.Y, p.AOERadius)
			}
			for _, id := range targets {
				report.EnemyHits++
				if enemies.ApplyDamage(id, p.Damage) {
					report.Kills = append(report.Kills, id)
				}
			}
			p.TTL = 0

		case component.OwnerEnemy:
			if report.PlayerDied {
				continue
			}
			if vmath.CircleOverlap(p.X, p.Y, parameter.HitRadiusPlayer, pl.X, pl.Y, pl.Radius) {
				before := pl.HP
				report.PlayerHits++
				if player.TakeDamage(p.Damage) {
					report.PlayerDied = true
				}
				report.PlayerDamage += before - pl.HP
				p.TTL = 0
			}
		}
	}

	s.compact()
	return report
}

// firstEnemyWithin returns the earliest spawned enemy whose body is within pad of the point
func firstEnemyWithin(list []*component.Enemy, x, y, pad float64) *component.Enemy {
	for _, e := range list {
		if vmath.CircleOverlap(x, y, pad, e.X, e.Y, e.Radius) {
			return e
		}
	}
	return nil
}

// areaTargets lists every enemy within aoe of the point, struck first and exactly once
func areaTargets(list []*component.Enemy, struck core.Entity, x, y, aoe float64) []core.Entity {
	ids := []core.Entity{struck}
	for _, e := range list {
		if e.ID == struck {
			continue
		}
		if vmath.CircleOverlap(x, y, aoe, e.X, e.Y, e.Radius) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// compact removes projectiles with ttl <= 0, preserving order
func (s *ProjectileSystem) compact() {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.TTL > 0 {
			kept = append(kept, p)
		}
	}
	s.projectiles = kept
	s.statActive.Store(int64(len(s.projectiles)))
}
