package system

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/content"
	"github.com/lixenwraith/wildhunt/core"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/status"
	"github.com/lixenwraith/wildhunt/vmath"
)

// AbilitySystem executes the player's bound abilities
type AbilitySystem struct {
	players     *PlayerSystem
	enemies     EnemyTarget
	projectiles ProjectileSpawner
	particles   *ParticleSystem
	rng         *vmath.FastRand

	statCast   *atomic.Int64
	statFailed *atomic.Int64
}

func NewAbilitySystem(players *PlayerSystem, enemies EnemyTarget, projectiles ProjectileSpawner, particles *ParticleSystem, rng *vmath.FastRand, reg *status.Registry) *AbilitySystem {
	return &AbilitySystem{
		players:     players,
		enemies:     enemies,
		projectiles: projectiles,
		particles:   particles,
		rng:         rng,
		statCast:    reg.Ints.Get(status.KeyAbilityCast),
		statFailed:  reg.Ints.Get(status.KeyAbilityFailed),
	}
}

func (s *AbilitySystem) Name() string {
	return "ability"
}

// BaseDamage is the damage baseline every effect multiplies
func BaseDamage(p *component.Player) float64 {
	return parameter.DamageBase +
		parameter.DamageStrFactor*float64(p.Stats.Str) +
		parameter.DamagePerFactor*float64(p.Stats.Per)
}

// CooldownKey is the cooldown map key for an ability name
func CooldownKey(name string) string {
	return strings.ToLower(name)
}

// Execute casts the ability at index toward the world point (tx, ty)
// Failures leave mana and cooldowns untouched
func (s *AbilitySystem) Execute(index int, tx, ty float64) error {
	p := s.players.Player()
	if index < 0 || index >= len(p.Abilities) {
		s.statFailed.Add(1)
		return fmt.Errorf("%w: %d", ErrNoAbility, index)
	}
	def := p.Abilities[index]
	key := CooldownKey(def.Name)

	if p.Cooldowns[key] > 0 {
		s.statFailed.Add(1)
		return fmt.Errorf("%w: %s %.2fs", ErrAbilityOnCooldown, def.Name, p.Cooldowns[key])
	}
	if !s.players.SpendMana(def.Cost) {
		s.statFailed.Add(1)
		return fmt.Errorf("%w: %s needs %.0f mana", ErrInsufficientResource, def.Name, def.Cost)
	}

	cd := def.Cooldown
	if cd <= 0 {
		cd = parameter.AbilityDefaultCooldown
	}
	if p.Cooldowns == nil {
		p.Cooldowns = make(map[string]float64)
	}
	p.Cooldowns[key] = cd

	dx, dy := tx-p.X, ty-p.Y
	dist := vmath.Magnitude(dx, dy)
	base := BaseDamage(p)

	switch eff := content.EffectFor(def).(type) {
	case component.MeleeEffect:
		s.melee(p, eff, base)
	case component.BuffEffect:
		s.players.AddStatusEffect(component.StatusDamageReduction, eff.Reduction, eff.Duration)
	case component.TeleportEffect:
		s.teleport(p, eff, dx, dy, dist)
	case component.ProjectileEffect:
		s.launch(p, eff, base, dx, dy)
	case component.HealStrikeEffect:
		s.healStrike(p, eff, base)
	default:
		s.launch(p, content.GenericEffect, base, dx, dy)
	}

	s.statCast.Add(1)
	return nil
}

// melee damages enemies in radius; FirstOnly strikes a single target with an optional crit
func (s *AbilitySystem) melee(p *component.Player, eff component.MeleeEffect, base float64) {
	// Collect first: damage can remove enemies from the collection
	var targets []core.Entity
	var tx, ty []float64
	for _, e := range s.enemies.Enemies() {
		if vmath.Distance(p.X, p.Y, e.X, e.Y) < eff.Radius+e.Radius {
			targets = append(targets, e.ID)
			tx = append(tx, e.X)
			ty = append(ty, e.Y)
			if eff.FirstOnly {
				break
			}
		}
	}

	for i, id := range targets {
		dmg := base * eff.Damage
		if eff.CritChance > 0 && s.rng.Float64() < eff.CritChance {
			mult := eff.CritMultiplier
			if mult <= 0 {
				mult = parameter.CritMultiplier
			}
			dmg *= mult
			s.particles.Spawn(tx[i], ty[i], 0, 0, parameter.ParticleCritLife, parameter.ColorCrit, parameter.ParticleCritSize)
		}
		s.enemies.ApplyDamage(id, dmg)
	}

	if !eff.FirstOnly {
		s.particles.Spawn(p.X, p.Y, 0, 0, parameter.ParticleCleaveLife, parameter.ColorCleave, parameter.ParticleCleaveSize)
	}
}

// teleport moves up to Range along the aim vector, clamped inside the walls
func (s *AbilitySystem) teleport(p *component.Player, eff component.TeleportEffect, dx, dy, dist float64) {
	if dist > 0 {
		step := math.Min(eff.Range, dist)
		s.players.MoveTo(p.X+dx/dist*step, p.Y+dy/dist*step)
	}
	if eff.StaminaCost > 0 {
		s.players.DrainStamina(eff.StaminaCost)
	}
	s.particles.Spawn(p.X, p.Y, 0, 0, parameter.ParticleStepLife, parameter.ColorStep, parameter.ParticleStepSize)
}

// launch fires a player projectile; a target on the player aims along +X
func (s *AbilitySystem) launch(p *component.Player, eff component.ProjectileEffect, base, dx, dy float64) {
	speed := eff.SpeedMin + s.rng.Float64()*eff.SpeedJitter
	angle := 0.0
	if dx != 0 || dy != 0 {
		angle = math.Atan2(dy, dx)
	}
	if eff.Accuracy > 0 {
		angle += (1 - eff.Accuracy) * (s.rng.Float64() - 0.5) * parameter.ArrowSpreadRadians
	}
	aoe := eff.AOE
	if aoe <= 0 && eff.Shot == component.ProjectileFireball {
		aoe = parameter.FireballFallbackAOE
	}
	vx, vy := vmath.FromAngle(angle, speed)
	s.projectiles.Spawn(ProjectileSpec{
		X:      p.X,
		Y:      p.Y,
		VX:     vx,
		VY:     vy,
		Damage: base * eff.Damage,
		Owner:  component.OwnerPlayer,
		Kind:   eff.Shot,
		AOE:    aoe,
		TTL:    parameter.ProjectileTTLPlayer,
	})
}

// healStrike hits the first enemy in range and heals a fraction of base damage
func (s *AbilitySystem) healStrike(p *component.Player, eff component.HealStrikeEffect, base float64) {
	struck := firstEnemyWithin(s.enemies.Enemies(), p.X, p.Y, eff.Range)
	if struck == nil {
		return
	}
	s.enemies.ApplyDamage(struck.ID, base*eff.Damage)
	s.players.Heal(eff.Healing * base)
}
