package system

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/content"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/status"
	"github.com/lixenwraith/wildhunt/vmath"
)

// PlayerSystem owns the player avatar: movement, resources, progression
type PlayerSystem struct {
	player *component.Player
	bounds Bounds

	// Cached metric pointers
	statLevel *atomic.Int64
	statHP    *status.Gauge
	statClass *atomic.Bool
}

// NewPlayerSystem creates the player at the starting position with base values
func NewPlayerSystem(bounds Bounds, reg *status.Registry) *PlayerSystem {
	s := &PlayerSystem{
		player:    &component.Player{},
		bounds:    bounds,
		statLevel: reg.Ints.Get(status.KeyPlayerLevel),
		statHP:    reg.Gauges.Get(status.KeyPlayerHP),
		statClass: reg.Bools.Get(status.KeyClassBound),
	}
	s.Init()
	return s
}

// Init restores the starting state
func (s *PlayerSystem) Init() {
	s.Reset()
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

// Player returns the owned player; callers outside system treat it as read-only
func (s *PlayerSystem) Player() *component.Player {
	return s.player
}

// Reset restores pools, stats, progression, inventory and position
// The class binding is cleared as well
func (s *PlayerSystem) Reset() {
	p := s.player
	*p = component.Player{}
	p.X, p.Y = s.bounds.ClampInside(parameter.PlayerStartX, parameter.PlayerStartY)
	p.Radius = parameter.PlayerRadius
	p.MaxSpeed = parameter.PlayerMaxSpeed
	p.Stats = component.Stats{
		Str:  parameter.PlayerStartStat,
		Dex:  parameter.PlayerStartStat,
		Per:  parameter.PlayerStartStat,
		Mana: parameter.PlayerStartStat,
		Vit:  parameter.PlayerStartStat,
	}
	p.HP, p.MaxHP = parameter.PlayerStartHP, parameter.PlayerStartHP
	p.Mana, p.MaxMana = parameter.PlayerStartMana, parameter.PlayerStartMana
	p.Stamina, p.MaxStamina = parameter.PlayerStartStamina, parameter.PlayerStartStamina
	p.Level = parameter.PlayerStartLevel
	p.XPToNext = parameter.PlayerStartXPToNext
	p.Cooldowns = make(map[string]float64)
	s.publish()
}

// SelectClass binds the class, copies its abilities and clears free points
func (s *PlayerSystem) SelectClass(key string) error {
	def, ok := content.Class(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidClass, key)
	}
	p := s.player
	p.ClassKey = def.Key
	p.ClassName = def.Name
	p.Abilities = def.Abilities
	p.FreeStatPoints = 0
	s.publish()
	return nil
}

// Update advances cooldowns and status effects by dt seconds and applies regen
func (s *PlayerSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	p := s.player

	for name, cd := range p.Cooldowns {
		if cd > 0 {
			p.Cooldowns[name] = math.Max(0, cd-dt)
		}
	}

	kept := p.StatusEffects[:0]
	for _, eff := range p.StatusEffects {
		eff.Remaining -= dt
		if eff.Remaining > 0 {
			kept = append(kept, eff)
		}
	}
	p.StatusEffects = kept

	hpRegen := parameter.RegenHPBase + parameter.RegenHPPerVit*float64(p.Stats.Vit)
	manaRegen := parameter.RegenManaBase + parameter.RegenManaPerStat*float64(p.Stats.Mana)
	s.Heal(hpRegen * dt)
	s.RestoreMana(manaRegen * dt)
}

// IntegrateMovement applies one tick of input to velocity and position
// Axes are -1/0/1; movement constants are per tick, dt <= 0 pauses
func (s *PlayerSystem) IntegrateMovement(inputX, inputY float64, sprint bool, dt float64) {
	if dt <= 0 {
		return
	}
	p := s.player
	sprinting := sprint && p.Stamina > 0

	accel := parameter.MoveAccel * parameter.MoveAccelWalkFactor
	maxSpeed := p.EffectiveMaxSpeed()
	if sprinting {
		accel = parameter.MoveAccel * parameter.MoveAccelSprintFactor
		maxSpeed *= parameter.SprintSpeedMultiplier
	}

	if inputX != 0 || inputY != 0 {
		nx, ny := vmath.Normalize2D(inputX, inputY)
		p.VX += nx * accel
		p.VY += ny * accel
		if sprinting {
			s.DrainStamina(parameter.SprintStaminaDrain)
		}
	} else {
		p.VX *= parameter.MoveFriction
		p.VY *= parameter.MoveFriction
		s.RestoreStamina(parameter.IdleStaminaRecovery)
	}

	p.VX, p.VY = vmath.ClampMagnitude(p.VX, p.VY, maxSpeed)
	p.Integrate()
	p.X, p.Y = s.bounds.ClampInside(p.X, p.Y)
}

// GainXP adds experience and resolves every level it covers
// Returns the number of levels gained
func (s *PlayerSystem) GainXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	p := s.player
	p.XP += amount
	levels := 0
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		s.levelUp()
		levels++
	}
	s.publish()
	return levels
}

func (s *PlayerSystem) levelUp() {
	p := s.player
	p.Level++
	p.XPToNext = vmath.Round(float64(p.XPToNext) * parameter.PlayerXPGrowth)
	if p.XPToNext < 1 {
		p.XPToNext = 1
	}

	if def, ok := content.Class(p.ClassKey); ok {
		s.applyClassBonus(def.Bonuses)
		s.applyStat(def.AutoAlloc)
	}
	p.FreeStatPoints++
}

// applyClassBonus raises stats and the derived pools by one level of bonus
func (s *PlayerSystem) applyClassBonus(b component.Stats) {
	p := s.player
	p.Stats.Str += b.Str
	p.Stats.Dex += b.Dex
	p.Stats.Per += b.Per
	p.Stats.Mana += b.Mana
	p.Stats.Vit += b.Vit

	hp := float64(b.Str)*parameter.StatHPPerPoint + float64(b.Vit)*parameter.StatHPPerPoint
	p.MaxHP += hp
	p.HP = math.Min(p.HP+hp, p.MaxHP)

	stam := float64(b.Vit) * parameter.StatStaminaPerVit
	p.MaxStamina += stam
	p.Stamina = math.Min(p.Stamina+stam, p.MaxStamina)

	mana := float64(b.Mana) * parameter.StatManaPerPoint
	p.MaxMana += mana
	p.Mana = math.Min(p.Mana+mana, p.MaxMana)

	p.SpeedBonus += float64(b.Dex) * parameter.StatSpeedPerDex
}

// AllocateStat spends one free point on kind
func (s *PlayerSystem) AllocateStat(kind component.StatKind) error {
	if kind >= component.StatCount {
		return fmt.Errorf("allocate %d: unknown stat", kind)
	}
	if s.player.FreeStatPoints <= 0 {
		return fmt.Errorf("%w: no free stat points", ErrInsufficientResource)
	}
	s.player.FreeStatPoints--
	s.applyStat(kind)
	s.publish()
	return nil
}

// applyStat raises kind by one with its secondary effects
func (s *PlayerSystem) applyStat(kind component.StatKind) {
	p := s.player
	p.Stats.Add(kind, 1)
	switch kind {
	case component.StatStr:
		p.MaxHP += parameter.StatHPPerPoint
		p.HP += parameter.StatHPPerPoint
	case component.StatDex:
		p.SpeedBonus += parameter.StatSpeedPerDex
	case component.StatPer:
	case component.StatMana:
		p.MaxMana += parameter.StatManaPerPoint
		p.Mana += parameter.StatManaPerPoint
	case component.StatVit:
		p.MaxHP += parameter.StatHPPerPoint
		p.HP += parameter.StatHPPerPoint
		p.MaxStamina += parameter.StatStaminaPerVit
		p.Stamina += parameter.StatStaminaPerVit
	}
}

// DamageReduction sums active reduction effects, capped
func (s *PlayerSystem) DamageReduction() float64 {
	total := 0.0
	for _, eff := range s.player.StatusEffects {
		if eff.Kind == component.StatusDamageReduction && eff.Magnitude > 0 {
			total += eff.Magnitude
		}
	}
	return math.Min(parameter.DamageReductionCap, total)
}

// TakeDamage applies amount after reduction, flooring hp at zero
// Returns true when this brought hp to zero; the caller handles game over
func (s *PlayerSystem) TakeDamage(amount float64) bool {
	p := s.player
	effective := math.Max(0, amount*(1-s.DamageReduction()))
	p.HP = math.Max(0, p.HP-effective)
	if p.HP <= 0 {
		p.Dead = true
	}
	s.statHP.Store(p.HP)
	return p.Dead
}

// AddStatusEffect appends a timed effect
func (s *PlayerSystem) AddStatusEffect(kind component.StatusKind, magnitude, duration float64) {
	if duration <= 0 {
		return
	}
	s.player.StatusEffects = append(s.player.StatusEffects, component.StatusEffect{
		Kind:      kind,
		Magnitude: magnitude,
		Remaining: duration,
	})
}

func (s *PlayerSystem) Heal(amount float64) {
	p := s.player
	p.HP = vmath.Clamp(p.HP+amount, 0, p.MaxHP)
	s.statHP.Store(p.HP)
}

func (s *PlayerSystem) RestoreMana(amount float64) {
	p := s.player
	p.Mana = vmath.Clamp(p.Mana+amount, 0, p.MaxMana)
}

// SpendMana deducts cost if affordable
func (s *PlayerSystem) SpendMana(cost float64) bool {
	if s.player.Mana < cost {
		return false
	}
	s.player.Mana -= cost
	return true
}

func (s *PlayerSystem) DrainStamina(amount float64) {
	p := s.player
	p.Stamina = math.Max(0, p.Stamina-amount)
}

func (s *PlayerSystem) RestoreStamina(amount float64) {
	p := s.player
	p.Stamina = math.Min(p.MaxStamina, p.Stamina+amount)
}

// IsAlive reports hp > 0
func (s *PlayerSystem) IsAlive() bool {
	return s.player.HP > 0
}

// MoveTo places the player, clamped inside the walls
func (s *PlayerSystem) MoveTo(x, y float64) {
	s.player.X, s.player.Y = s.bounds.ClampInside(x, y)
}

// AddLoot appends an item to the inventory
func (s *PlayerSystem) AddLoot(item component.LootItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	s.player.Inventory = append(s.player.Inventory, item)
}

// TakeInventory empties the inventory and returns what it held
func (s *PlayerSystem) TakeInventory() []component.LootItem {
	items := s.player.Inventory
	s.player.Inventory = nil
	return items
}

// publish mirrors progression into telemetry
func (s *PlayerSystem) publish() {
	s.statLevel.Store(int64(s.player.Level))
	s.statHP.Store(s.player.HP)
	s.statClass.Store(s.player.HasClass())
}
