package system

import (
	"errors"
	"testing"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/content"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/vmath"
)

func TestPlayerStartingValues(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()

	if p.X != parameter.PlayerStartX || p.Y != parameter.PlayerStartY {
		t.Errorf("Expected start (%v,%v), got (%v,%v)", parameter.PlayerStartX, parameter.PlayerStartY, p.X, p.Y)
	}
	if p.HP != 50 || p.MaxHP != 50 || p.Mana != 30 || p.Stamina != 100 {
		t.Errorf("Unexpected pools hp=%v/%v mana=%v stam=%v", p.HP, p.MaxHP, p.Mana, p.Stamina)
	}
	if p.Level != 1 || p.XP != 0 || p.XPToNext != 100 {
		t.Errorf("Unexpected progression level=%d xp=%d next=%d", p.Level, p.XP, p.XPToNext)
	}
	if p.HasClass() {
		t.Error("Expected no class at start")
	}
}

func TestSelectClassUnknown(t *testing.T) {
	r := newRig(1)
	err := r.players.SelectClass("necromancer")
	if !errors.Is(err, ErrInvalidClass) {
		t.Fatalf("Expected ErrInvalidClass, got %v", err)
	}
	if r.players.Player().HasClass() {
		t.Error("Expected class binding unchanged")
	}
}

func TestSelectClassBindsAbilities(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	p.FreeStatPoints = 3

	if err := r.players.SelectClass("warrior"); err != nil {
		t.Fatalf("SelectClass failed: %v", err)
	}
	if p.ClassName != "Warrior" || len(p.Abilities) != 2 {
		t.Fatalf("Expected Warrior with 2 abilities, got %q with %d", p.ClassName, len(p.Abilities))
	}
	if p.FreeStatPoints != 0 {
		t.Errorf("Expected free points reset to 0, got %d", p.FreeStatPoints)
	}

	p.Abilities[0].Cost = 99
	def, _ := content.Class("warrior")
	if def.Abilities[0].Cost == 99 {
		t.Error("Expected bound abilities to be a copy")
	}
}

func TestGainXPExactThreshold(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()

	levels := r.players.GainXP(p.XPToNext)
	if levels != 1 {
		t.Errorf("Expected 1 level, got %d", levels)
	}
	if p.XP != 0 {
		t.Errorf("Expected xp 0, got %d", p.XP)
	}
	if p.XPToNext != 160 {
		t.Errorf("Expected xpToNext 160, got %d", p.XPToNext)
	}
	if p.FreeStatPoints != 1 {
		t.Errorf("Expected 1 free point, got %d", p.FreeStatPoints)
	}
}

func TestGainXPMultiLevel(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()

	levels := r.players.GainXP(int(2.6 * float64(p.XPToNext)))
	if levels != 2 {
		t.Errorf("Expected 2 levels, got %d", levels)
	}
	if p.Level != 3 || p.XP != 0 || p.XPToNext != 256 {
		t.Errorf("Expected level 3 xp 0 next 256, got level %d xp %d next %d", p.Level, p.XP, p.XPToNext)
	}
}

func TestGainXPHugeAwardTerminates(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	r.players.GainXP(1_000_000_000)
	if p.XP >= p.XPToNext {
		t.Errorf("Expected xp < xpToNext, got %d >= %d", p.XP, p.XPToNext)
	}
	if p.FreeStatPoints != p.Level-1 {
		t.Errorf("Expected one free point per level, got %d for level %d", p.FreeStatPoints, p.Level)
	}
}

func TestLevelUpAppliesClassBonusAndAutoAlloc(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	if err := r.players.SelectClass("warrior"); err != nil {
		t.Fatal(err)
	}

	r.players.GainXP(100)

	// +2 STR +1 VIT bonus, +1 STR auto
	if p.Stats.Str != 13 || p.Stats.Vit != 11 {
		t.Errorf("Expected str 13 vit 11, got str %d vit %d", p.Stats.Str, p.Stats.Vit)
	}
	if p.MaxHP != 90 || p.HP != 90 {
		t.Errorf("Expected hp 90/90, got %v/%v", p.HP, p.MaxHP)
	}
	if p.MaxStamina != 110 {
		t.Errorf("Expected max stamina 110, got %v", p.MaxStamina)
	}
	if p.FreeStatPoints != 1 {
		t.Errorf("Expected 1 free point, got %d", p.FreeStatPoints)
	}
}

func TestAllocateStatVit(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	p.FreeStatPoints = 1
	hp, maxHP, stam, maxStam := p.HP, p.MaxHP, p.Stamina, p.MaxStamina

	if err := r.players.AllocateStat(component.StatVit); err != nil {
		t.Fatalf("AllocateStat failed: %v", err)
	}
	if p.MaxHP != maxHP+10 || p.HP != hp+10 || p.MaxStamina != maxStam+10 || p.Stamina != stam+10 {
		t.Errorf("Expected +10 to hp/maxHp/stam/maxStam, got hp %v/%v stam %v/%v", p.HP, p.MaxHP, p.Stamina, p.MaxStamina)
	}
	if p.FreeStatPoints != 0 {
		t.Errorf("Expected 0 free points, got %d", p.FreeStatPoints)
	}

	before := *p
	err := r.players.AllocateStat(component.StatVit)
	if !errors.Is(err, ErrInsufficientResource) {
		t.Fatalf("Expected ErrInsufficientResource, got %v", err)
	}
	if p.MaxHP != before.MaxHP || p.Stats != before.Stats || p.FreeStatPoints != 0 {
		t.Error("Expected no change when no free points")
	}
}

func TestAllocateStatEffects(t *testing.T) {
	tests := []struct {
		kind     component.StatKind
		dMaxHP   float64
		dMaxMana float64
		dSpeed   float64
		dMaxStam float64
	}{
		{component.StatStr, 10, 0, 0, 0},
		{component.StatDex, 0, 0, 0.15, 0},
		{component.StatPer, 0, 0, 0, 0},
		{component.StatMana, 0, 6, 0, 0},
		{component.StatVit, 10, 0, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			r := newRig(1)
			p := r.players.Player()
			p.FreeStatPoints = 1
			before := *p

			if err := r.players.AllocateStat(tt.kind); err != nil {
				t.Fatal(err)
			}
			if p.Stats.Get(tt.kind) != before.Stats.Get(tt.kind)+1 {
				t.Errorf("Expected stat +1")
			}
			if !almostEqual(p.MaxHP-before.MaxHP, tt.dMaxHP) ||
				!almostEqual(p.MaxMana-before.MaxMana, tt.dMaxMana) ||
				!almostEqual(p.SpeedBonus-before.SpeedBonus, tt.dSpeed) ||
				!almostEqual(p.MaxStamina-before.MaxStamina, tt.dMaxStam) {
				t.Errorf("Unexpected deltas hp %v mana %v speed %v stam %v",
					p.MaxHP-before.MaxHP, p.MaxMana-before.MaxMana, p.SpeedBonus-before.SpeedBonus, p.MaxStamina-before.MaxStamina)
			}
		})
	}
}

func TestTakeDamageReductionCapped(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	r.players.AddStatusEffect(component.StatusDamageReduction, 0.5, 4)
	r.players.AddStatusEffect(component.StatusDamageReduction, 0.6, 4)

	if got := r.players.DamageReduction(); got != parameter.DamageReductionCap {
		t.Errorf("Expected reduction capped at %v, got %v", parameter.DamageReductionCap, got)
	}
	if r.players.TakeDamage(10) {
		t.Error("Expected survival")
	}
	if !almostEqual(p.HP, 49) {
		t.Errorf("Expected hp 49, got %v", p.HP)
	}
}

func TestTakeDamageFloorsAtZero(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	if !r.players.TakeDamage(1000) {
		t.Error("Expected death signal")
	}
	if p.HP != 0 {
		t.Errorf("Expected hp 0, got %v", p.HP)
	}
	if r.players.IsAlive() {
		t.Error("Expected IsAlive false")
	}
}

func TestUpdateRegenAndExpiry(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	p.HP = 20
	p.Mana = 10
	p.Cooldowns["cleave"] = 0.8
	r.players.AddStatusEffect(component.StatusDamageReduction, 0.3, 0.5)

	r.players.Update(0)
	if p.HP != 20 || len(p.StatusEffects) != 1 {
		t.Fatal("Expected dt=0 to be a no-op")
	}

	r.players.Update(1)
	// hp: 0.5 + 0.6*10 ; mana: 0.6 + 0.8*10
	if !almostEqual(p.HP, 26.5) {
		t.Errorf("Expected hp 26.5, got %v", p.HP)
	}
	if !almostEqual(p.Mana, 18.6) {
		t.Errorf("Expected mana 18.6, got %v", p.Mana)
	}
	if p.Cooldowns["cleave"] != 0 {
		t.Errorf("Expected cooldown 0, got %v", p.Cooldowns["cleave"])
	}
	if len(p.StatusEffects) != 0 {
		t.Errorf("Expected expired effect removed, got %d", len(p.StatusEffects))
	}

	r.players.Update(100)
	if p.HP != p.MaxHP || p.Mana != p.MaxMana {
		t.Errorf("Expected regen clamped to max, got hp %v/%v mana %v/%v", p.HP, p.MaxHP, p.Mana, p.MaxMana)
	}
}

func TestIntegrateMovementWallClamp(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	r.players.MoveTo(25, 25)

	for i := 0; i < 200; i++ {
		r.players.IntegrateMovement(-1, -1, false, 1.0/60)
		if p.X < parameter.WallMargin || p.Y < parameter.WallMargin {
			t.Fatalf("Tick %d: position (%v,%v) left the wall margin", i, p.X, p.Y)
		}
		if speed := vmath.Magnitude(p.VX, p.VY); speed > p.EffectiveMaxSpeed()+1e-9 {
			t.Fatalf("Tick %d: speed %v above cap", i, speed)
		}
	}
	if p.X != parameter.WallMargin || p.Y != parameter.WallMargin {
		t.Errorf("Expected pinned at margin, got (%v,%v)", p.X, p.Y)
	}
}

func TestSprintDrainsStamina(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()

	r.players.IntegrateMovement(1, 0, true, 1.0/60)
	if !almostEqual(p.Stamina, 99.6) {
		t.Errorf("Expected stamina 99.6, got %v", p.Stamina)
	}
	if !almostEqual(p.VX, parameter.MoveAccel*parameter.MoveAccelSprintFactor) {
		t.Errorf("Expected sprint acceleration, got vx %v", p.VX)
	}

	p.Stamina = 0
	p.VX = 0
	r.players.IntegrateMovement(1, 0, true, 1.0/60)
	if !almostEqual(p.VX, parameter.MoveAccel*parameter.MoveAccelWalkFactor) {
		t.Errorf("Expected walk acceleration without stamina, got vx %v", p.VX)
	}
	if p.Stamina != 0 {
		t.Errorf("Expected stamina to stay 0, got %v", p.Stamina)
	}
}

func TestIdleFrictionRecoversStamina(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	p.VX = 2
	p.Stamina = 50

	r.players.IntegrateMovement(0, 0, false, 1.0/60)
	if !almostEqual(p.VX, 1.76) {
		t.Errorf("Expected vx 1.76, got %v", p.VX)
	}
	if !almostEqual(p.Stamina, 50.2) {
		t.Errorf("Expected stamina 50.2, got %v", p.Stamina)
	}
}

func TestResetClearsClassAndProgress(t *testing.T) {
	r := newRig(1)
	p := r.players.Player()
	_ = r.players.SelectClass("mage")
	r.players.GainXP(500)
	r.players.AddLoot(component.LootItem{Name: "Bone Shard"})
	r.players.MoveTo(100, 100)

	r.players.Reset()
	if p.HasClass() || len(p.Abilities) != 0 {
		t.Error("Expected class cleared")
	}
	if p.Level != 1 || p.XP != 0 || p.XPToNext != 100 || len(p.Inventory) != 0 {
		t.Errorf("Expected progression reset, got level %d xp %d next %d inv %d", p.Level, p.XP, p.XPToNext, len(p.Inventory))
	}
	if p.X != parameter.PlayerStartX || p.Y != parameter.PlayerStartY {
		t.Errorf("Expected start position, got (%v,%v)", p.X, p.Y)
	}
	if p.Stats.Mana != parameter.PlayerStartStat {
		t.Errorf("Expected stats reset, got mana stat %d", p.Stats.Mana)
	}
}

func TestTakeInventoryEmpties(t *testing.T) {
	r := newRig(1)
	r.players.AddLoot(component.LootItem{Name: "Beast Pelt"})
	r.players.AddLoot(component.LootItem{Name: "Bone Shard", Quantity: 2})

	items := r.players.TakeInventory()
	if len(items) != 2 || items[0].Quantity != 1 || items[1].Quantity != 2 {
		t.Errorf("Unexpected items %+v", items)
	}
	if len(r.players.Player().Inventory) != 0 {
		t.Error("Expected empty inventory")
	}
}
