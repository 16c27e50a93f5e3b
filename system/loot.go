package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/content"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/status"
	"github.com/lixenwraith/wildhunt/vmath"
)

// LootSystem rolls items from the static loot table
type LootSystem struct {
	rng *vmath.FastRand

	statDrops *atomic.Int64
}

func NewLootSystem(rng *vmath.FastRand, reg *status.Registry) *LootSystem {
	return &LootSystem{
		rng:       rng,
		statDrops: reg.Ints.Get(status.KeyLootDrops),
	}
}

func (s *LootSystem) Name() string {
	return "loot"
}

// GenerateLoot picks uniformly from the rarity's entries, common when the tier is absent
func (s *LootSystem) GenerateLoot(rarity component.Rarity) component.LootItem {
	items, ok := content.LootItems(rarity)
	if !ok {
		items, _ = content.LootItems(component.RarityCommon)
	}
	return items[vmath.RandomIndex(len(items), s.rng)]
}

// RollDropRarity maps a kill's rarity to the dropped tier
// Common kills upgrade to uncommon with a fixed chance; others drop at their own tier
func (s *LootSystem) RollDropRarity(enemy component.Rarity) component.Rarity {
	if enemy != component.RarityCommon {
		return enemy
	}
	weights := []float64{1 - parameter.LootUpgradeChance, parameter.LootUpgradeChance}
	if vmath.WeightedChoice(weights, s.rng) == 1 {
		return component.RarityUncommon
	}
	return component.RarityCommon
}

// Drop returns an inventory instance of quantity one
func (s *LootSystem) Drop(rarity component.Rarity) component.LootItem {
	item := s.GenerateLoot(rarity)
	item.Quantity = 1
	s.statDrops.Add(1)
	return item
}
