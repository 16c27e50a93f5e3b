package content

import "github.com/lixenwraith/wildhunt/component"

var lootTable = [component.RarityCount][]component.LootItem{
	component.RarityCommon: {
		{Name: "Beast Pelt", Rarity: component.RarityCommon, Value: 10, Weight: 1},
		{Name: "Bone Shard", Rarity: component.RarityCommon, Value: 5, Weight: 0.5},
	},
	component.RarityUncommon: {
		{Name: "Mana Crystal", Rarity: component.RarityUncommon, Value: 50, Weight: 0.5},
		{Name: "Essence Vial", Rarity: component.RarityUncommon, Value: 30, Weight: 0.3},
	},
	component.RarityRare: {
		{Name: "Legendary Gem", Rarity: component.RarityRare, Value: 200, Weight: 0.1},
		{Name: "Ancient Rune", Rarity: component.RarityRare, Value: 150, Weight: 0.2},
	},
}

// LootItems returns the entries for rarity; ok is false when the tier is absent
func LootItems(r component.Rarity) ([]component.LootItem, bool) {
	if r >= component.RarityCount || len(lootTable[r]) == 0 {
		return nil, false
	}
	return lootTable[r], true
}
