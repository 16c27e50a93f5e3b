package content

import (
	"strings"

	"github.com/lixenwraith/wildhunt/component"
)

var classes = []component.ClassDef{
	{
		Key:         "warrior",
		Name:        "Warrior",
		Description: "+2 STR, +1 VIT per level",
		Color:       "#ff6b6b",
		Bonuses:     component.Stats{Str: 2, Vit: 1},
		AutoAlloc:   component.StatStr,
		Abilities: []component.AbilityDef{
			{Name: "Cleave", Key: "click", Cost: 8, Description: "Slash with great force"},
			{Name: "Fortify", Key: "E", Cost: 12, Description: "Reduce damage by 30%"},
		},
	},
	{
		Key:         "rogue",
		Name:        "Rogue",
		Description: "+2 DEX, +1 PER per level",
		Color:       "#6b7cff",
		Bonuses:     component.Stats{Dex: 2, Per: 1},
		AutoAlloc:   component.StatDex,
		Abilities: []component.AbilityDef{
			{Name: "Backstab", Key: "click", Cost: 5, Description: "Quick deadly strike"},
			{Name: "Shadow Step", Key: "E", Cost: 8, Description: "Teleport a short distance"},
		},
	},
	{
		Key:         "mage",
		Name:        "Mage",
		Description: "+3 MANA, +1 PER per level",
		Color:       "#a78bfa",
		Bonuses:     component.Stats{Per: 1, Mana: 3},
		AutoAlloc:   component.StatMana,
		Abilities: []component.AbilityDef{
			{Name: "Mana Bolt", Key: "click", Cost: 6, Description: "Ranged magical projectile"},
			{Name: "Fireball", Key: "E", Cost: 15, Description: "Area explosion attack"},
		},
	},
	{
		Key:         "ranger",
		Name:        "Ranger",
		Description: "+1 STR, +1 DEX, +1 PER per level",
		Color:       "#34d399",
		Bonuses:     component.Stats{Str: 1, Dex: 1, Per: 1},
		AutoAlloc:   component.StatPer,
		Abilities: []component.AbilityDef{
			{Name: "Arrow Shot", Key: "click", Cost: 4, Description: "Precise ranged attack"},
			{Name: "Dash", Key: "E", Cost: 10, Description: "Quick movement"},
		},
	},
	{
		Key:         "paladin",
		Name:        "Paladin",
		Description: "+1 STR, +2 VIT, +1 MANA per level",
		Color:       "#fbbf24",
		Bonuses:     component.Stats{Str: 1, Mana: 1, Vit: 2},
		AutoAlloc:   component.StatVit,
		Abilities: []component.AbilityDef{
			{Name: "Holy Strike", Key: "click", Cost: 8, Description: "Blessed melee attack"},
			{Name: "Light Shield", Key: "E", Cost: 10, Description: "Defensive barrier"},
		},
	},
}

// ClassKeys returns class keys in selection order
func ClassKeys() []string {
	keys := make([]string, len(classes))
	for i := range classes {
		keys[i] = classes[i].Key
	}
	return keys
}

// Class returns a copy of the class definition for key, case-insensitive
func Class(key string) (component.ClassDef, bool) {
	key = strings.ToLower(key)
	for i := range classes {
		if classes[i].Key == key {
			def := classes[i]
			def.Abilities = append([]component.AbilityDef(nil), def.Abilities...)
			return def, true
		}
	}
	return component.ClassDef{}, false
}
