package content

import "github.com/lixenwraith/wildhunt/component"

var enemyTypes = []component.EnemyType{
	{ID: "hydra", Name: "Hydra-Serpent", HP: 40, Speed: 0.8, Damage: 10, Color: "#8dc0ff", XP: 60, Rarity: component.RarityRare, Ranged: true},
	{ID: "shadow", Name: "Shadow Panther", HP: 24, Speed: 2.4, Damage: 8, Color: "#2b2a3a", XP: 30, Rarity: component.RarityUncommon},
	{ID: "wolf", Name: "Eldritch Wolf", HP: 20, Speed: 1.8, Damage: 6, Color: "#6b7cff", XP: 25, Rarity: component.RarityCommon},
	{ID: "hive", Name: "Insectoid Horror", HP: 30, Speed: 1.2, Damage: 7, Color: "#9bf48b", XP: 40, Rarity: component.RarityUncommon},
}

// EnemyTypeCount returns the number of enemy templates
func EnemyTypeCount() int {
	return len(enemyTypes)
}

// EnemyTypeAt returns the template at index i in table order
func EnemyTypeAt(i int) component.EnemyType {
	return enemyTypes[i]
}

// EnemyType looks up a template by id
func EnemyType(id string) (component.EnemyType, bool) {
	for _, t := range enemyTypes {
		if t.ID == id {
			return t, true
		}
	}
	return component.EnemyType{}, false
}
