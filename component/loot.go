package component

// Rarity is the loot tier
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityCount // Sentinel for array sizing
)

// String returns the lowercase tier name
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	}
	return "unknown"
}

// LootItem is a table entry; inventory instances carry Quantity
type LootItem struct {
	Name     string
	Rarity   Rarity
	Value    int
	Weight   float64
	Quantity int
}
