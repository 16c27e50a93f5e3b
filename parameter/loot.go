package parameter

// LootUpgradeChance is the probability a common kill drops uncommon loot
const LootUpgradeChance = 0.15
