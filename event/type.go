package event

// EventType represents the type of game event
type EventType int

const (
	// EventClassSelected signals a class was bound to the player
	// Trigger: Game.SelectClass
	// Consumer: UI | Payload: ClassSelectedPayload (value)
	EventClassSelected EventType = iota

	// EventLevelUp signals one or more level gains from a single XP award
	// Trigger: kill reward
	// Consumer: UI | Payload: LevelUpPayload (value)
	EventLevelUp

	// EventStatAllocated signals a free point was spent
	// Trigger: Game.AllocateStat
	// Consumer: UI | Payload: StatAllocatedPayload (value)
	EventStatAllocated

	// EventAbilityCast signals a successful ability execution
	// Trigger: Game.CastAbility
	// Consumer: UI | Payload: AbilityCastPayload (value)
	EventAbilityCast

	// EventEnemySpawned signals a new enemy entered the world
	// Trigger: Game.SpawnEnemy, SpawnDirector
	// Consumer: UI | Payload: EnemySpawnedPayload (value)
	EventEnemySpawned

	// EventEnemyKilled signals an enemy was removed after its rewards were granted
	// Trigger: EnemySystem kill handler
	// Consumer: UI | Payload: EnemyKilledPayload (value)
	EventEnemyKilled

	// EventLootGained signals an item entered the player inventory
	// Trigger: EnemySystem kill handler
	// Consumer: UI loot prompt | Payload: LootGainedPayload (value)
	EventLootGained

	// EventPlayerDamaged signals player hp loss from contact or projectile
	// Trigger: Game.Tick
	// Consumer: UI | Payload: PlayerDamagedPayload (value)
	EventPlayerDamaged

	// EventPlayerDied signals hp reached zero
	// Trigger: Game.Tick
	// Consumer: UI | Payload: PlayerDiedPayload (value)
	EventPlayerDied

	// EventGameReset signals the world was cleared and the player reset
	// Trigger: Game death handling
	// Consumer: UI class prompt | Payload: nil
	EventGameReset

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventClassSelected: "ClassSelected",
	EventLevelUp:       "LevelUp",
	EventStatAllocated: "StatAllocated",
	EventAbilityCast:   "AbilityCast",
	EventEnemySpawned:  "EnemySpawned",
	EventEnemyKilled:   "EnemyKilled",
	EventLootGained:    "LootGained",
	EventPlayerDamaged: "PlayerDamaged",
	EventPlayerDied:    "PlayerDied",
	EventGameReset:     "GameReset",
}

// String returns the event name, or "Unknown"
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}
