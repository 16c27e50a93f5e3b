package parameter

// World geometry
const (
	// WorldWidth is the default world extent along X (world units)
	WorldWidth = 3000.0
	// WorldHeight is the default world extent along Y (world units)
	WorldHeight = 2000.0
	// WallMargin keeps the player this far from every world edge
	WallMargin = 20.0
)

// Player starting values
const (
	PlayerStartX   = 1500.0
	PlayerStartY   = 1000.0
	PlayerRadius   = 16.0
	PlayerMaxSpeed = 3.0

	PlayerStartStat = 10

	PlayerStartHP      = 50.0
	PlayerStartMana    = 30.0
	PlayerStartStamina = 100.0

	PlayerStartLevel    = 1
	PlayerStartXPToNext = 100

	// PlayerXPGrowth multiplies XPToNext on every level, result rounded
	PlayerXPGrowth = 1.6
)

// Movement, per tick
const (
	// MoveAccel is base acceleration before the walk/sprint factor
	MoveAccel = 0.12
	// MoveAccelWalkFactor scales acceleration when walking
	MoveAccelWalkFactor = 0.7
	// MoveAccelSprintFactor scales acceleration when sprinting
	MoveAccelSprintFactor = 1.2
	// MoveFriction decays velocity on ticks without input
	MoveFriction = 0.88
	// SprintSpeedMultiplier raises the speed cap while sprinting
	SprintSpeedMultiplier = 1.3
	// SprintStaminaDrain is stamina spent per moving sprint tick
	SprintStaminaDrain = 0.4
	// IdleStaminaRecovery is stamina recovered per tick without input
	IdleStaminaRecovery = 0.2
)

// Regeneration, per second
const (
	RegenHPBase      = 0.5
	RegenHPPerVit    = 0.6
	RegenManaBase    = 0.6
	RegenManaPerStat = 0.8
)

// Stat allocation secondary effects
const (
	// StatHPPerPoint applies to both STR and VIT
	StatHPPerPoint    = 10.0
	StatStaminaPerVit = 10.0
	StatManaPerPoint  = 6.0
	StatSpeedPerDex   = 0.15
)

// DamageReductionCap bounds summed damage reduction from status effects
const DamageReductionCap = 0.9
