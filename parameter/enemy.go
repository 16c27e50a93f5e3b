package parameter

// Enemy body
const (
	EnemyRadius = 10.0
)

// Enemy AI, per tick unless noted
const (
	// EnemyAggroBase is detection radius before perception bonus
	EnemyAggroBase = 140.0
	// EnemyAggroPerPerception is added per player PER point
	EnemyAggroPerPerception = 6.0
	// EnemyLeashFactor multiplies aggro radius for chase abandonment
	EnemyLeashFactor = 1.6

	// EnemyPatrolChance is per-tick probability idle turns to patrol
	EnemyPatrolChance = 0.01
	// EnemyPatrolSpanX is full width of the patrol offset box
	EnemyPatrolSpanX = 180.0
	// EnemyPatrolSpanY is full height of the patrol offset box
	EnemyPatrolSpanY = 120.0
	// EnemyPatrolSpeedFactor scales base speed while patrolling
	EnemyPatrolSpeedFactor = 0.8
	// EnemyPatrolArrival is distance at which a patrol target counts as reached
	EnemyPatrolArrival = 6.0

	// EnemyContactPadding is added to radius sum for melee contact
	EnemyContactPadding = 8.0
	// EnemyDisengagePadding is added to radius sum for attack to chase fallback
	EnemyDisengagePadding = 20.0

	// EnemyAttackIntervalMin is minimum ticks between contact hits
	EnemyAttackIntervalMin = 40
	// EnemyAttackIntervalSpread is random extra ticks, exclusive
	EnemyAttackIntervalSpread = 30
)

// Ranged enemy
const (
	EnemyStandoffDistance = 220.0
	// EnemyStandoffDeadZone is fractional tolerance around the standoff distance
	EnemyStandoffDeadZone = 0.1

	EnemyRetreatSpeedFactor  = 0.8
	EnemyApproachSpeedFactor = 0.9

	// EnemyShootRange is max distance at which ranged enemies fire
	EnemyShootRange = 600.0

	EnemyShootCooldownMin    = 80
	EnemyShootCooldownSpread = 40
	EnemyShotSpeedMin        = 4.0
	EnemyShotSpeedJitter     = 2.0
)

// Separation keeps enemies from stacking
const (
	// EnemySeparationDistSq is squared distance under which neighbours repel
	EnemySeparationDistSq = 1200.0
	// EnemySeparationStrength scales the offset vector into displacement
	EnemySeparationStrength = 0.002
)

// Spawning
const (
	SpawnMinDistance = 300.0
	SpawnMaxDistance = 700.0

	// SpawnScaleMin is the stat multiplier at world center
	SpawnScaleMin = 0.5
	// SpawnScaleMax is the stat multiplier at the half diagonal
	SpawnScaleMax = 2.0

	// SpawnIntervalBase is seconds between waves before jitter
	SpawnIntervalBase = 2.4
	// SpawnIntervalJitter is max extra seconds drawn once per director
	SpawnIntervalJitter = 1.2
	// SpawnLevelsPerExtra grows the wave size cap every N levels
	SpawnLevelsPerExtra = 4
)
