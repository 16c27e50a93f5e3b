package parameter

// AbilityDefaultCooldown applies when a definition leaves Cooldown at zero (seconds)
const AbilityDefaultCooldown = 0.8

// Melee
const (
	CleaveRadius       = 60.0
	CleaveDamage       = 1.3
	StrikeRange        = 48.0
	BackstabDamage     = 1.5
	BackstabCritChance = 0.25
	CritMultiplier     = 1.8
	HolyStrikeDamage   = 1.2
	HolyStrikeHealing  = 0.3
)

// Buffs
const (
	FortifyReduction     = 0.3
	FortifyDuration      = 5.0
	LightShieldReduction = 0.5
	LightShieldDuration  = 4.0
)

// Movement abilities
const (
	ShadowStepRange = 120.0
	DashRange       = 150.0
	DashStaminaCost = 20.0
)

// Projectiles: speed = SpeedMin + rand*SpeedJitter
const (
	ManaBoltDamage      = 0.8
	ManaBoltSpeedMin    = 6.0
	ManaBoltSpeedJitter = 2.0

	FireballDamage      = 2.0
	FireballAOE         = 50.0
	FireballSpeedMin    = 4.0
	FireballSpeedJitter = 2.0
	// FireballFallbackAOE applies when a fireball effect omits its radius
	FireballFallbackAOE = 48.0

	ArrowDamage      = 1.0
	ArrowSpeedMin    = 7.0
	ArrowSpeedJitter = 2.0
	ArrowAccuracy    = 0.95
	// ArrowSpreadRadians is the jitter span at zero accuracy
	ArrowSpreadRadians = 0.6

	GenericSpeedMin    = 4.0
	GenericSpeedJitter = 2.0
)
