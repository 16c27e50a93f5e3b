package parameter

// Particle defaults
const (
	ParticleDefaultLife = 30
	ParticleDefaultSize = 3.0

	// Ability feedback
	ParticleCleaveLife = 20
	ParticleCleaveSize = 6.0
	ParticleStepLife   = 20
	ParticleStepSize   = 6.0
	ParticleCritLife   = 12
	ParticleCritSize   = 5.0

	// ParticleBurstSpeed is radial speed for ring bursts
	ParticleBurstSpeed = 1.5
	// ParticleBurstCount is ring size for kill bursts
	ParticleBurstCount = 8
)

// Particle colors are rendering hints only
const (
	ColorCleave = "#ffcc88"
	ColorStep   = "#8888ff"
	ColorCrit   = "#ffd700"
	ColorKill   = "#ff7878"
	ColorLevel  = "#34d399"
)
