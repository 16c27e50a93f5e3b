package status

import "sync/atomic"

// Metric keys published by the simulation
const (
	KeyPlayerLevel      = "player.level"
	KeyPlayerHP         = "player.hp"
	KeyEnemyActive      = "enemy.active"
	KeyEnemyKilled      = "enemy.killed"
	KeyEnemySpawned     = "enemy.spawned"
	KeyProjectileActive = "projectile.active"
	KeyAbilityCast      = "ability.cast"
	KeyAbilityFailed    = "ability.failed"
	KeyLootDrops        = "loot.drops"
	KeyParticleActive   = "particle.active"
	KeyEngineTicks      = "engine.ticks"
	KeyEngineDeaths     = "engine.deaths"
	KeyClassBound       = "player.class_bound"
)

// Registry is the telemetry facade
// Systems cache pointers at construction; tick code writes the atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Gauges *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Gauges: NewMetricMap[Gauge](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Gauges.Count()
}

// Line is one rendered metric for a debug overlay
type Line struct {
	Key   string
	Value string
}

// Lines flattens every metric into key-sorted lines, bools first then ints then gauges
// Safe to call from a goroutine other than the tick goroutine
func (r *Registry) Lines(formatInt func(int64) string, formatFloat func(float64) string) []Line {
	lines := make([]Line, 0, r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		v := "off"
		if ptr.Load() {
			v = "on"
		}
		lines = append(lines, Line{Key: key, Value: v})
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		lines = append(lines, Line{Key: key, Value: formatInt(ptr.Load())})
	})
	r.Gauges.Range(func(key string, ptr *Gauge) {
		lines = append(lines, Line{Key: key, Value: formatFloat(ptr.Load())})
	})
	return lines
}
