package engine

import (
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/vmath"
)

// SpawnDirector paces automatic enemy waves
type SpawnDirector struct {
	interval float64
	elapsed  float64
	enabled  bool
}

// NewSpawnDirector draws the wave interval once from rng
func NewSpawnDirector(rng *vmath.FastRand, enabled bool) *SpawnDirector {
	return &SpawnDirector{
		interval: parameter.SpawnIntervalBase + rng.Float64()*parameter.SpawnIntervalJitter,
		enabled:  enabled,
	}
}

// Advance accumulates dt seconds and returns how many waves came due
func (d *SpawnDirector) Advance(dt float64) int {
	if !d.enabled || dt <= 0 {
		return 0
	}
	d.elapsed += dt
	waves := 0
	for d.elapsed >= d.interval {
		d.elapsed -= d.interval
		waves++
	}
	return waves
}

func (d *SpawnDirector) Interval() float64 {
	return d.interval
}

func (d *SpawnDirector) Enabled() bool {
	return d.enabled
}

// SetEnabled toggles automatic waves; accumulated time is discarded
func (d *SpawnDirector) SetEnabled(on bool) {
	d.enabled = on
	d.elapsed = 0
}

func (d *SpawnDirector) Reset() {
	d.elapsed = 0
}
