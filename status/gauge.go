package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a lock-free float64 metric such as player hp
// The zero value reads 0
type Gauge struct {
	v atomic.Uint64
}

// Store publishes x
func (g *Gauge) Store(x float64) {
	g.v.Store(math.Float64bits(x))
}

// Load returns the last published value
func (g *Gauge) Load() float64 {
	return math.Float64frombits(g.v.Load())
}

// Add shifts the gauge by delta and returns the result
func (g *Gauge) Add(delta float64) float64 {
	for {
		prev := g.v.Load()
		sum := math.Float64frombits(prev) + delta
		if g.v.CompareAndSwap(prev, math.Float64bits(sum)) {
			return sum
		}
	}
}
