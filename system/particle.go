package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/status"
)

// ParticleSystem owns cosmetic particles; it never draws from the shared rng
type ParticleSystem struct {
	particles []component.Particle

	statActive *atomic.Int64
}

func NewParticleSystem(reg *status.Registry) *ParticleSystem {
	return &ParticleSystem{
		statActive: reg.Ints.Get(status.KeyParticleActive),
	}
}

func (s *ParticleSystem) Init() {
	s.Clear()
}

func (s *ParticleSystem) Name() string {
	return "particle"
}

func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticle
}

// Particles returns the live particles
func (s *ParticleSystem) Particles() []component.Particle {
	return s.particles
}

// Spawn adds one particle; non-positive life and size take the defaults
func (s *ParticleSystem) Spawn(x, y, vx, vy float64, life int, color string, size float64) {
	if life <= 0 {
		life = parameter.ParticleDefaultLife
	}
	if size <= 0 {
		size = parameter.ParticleDefaultSize
	}
	s.particles = append(s.particles, component.Particle{
		X: x, Y: y, VX: vx, VY: vy,
		Life:    life,
		MaxLife: life,
		Color:   color,
		Size:    size,
		Alpha:   1,
	})
	s.statActive.Store(int64(len(s.particles)))
}

// Burst spawns count particles evenly spaced on a ring moving outward
func (s *ParticleSystem) Burst(x, y float64, count int, speed float64, life int, color string, size float64) {
	if count <= 0 {
		return
	}
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		a := step * float64(i)
		s.Spawn(x, y, math.Cos(a)*speed, math.Sin(a)*speed, life, color, size)
	}
}

// Update moves particles, ages them and recomputes alpha
func (s *ParticleSystem) Update() {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.Alpha = float64(p.Life) / float64(p.MaxLife)
		kept = append(kept, p)
	}
	s.particles = kept
	s.statActive.Store(int64(len(s.particles)))
}

func (s *ParticleSystem) Clear() {
	s.particles = nil
	s.statActive.Store(0)
}
