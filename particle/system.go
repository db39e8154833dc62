package particle

import (
	"math"

	"github.com/lixenwraith/word-catch/core"
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/vmath"
)

// System owns the live particle set of a session
// Not safe for concurrent use; the frame loop is the only writer
type System struct {
	particles []core.Particle
	nextID    uint64
	rng       *vmath.FastRand

	burstSize int
	cap       int
	decay     float64
}

// NewSystem creates a particle system drawing directions and speeds from rng
func NewSystem(rng *vmath.FastRand) *System {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &System{
		particles: make([]core.Particle, 0, parameter.ParticleCap),
		rng:       rng,
		burstSize: parameter.BurstSize,
		cap:       parameter.ParticleCap,
		decay:     parameter.ParticleLifeDecay,
	}
}

// SpawnBurst appends a burst at position then trims to the cap, oldest first
// Azimuth and pitch are drawn independently, which clusters directions toward the poles
func (s *System) SpawnBurst(position vmath.Vec3F, color string) {
	for i := 0; i < s.burstSize; i++ {
		angle := s.rng.Angle()
		pitch := s.rng.Angle()
		speed := s.rng.Range(parameter.ParticleMinSpeed, parameter.ParticleMaxSpeed)

		cosPitch := math.Cos(pitch)
		s.nextID++
		s.particles = append(s.particles, core.Particle{
			ID:       s.nextID,
			Position: position,
			Velocity: vmath.Vec3F{
				X: math.Cos(angle) * cosPitch * speed,
				Y: math.Sin(pitch) * speed,
				Z: math.Sin(angle) * cosPitch * speed,
			},
			Color: color,
			Life:  1.0,
		})
	}

	if over := len(s.particles) - s.cap; over > 0 {
		// Shift in place so the backing array does not grow with every burst
		n := copy(s.particles, s.particles[over:])
		s.particles = s.particles[:n]
	}
}

// Step moves every particle, ages it and drops the dead ones
func (s *System) Step() {
	live := s.particles[:0]
	for _, p := range s.particles {
		p.Position = vmath.V3FAdd(p.Position, p.Velocity)
		p.Life -= s.decay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	// Clear the tail so dropped particles do not linger in the backing array
	clear(s.particles[len(live):])
	s.particles = live
}

// Reset drops all particles; ids keep increasing across rounds
func (s *System) Reset() {
	s.particles = s.particles[:0]
}

// Len returns the live particle count
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the live set in spawn order
func (s *System) Particles() []core.Particle {
	out := make([]core.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}
