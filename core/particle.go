package core

import (
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/vmath"
)

// Particle is one spark of a catch burst
type Particle struct {
	ID       uint64
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Color    string
	Life     float64 // 1 at spawn, removed once <= 0
}

// Radius is the presentation size, shrinking with life
func (p *Particle) Radius() float64 {
	return parameter.ParticleBaseRadius + p.Life*parameter.ParticleLifeRadius
}
