package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/word-catch/core"
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/vmath"
)

func TestIntegrateAdvancesByVelocity(t *testing.T) {
	tokens := []core.Token{{
		Position: vmath.Vec3F{X: 0, Y: 1.5, Z: -3},
		Velocity: vmath.Vec3F{X: 0.01, Y: -0.02, Z: 0.005},
	}}

	Step(tokens, parameter.BoundaryExtent)

	assert.InDelta(t, 0.01, tokens[0].Position.X, 1e-12)
	assert.InDelta(t, 1.48, tokens[0].Position.Y, 1e-12)
	assert.InDelta(t, -2.995, tokens[0].Position.Z, 1e-12)
	assert.Equal(t, vmath.Vec3F{X: 0.01, Y: -0.02, Z: 0.005}, tokens[0].Velocity)
}

func TestBoundaryReflectionY(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		vy   float64
	}{
		{"above ceiling", 2.89, 0.02},
		{"below floor", 0.71, -0.02},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := []core.Token{{
				Position: vmath.Vec3F{X: 0.2, Y: tt.y, Z: -3},
				Velocity: vmath.Vec3F{X: 0.01, Y: tt.vy, Z: -0.01},
			}}

			Step(tokens, parameter.BoundaryExtent)

			v := tokens[0].Velocity
			assert.Equal(t, -tt.vy, v.Y, "vy sign must flip")
			assert.Equal(t, 0.01, v.X, "vx untouched")
			assert.Equal(t, -0.01, v.Z, "vz untouched")
		})
	}
}

func TestBoundaryReflectionXZ(t *testing.T) {
	halfX := parameter.BoundaryExtent / parameter.BoundaryXDivisor

	tokens := []core.Token{
		{Position: vmath.Vec3F{X: halfX - 0.01, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: 0.05}},
		{Position: vmath.Vec3F{X: 0, Y: 1.5, Z: -1.21}, Velocity: vmath.Vec3F{Z: 0.05}},
		{Position: vmath.Vec3F{X: 0, Y: 1.5, Z: -5.49}, Velocity: vmath.Vec3F{Z: -0.05}},
	}
	Integrate(tokens, VolumeBounds(parameter.BoundaryExtent))

	assert.Equal(t, -0.05, tokens[0].Velocity.X)
	assert.Equal(t, -0.05, tokens[1].Velocity.Z)
	assert.Equal(t, 0.05, tokens[2].Velocity.Z)
}

func TestBoundaryDoesNotClamp(t *testing.T) {
	halfX := parameter.BoundaryExtent / parameter.BoundaryXDivisor
	tokens := []core.Token{{
		Position: vmath.Vec3F{X: halfX + 0.05, Y: 1.5, Z: -3},
		Velocity: vmath.Vec3F{X: 0.05},
	}}

	Integrate(tokens, VolumeBounds(parameter.BoundaryExtent))

	// Overshoot is kept, only velocity flips
	assert.InDelta(t, halfX+0.1, tokens[0].Position.X, 1e-12)
	assert.Equal(t, -0.05, tokens[0].Velocity.X)
}

func TestCaughtTokensAreFrozen(t *testing.T) {
	tokens := []core.Token{
		{Position: vmath.Vec3F{X: 0, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: 0.1}, Caught: true},
		{Position: vmath.Vec3F{X: 0.1, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: -0.1}},
	}

	Step(tokens, parameter.BoundaryExtent)

	assert.Equal(t, vmath.Vec3F{X: 0, Y: 1.5, Z: -3}, tokens[0].Position)
	assert.Equal(t, vmath.Vec3F{X: 0.1}, tokens[0].Velocity)
	// The live token overlaps the caught one but no contact is resolved against it
	assert.Equal(t, vmath.Vec3F{X: -0.1}, tokens[1].Velocity)
}

func TestCollisionSymmetry(t *testing.T) {
	tokens := []core.Token{
		{Position: vmath.Vec3F{X: 0.5, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: -0.01}},
		{Position: vmath.Vec3F{X: -0.5, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: 0.01}},
	}
	before := KineticEnergy(tokens)
	sepBefore := vmath.V3FMag(vmath.V3FSub(tokens[0].Position, tokens[1].Position))

	n := ResolveCollisions(tokens)
	require.Equal(t, 1, n)

	sepAfter := vmath.V3FMag(vmath.V3FSub(tokens[0].Position, tokens[1].Position))
	assert.Greater(t, sepAfter, sepBefore)
	assert.InDelta(t, 2*parameter.TokenRadius, sepAfter, 1e-12, "pushed to touching distance")
	assert.InDelta(t, before, KineticEnergy(tokens), 1e-15)

	// Normal components exchanged
	assert.InDelta(t, 0.01, tokens[0].Velocity.X, 1e-15)
	assert.InDelta(t, -0.01, tokens[1].Velocity.X, 1e-15)

	// Next frame keeps them apart
	Step(tokens, parameter.BoundaryExtent)
	sepNext := vmath.V3FMag(vmath.V3FSub(tokens[0].Position, tokens[1].Position))
	assert.Greater(t, sepNext, sepAfter)
}

func TestCollisionOblique(t *testing.T) {
	tokens := []core.Token{
		{Position: vmath.Vec3F{X: 0.3, Y: 1.8, Z: -3.1}, Velocity: vmath.Vec3F{X: -0.02, Y: 0.01, Z: 0.003}},
		{Position: vmath.Vec3F{X: -0.2, Y: 1.5, Z: -3.0}, Velocity: vmath.Vec3F{X: 0.015, Y: -0.004, Z: 0.0}},
	}
	before := KineticEnergy(tokens)
	momentumBefore := vmath.V3FAdd(tokens[0].Velocity, tokens[1].Velocity)

	require.Equal(t, 1, ResolveCollisions(tokens))

	momentumAfter := vmath.V3FAdd(tokens[0].Velocity, tokens[1].Velocity)
	assert.InDelta(t, before, KineticEnergy(tokens), 1e-12)
	assert.InDelta(t, momentumBefore.X, momentumAfter.X, 1e-15)
	assert.InDelta(t, momentumBefore.Y, momentumAfter.Y, 1e-15)
	assert.InDelta(t, momentumBefore.Z, momentumAfter.Z, 1e-15)
}

func TestCollisionSkipsSeparatingPair(t *testing.T) {
	tokens := []core.Token{
		{Position: vmath.Vec3F{X: 0.5, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: 0.01}},
		{Position: vmath.Vec3F{X: -0.5, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: -0.01}},
	}

	assert.Zero(t, ResolveCollisions(tokens))
	assert.Equal(t, 0.5, tokens[0].Position.X, "no de-overlap while separating")
	assert.Equal(t, 0.01, tokens[0].Velocity.X)
}

func TestCollisionCoincidentCenters(t *testing.T) {
	tokens := []core.Token{
		{Position: vmath.Vec3F{X: 0, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: 0.01}},
		{Position: vmath.Vec3F{X: 0, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{}},
	}

	ResolveCollisions(tokens)

	for _, tok := range tokens {
		assert.False(t, math.IsNaN(tok.Position.X) || math.IsNaN(tok.Velocity.X))
		assert.False(t, math.IsInf(tok.Position.X, 0) || math.IsInf(tok.Velocity.X, 0))
	}
}

func TestCollisionOutOfRange(t *testing.T) {
	tokens := []core.Token{
		{Position: vmath.Vec3F{X: 1, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: -0.01}},
		{Position: vmath.Vec3F{X: -1, Y: 1.5, Z: -3}, Velocity: vmath.Vec3F{X: 0.01}},
	}
	assert.Zero(t, ResolveCollisions(tokens))
}

func TestEnergyConservedOverManyFrames(t *testing.T) {
	rng := vmath.NewFastRand(3)
	tokens := make([]core.Token, 8)
	for i := range tokens {
		tokens[i].Position = vmath.Vec3F{X: rng.Range(-1.5, 1.5), Y: rng.Range(1, 2), Z: rng.Range(-5, -3)}
		tokens[i].Velocity = vmath.Vec3F{X: rng.Range(-0.03, 0.03), Y: rng.Range(-0.03, 0.03), Z: rng.Range(-0.03, 0.03)}
	}
	before := KineticEnergy(tokens)

	for i := 0; i < 600; i++ {
		Step(tokens, parameter.BoundaryExtent)
	}

	// Walls flip signs and contacts exchange normal components; neither changes speed²
	assert.InDelta(t, before, KineticEnergy(tokens), 1e-9)
}
