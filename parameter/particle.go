package parameter

// Catch burst
const (
	// BurstSize is the particle count spawned per catch
	BurstSize = 80

	// ParticleCap bounds live particles; oldest are dropped first
	ParticleCap = 300

	// ParticleMinSpeed/MaxSpeed bound the per-frame speed of burst particles
	ParticleMinSpeed = 0.03
	ParticleMaxSpeed = 0.15

	// ParticleLifeDecay is subtracted from life every frame, life starts at 1
	ParticleLifeDecay = 0.015

	// ParticleBaseRadius and ParticleLifeRadius size a particle sphere as base + life*lifeRadius
	ParticleBaseRadius = 0.045
	ParticleLifeRadius = 0.12
)
