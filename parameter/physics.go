package parameter

// Simulation volume
// Walls are one-sided reflectors: velocity flips, position is never clamped
const (
	// BoundaryExtent is the nominal width of the volume; the X wall sits at ±BoundaryExtent/BoundaryXDivisor
	BoundaryExtent   = 5.0
	BoundaryXDivisor = 1.5

	VolumeMinY = 0.7
	VolumeMaxY = 2.9
	VolumeMinZ = -5.5
	VolumeMaxZ = -1.2
)

// Spawn region, relative to the volume
const (
	// SpawnCenterY and SpawnSpreadY place tokens in [1.0, 2.0)
	SpawnCenterY = 1.5
	SpawnSpreadY = 1.0

	// SpawnNearZ and SpawnDepthZ place tokens in (-5, -3]
	SpawnNearZ  = -3.0
	SpawnDepthZ = 2.0
)

// Token collision
const (
	// TokenRadius is the sphere radius of a token for pairwise collision
	TokenRadius = 0.65

	// CoincidentDistance replaces a zero center distance to avoid dividing by zero
	CoincidentDistance = 0.1
)
