package physics

import (
	"math"

	"github.com/lixenwraith/word-catch/core"
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/vmath"
)

// Bounds is the axis-aligned reflecting volume tokens drift in
type Bounds struct {
	HalfX      float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// VolumeBounds builds the game volume for a boundary extent
func VolumeBounds(extent float64) Bounds {
	return Bounds{
		HalfX: extent / parameter.BoundaryXDivisor,
		MinY:  parameter.VolumeMinY,
		MaxY:  parameter.VolumeMaxY,
		MinZ:  parameter.VolumeMinZ,
		MaxZ:  parameter.VolumeMaxZ,
	}
}

// Step advances every uncaught token by one frame then resolves contacts
// Integration is frame-coupled: one velocity unit per call, no dt scaling
func Step(tokens []core.Token, boundaryExtent float64) {
	Integrate(tokens, VolumeBounds(boundaryExtent))
	ResolveCollisions(tokens)
}

// Integrate moves uncaught tokens and flips velocity components outside the walls
func Integrate(tokens []core.Token, b Bounds) {
	for i := range tokens {
		t := &tokens[i]
		if t.Caught {
			continue
		}
		t.Position = vmath.V3FAdd(t.Position, t.Velocity)
		Reflect(&t.Position, &t.Velocity, b)
	}
}

// Reflect negates velocity on any axis whose position lies outside the volume
// Position is left untouched; an overshooting token drifts back over the next frames
func Reflect(pos, vel *vmath.Vec3F, b Bounds) {
	if math.Abs(pos.X) > b.HalfX {
		vel.X = -vel.X
	}
	if pos.Y < b.MinY || pos.Y > b.MaxY {
		vel.Y = -vel.Y
	}
	if pos.Z < b.MinZ || pos.Z > b.MaxZ {
		vel.Z = -vel.Z
	}
}

// ResolveCollisions runs a single O(n²) pass over unordered pairs of uncaught tokens in index order
// Returns the number of pairs that exchanged momentum
func ResolveCollisions(tokens []core.Token) int {
	resolved := 0
	for i := 0; i < len(tokens); i++ {
		if tokens[i].Caught {
			continue
		}
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].Caught {
				continue
			}
			if CollideSpheres(&tokens[i].Position, &tokens[j].Position, &tokens[i].Velocity, &tokens[j].Velocity, parameter.TokenRadius) {
				resolved++
			}
		}
	}
	return resolved
}

// CollideSpheres resolves an equal-mass, restitution 1 contact between two spheres of radius r
// Normal points from B to A; a pair moving apart along it is skipped so it can finish separating
// Each sphere is pushed half the penetration depth along the normal
func CollideSpheres(posA, posB, velA, velB *vmath.Vec3F, r float64) bool {
	dx := posA.X - posB.X
	dy := posA.Y - posB.Y
	dz := posA.Z - posB.Z

	distSq := dx*dx + dy*dy + dz*dz
	minDist := r * 2
	if distSq >= minDist*minDist {
		return false
	}

	dist := math.Sqrt(distSq)
	if dist == 0 {
		dist = parameter.CoincidentDistance
	}

	invDist := 1.0 / dist
	nx, ny, nz := dx*invDist, dy*invDist, dz*invDist

	relVx := velA.X - velB.X
	relVy := velA.Y - velB.Y
	relVz := velA.Z - velB.Z

	vn := relVx*nx + relVy*ny + relVz*nz

	// Separating
	if vn > 0 {
		return false
	}

	// Equal masses with e=1: j = (1+e)*vn / (1/m + 1/m) reduces to vn
	velA.X -= vn * nx
	velA.Y -= vn * ny
	velA.Z -= vn * nz
	velB.X += vn * nx
	velB.Y += vn * ny
	velB.Z += vn * nz

	overlap := (minDist - dist) / 2
	posA.X += nx * overlap
	posA.Y += ny * overlap
	posA.Z += nz * overlap
	posB.X -= nx * overlap
	posB.Y -= ny * overlap
	posB.Z -= nz * overlap

	return true
}

// KineticEnergy returns the sum of squared speeds of uncaught tokens (unit mass, no 1/2 factor)
func KineticEnergy(tokens []core.Token) float64 {
	e := 0.0
	for i := range tokens {
		if tokens[i].Caught {
			continue
		}
		e += vmath.V3FMagSq(tokens[i].Velocity)
	}
	return e
}
