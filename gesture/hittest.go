package gesture

import (
	"github.com/lixenwraith/word-catch/core"
	"github.com/lixenwraith/word-catch/vmath"
)

// HitTest returns the index of the first uncaught token whose projection lies strictly within radius of hand
// Collection order decides, not proximity: a farther token earlier in the slice wins over a nearer later one
func HitTest(projector Projector, tokens []core.Token, hand vmath.Vec2F, vp Viewport, radius float64) (index int, distance float64, ok bool) {
	if projector == nil {
		return -1, 0, false
	}
	for i := range tokens {
		if tokens[i].Caught {
			continue
		}
		screen := projector.Project(tokens[i].Position, vp)
		d := vmath.V2FDist(hand, screen)
		if d < radius {
			return i, d, true
		}
	}
	return -1, 0, false
}
