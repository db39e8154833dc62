package core

import "github.com/lixenwraith/word-catch/vmath"

// Token is a catchable word drifting through the volume
// ID, Text and Color are fixed at creation; Caught only moves false -> true within a round
type Token struct {
	ID       string
	Text     string
	Color    string // hex "#RRGGBB"
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Caught   bool
}

// Active reports whether physics and hit testing still consider the token
func (t *Token) Active() bool {
	return !t.Caught
}

// CountCaught returns the number of caught tokens, the authoritative score
func CountCaught(tokens []Token) int {
	n := 0
	for i := range tokens {
		if tokens[i].Caught {
			n++
		}
	}
	return n
}

// FindToken returns the index of the token with id, or -1
func FindToken(tokens []Token, id string) int {
	for i := range tokens {
		if tokens[i].ID == id {
			return i
		}
	}
	return -1
}
