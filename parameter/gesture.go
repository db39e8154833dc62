package parameter

// Hit testing and pinch detection
const (
	// HitRadiusPx is the screen distance in pixels within which a grab reaches a token
	HitRadiusPx = 160.0

	// PinchThreshold is the index-thumb tip distance in normalized landmark units below which the hand grabs
	PinchThreshold = 0.055
)
