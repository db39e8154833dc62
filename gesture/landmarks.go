package gesture

import (
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/vmath"
)

// SampleFromLandmarks converts normalized ([0,1]) index and thumb tip landmarks into a sample
// A pinch narrower than PinchThreshold is a grab; the index tip is the hand position
func SampleFromLandmarks(indexTip, thumbTip vmath.Vec2F, vp Viewport) Sample {
	pinch := vmath.V2FDist(indexTip, thumbTip)
	return Sample{
		HandVisible: true,
		Grabbing:    pinch < parameter.PinchThreshold,
		ScreenX:     indexTip.X * vp.Width,
		ScreenY:     indexTip.Y * vp.Height,
	}
}

// NoHand is the sample emitted when the detector finds no landmarks
func NoHand() Sample {
	return Sample{}
}
