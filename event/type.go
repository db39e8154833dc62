package event

import (
	"time"

	"github.com/lixenwraith/word-catch/gesture"
)

// SensorSample is a gesture sample stamped with its arrival time
// The stamp, not the frame time, is what the catch cooldown is measured against
type SensorSample struct {
	Sample gesture.Sample
	At     time.Time
}
