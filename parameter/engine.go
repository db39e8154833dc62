package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameRateDefault is the target render/simulation rate; physics is frame-coupled
	FrameRateDefault = 60

	// FrameRateMin/Max bound the configurable rate
	FrameRateMin = 1
	FrameRateMax = 240

	// CommandQueueSize is the buffered capacity for loop control commands
	CommandQueueSize = 16
)

// FrameInterval converts a frame rate into a ticker interval
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = FrameRateDefault
	}
	return time.Second / time.Duration(fps)
}

// Sample Queue Limits
const (
	// SampleQueueSize is the fixed capacity of the gesture sample ring buffer
	SampleQueueSize = 256

	// SampleBufferMask is the bitmask for fast modulo operations (256 - 1)
	SampleBufferMask = 255
)
