package parameter

// Default viewer camera
const (
	// CameraHeight is the eye height above the floor
	CameraHeight = 1.6

	// CameraFOVDeg is the vertical field of view in degrees
	CameraFOVDeg = 80.0

	// CameraNear is the near clip distance; points closer than this project off-screen
	CameraNear = 0.005
)

// Terminal cell metrics used to express cell positions in pixels
const (
	CellWidthPxDefault  = 10
	CellHeightPxDefault = 20
)
