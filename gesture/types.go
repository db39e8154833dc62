package gesture

import (
	"time"

	"github.com/lixenwraith/word-catch/vmath"
)

// State is the tracker's view of the hand after the latest sample
type State uint8

const (
	StateIdle        State = iota // No hand visible
	StateTracking                 // Hand visible, open
	StateGrabPending              // Grabbing, hit test ran this sample without a hit
	StateGrabLocked               // The current continuous grab already produced a catch
	StateCooldown                 // Grabbing while the global catch cooldown is active
)

var stateNames = [...]string{
	StateIdle:        "idle",
	StateTracking:    "tracking",
	StateGrabPending: "grab_pending",
	StateGrabLocked:  "grab_locked",
	StateCooldown:    "cooldown",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Sample is one reading from the hand sensor
type Sample struct {
	HandVisible bool
	Grabbing    bool
	ScreenX     float64
	ScreenY     float64
}

// Position returns the sample's screen point
func (s Sample) Position() vmath.Vec2F {
	return vmath.Vec2F{X: s.ScreenX, Y: s.ScreenY}
}

// Viewport is the presentation surface size in pixels
type Viewport struct {
	Width, Height float64
}

// Projector maps a world point to screen pixels through the active camera
type Projector interface {
	Project(p vmath.Vec3F, vp Viewport) vmath.Vec2F
}

// ProjectorFunc adapts a function to Projector
type ProjectorFunc func(p vmath.Vec3F, vp Viewport) vmath.Vec2F

func (f ProjectorFunc) Project(p vmath.Vec3F, vp Viewport) vmath.Vec2F {
	return f(p, vp)
}

// Intent is a catch request produced by a grab that hit a token
type Intent struct {
	TokenID  string
	At       time.Time
	Distance float64 // screen distance between hand and token, pixels
}

// InteractionState is the per-session hand state
// Owned by a Tracker; written only by the gesture pipeline
type InteractionState struct {
	HandPosition vmath.Vec2F
	HandVisible  bool
	IsGrabbing   bool
	LastCatch    time.Time // zero until the first accepted catch
	IsLocked     bool
	State        State
}
