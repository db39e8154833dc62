package render

import (
	"math"

	"github.com/lixenwraith/word-catch/gesture"
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/vmath"
)

// PerspectiveCamera is a fixed pinhole camera looking down -Z
// It implements gesture.Projector so hit testing sees exactly what is drawn
type PerspectiveCamera struct {
	Position vmath.Vec3F
	FOVDeg   float64 // vertical
	Near     float64
}

var _ gesture.Projector = (*PerspectiveCamera)(nil)

// NewPerspectiveCamera returns the default viewer camera at eye height
func NewPerspectiveCamera() *PerspectiveCamera {
	return &PerspectiveCamera{
		Position: vmath.Vec3F{Y: parameter.CameraHeight},
		FOVDeg:   parameter.CameraFOVDeg,
		Near:     parameter.CameraNear,
	}
}

// Project maps a world point to pixels in vp
// Points behind the near plane land at +Inf and never hit test
func (c *PerspectiveCamera) Project(p vmath.Vec3F, vp gesture.Viewport) vmath.Vec2F {
	rel := vmath.V3FSub(p, c.Position)
	depth := -rel.Z
	if depth < c.Near {
		return vmath.Vec2F{X: math.Inf(1), Y: math.Inf(1)}
	}

	aspect := 1.0
	if vp.Height > 0 {
		aspect = vp.Width / vp.Height
	}
	f := c.focal()

	ndcX := f / aspect * rel.X / depth
	ndcY := f * rel.Y / depth
	return vmath.NDCToScreen(ndcX, ndcY, vp.Width, vp.Height)
}

// ScreenRadius returns the on-screen pixel radius of a sphere of radius r at p, 0 behind the near plane
func (c *PerspectiveCamera) ScreenRadius(p vmath.Vec3F, r float64, vp gesture.Viewport) float64 {
	depth := c.Depth(p)
	if depth < c.Near {
		return 0
	}
	return r * c.focal() * vp.Height / 2 / depth
}

func (c *PerspectiveCamera) focal() float64 {
	return 1 / math.Tan(c.FOVDeg*math.Pi/360)
}

// Depth returns the distance along the view axis, used for painter ordering
func (c *PerspectiveCamera) Depth(p vmath.Vec3F) float64 {
	return c.Position.Z - p.Z
}
