package vmath

import "math"

// Vec2F is a float64 2D vector in screen pixel space
type Vec2F struct {
	X, Y float64
}

func V2FDist(a, b Vec2F) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// NDCToScreen maps normalized device coordinates ([-1,1], Y up) to pixels (Y down)
func NDCToScreen(ndcX, ndcY, width, height float64) Vec2F {
	return Vec2F{
		X: (ndcX*0.5 + 0.5) * width,
		Y: (-(ndcY * 0.5) + 0.5) * height,
	}
}
