package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/word-catch/core"
	"github.com/lixenwraith/word-catch/engine"
	"github.com/lixenwraith/word-catch/gesture"
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/status"
	"github.com/lixenwraith/word-catch/vmath"
)

const cooldownBarWidth = 10

// Renderer draws session snapshots onto a tcell screen
// Terminal cells are treated as cellW x cellH pixel blocks so the camera and the hand share one pixel space
type Renderer struct {
	screen tcell.Screen
	camera *PerspectiveCamera
	cellW  float64
	cellH  float64

	metrics *status.Registry
	debug   bool

	base tcell.Style
}

// NewRenderer creates a renderer; metrics may be nil
func NewRenderer(screen tcell.Screen, camera *PerspectiveCamera, cellW, cellH int, metrics *status.Registry, debug bool) *Renderer {
	if camera == nil {
		camera = NewPerspectiveCamera()
	}
	if cellW <= 0 {
		cellW = parameter.CellWidthPxDefault
	}
	if cellH <= 0 {
		cellH = parameter.CellHeightPxDefault
	}
	return &Renderer{
		screen:  screen,
		camera:  camera,
		cellW:   float64(cellW),
		cellH:   float64(cellH),
		metrics: metrics,
		debug:   debug,
		base:    tcell.StyleDefault.Background(RgbBackground),
	}
}

// Viewport returns the screen size in pixels
func (r *Renderer) Viewport() gesture.Viewport {
	w, h := r.screen.Size()
	return gesture.Viewport{Width: float64(w) * r.cellW, Height: float64(h) * r.cellH}
}

// CellAt maps a pixel point to its terminal cell; ok is false for non-finite points
func (r *Renderer) CellAt(x, y float64) (col, row int, ok bool) {
	if math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	return int(math.Floor(x / r.cellW)), int(math.Floor(y / r.cellH)), true
}

// Draw renders one frame
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.screen.Fill(' ', r.base)
	vp := r.Viewport()

	r.drawParticles(snap.Particles, vp)
	r.drawTokens(snap.Tokens, vp)
	r.drawHand(snap.Hand)
	r.drawHUD(&snap)
	r.drawFooter()

	r.screen.Show()
}

func (r *Renderer) drawParticles(particles []core.Particle, vp gesture.Viewport) {
	for i := range particles {
		p := &particles[i]
		col, row, ok := r.CellAt(r.project(p.Position, vp))
		if !ok || !r.inField(row) {
			continue
		}

		glyph := parameter.ParticleGlyphLow
		switch px := r.camera.ScreenRadius(p.Position, p.Radius(), vp); {
		case px >= parameter.ParticleGlyphHotPx:
			glyph = parameter.ParticleGlyphHot
		case px >= parameter.ParticleGlyphMidPx:
			glyph = parameter.ParticleGlyphMid
		}
		fg := ToTcell(Fade(ParseHex(p.Color), p.Life))
		r.screen.SetContent(col, row, glyph, nil, r.base.Foreground(fg))
	}
}

func (r *Renderer) drawTokens(tokens []core.Token, vp gesture.Viewport) {
	// Far to near so closer words overwrite
	order := make([]int, 0, len(tokens))
	for i := range tokens {
		if tokens[i].Active() {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.camera.Depth(tokens[order[a]].Position) > r.camera.Depth(tokens[order[b]].Position)
	})

	for _, i := range order {
		t := &tokens[i]
		col, row, ok := r.CellAt(r.project(t.Position, vp))
		if !ok || !r.inField(row) {
			continue
		}
		text := []rune(t.Text)
		style := r.base.Foreground(ToTcell(ParseHex(t.Color))).Bold(true)
		r.drawRunes(col-len(text)/2, row, text, style)
	}
}

func (r *Renderer) drawHand(hand gesture.InteractionState) {
	if !hand.HandVisible {
		return
	}
	col, row, ok := r.CellAt(hand.HandPosition.X, hand.HandPosition.Y)
	if !ok {
		return
	}
	glyph := parameter.HandGlyphOpen
	if hand.IsGrabbing {
		glyph = parameter.HandGlyphGrab
	}
	r.screen.SetContent(col, row, glyph, nil, r.base.Foreground(ToTcell(HandColor(hand.State))).Bold(true))
}

func (r *Renderer) drawHUD(snap *engine.Snapshot) {
	width, height := r.screen.Size()
	style := r.base.Foreground(RgbHUDText)

	line := fmt.Sprintf(" caught %d/%d  time %s", snap.Score, snap.Total, engine.FormatElapsed(snap.Elapsed))
	if snap.Paused {
		line += "  PAUSED"
	}
	if r.metrics != nil && r.metrics.Bools.Get(status.KeyMuted).Load() {
		line += "  [muted]"
	}
	x := r.drawString(0, 0, line, style)

	if snap.CooldownActive {
		x = r.drawString(x+2, 0, parameter.CooldownText, style.Background(RgbCooldownBg))
		filled := int(snap.CooldownProgress * cooldownBarWidth)
		for i := 0; i < cooldownBarWidth; i++ {
			glyph := '░'
			if i < filled {
				glyph = '█'
			}
			r.screen.SetContent(x+i, 0, glyph, nil, r.base.Foreground(RgbCooldownBg))
		}
	}

	mid := height / 2
	switch {
	case snap.Finished:
		msg := parameter.FinishedText
		if snap.Total > 0 {
			msg = fmt.Sprintf("%s  (%s)", msg, engine.FormatElapsed(snap.Elapsed))
		}
		r.drawString((width-len([]rune(msg)))/2, mid, msg, r.base.Foreground(RgbFinished).Bold(true))
	case snap.AwaitingHand():
		msg := parameter.RaiseHandText
		r.drawString((width-len([]rune(msg)))/2, height-1-parameter.BottomMargin, msg, r.base.Foreground(RgbHintText))
	}
}

func (r *Renderer) drawFooter() {
	_, height := r.screen.Size()
	if r.debug && r.metrics != nil {
		r.drawString(0, height-1, r.metrics.Line(), r.base.Foreground(RgbMetricText))
		return
	}
	r.drawString(0, height-1, parameter.HintText, r.base.Foreground(RgbHintText))
}

func (r *Renderer) project(p vmath.Vec3F, vp gesture.Viewport) (float64, float64) {
	px := r.camera.Project(p, vp)
	return px.X, px.Y
}

// inField reports whether row lies between the HUD and the footer
func (r *Renderer) inField(row int) bool {
	_, height := r.screen.Size()
	return row >= parameter.TopMargin && row < height-parameter.BottomMargin
}

// drawString writes s from (x, y), clipped to the screen, and returns the column after it
func (r *Renderer) drawString(x, y int, s string, style tcell.Style) int {
	return r.drawRunes(x, y, []rune(s), style)
}

func (r *Renderer) drawRunes(x, y int, text []rune, style tcell.Style) int {
	width, height := r.screen.Size()
	if y < 0 || y >= height {
		return x + len(text)
	}
	for i, ch := range text {
		if c := x + i; c >= 0 && c < width {
			r.screen.SetContent(c, y, ch, nil, style)
		}
	}
	return x + len(text)
}
