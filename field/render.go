package field

import (
	"math"

	"github.com/tfriedel6/canvas"

	"github.com/lixenwraith/nebula/parameter"
)

// Frame runs one full simulation frame: physics step, then draw.
func (f *Field) Frame(cv *canvas.Canvas) {
	f.Step()
	f.Render(cv)
}

// Render draws the current state: the black universe disk, every particle in
// slice order (ambient under image), and the pointer glow when a point is
// active. It does not advance physics, so it is also the snapshot path.
func (f *Field) Render(cv *canvas.Canvas) {
	if cv == nil {
		return
	}

	f.mu.Lock()
	w := float64(f.width)
	h := float64(f.height)
	cx, cy, universe := f.center()

	cv.ClearRect(0, 0, w, h)

	cv.SetFillStyle(parameter.ColorUniverse)
	cv.BeginPath()
	cv.Arc(cx, cy, universe, 0, 2*math.Pi, false)
	cv.Fill()

	for i := range f.set {
		p := &f.set[i]
		cv.SetFillStyle(p.Color)
		if p.Size < parameter.SquareThreshold {
			cv.FillRect(p.X-p.Size, p.Y-p.Size, p.Size*2, p.Size*2)
		} else {
			cv.BeginPath()
			cv.Arc(p.X, p.Y, p.Size, 0, 2*math.Pi, false)
			cv.Fill()
		}
	}
	f.mu.Unlock()

	if point, active := f.tracker.Current(); active {
		f.renderGlow(cv, point.X, point.Y)
	}
}

// renderGlow draws the radial glow around the interaction point: a white
// gradient fading to transparent, alpha-blended over the frame. White over
// anything brightens, so particles under the glow stay visible.
func (f *Field) renderGlow(cv *canvas.Canvas, x, y float64) {
	glow := cv.CreateRadialGradient(
		x, y, parameter.GlowInnerRadius,
		x, y, parameter.GlowOuterRadius,
	)
	glow.AddColorStop(0, parameter.GlowInnerColor)
	glow.AddColorStop(1, parameter.GlowOuterColor)

	cv.SetFillStyle(glow)
	cv.BeginPath()
	cv.Arc(x, y, parameter.GlowOuterRadius, 0, 2*math.Pi, false)
	cv.Fill()
}
