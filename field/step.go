package field

import (
	"math"

	"github.com/lixenwraith/nebula/parameter"
)

// Step advances the interaction tracker and runs the physics pass once over
// every particle. Each particle is independent of all others; constants are
// tuned for a 60fps cadence (explicit Euler, one frame per call).
func (f *Field) Step() {
	point, active := f.tracker.Advance()

	ix := parameter.OffscreenSentinel
	iy := parameter.OffscreenSentinel
	if active {
		ix, iy = point.X, point.Y
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	cx, cy, _ := f.center()

	for i := range f.set {
		p := &f.set[i]

		homeX := cx + p.OriginX
		homeY := cy + p.OriginY

		dx := ix - p.X
		dy := iy - p.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < parameter.DistanceEpsilon {
			dist = parameter.DistanceEpsilon
		}

		if dist < f.radius {
			// Push away from the point, growing linearly as it approaches.
			// Density scales the push up, not down.
			force := (f.radius - dist) / f.radius * p.Density * parameter.RepulsionGain
			p.VX -= dx / dist * force
			p.VY -= dy / dist * force
		} else {
			// Linear spring back toward home
			p.VX -= (p.X - homeX) / parameter.SpringDivisor
			p.VY -= (p.Y - homeY) / parameter.SpringDivisor
		}

		p.VX *= parameter.VelocityDamping
		p.VY *= parameter.VelocityDamping

		p.X += p.VX
		p.Y += p.VY
	}
}
