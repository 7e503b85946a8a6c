// Package interaction tracks the live interaction point (mouse cursor,
// gesture feed) and exposes a smoothed position to the simulation.
package interaction

import (
	"sync"

	"github.com/lixenwraith/nebula/parameter"
)

// Point is a canvas-relative pixel coordinate.
type Point struct {
	X, Y float64
}

// Tracker holds the latest raw target and the smoothed current point.
//
// Any number of sources may call SetTarget/ClearTarget at any frequency;
// last write wins, no arbitration. Advance must be called exactly once per
// simulation frame. Presence and absence are never smoothed, only position:
// a cleared target clears the current point immediately, and a reacquired
// target snaps the current point directly onto it so there is no visible
// slide-in from a stale position.
type Tracker struct {
	mu sync.Mutex

	target    Point
	hasTarget bool

	current    Point
	hasCurrent bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// SetTarget overwrites the raw target. Safe from any goroutine.
func (t *Tracker) SetTarget(x, y float64) {
	t.mu.Lock()
	t.target = Point{X: x, Y: y}
	t.hasTarget = true
	t.mu.Unlock()
}

// ClearTarget signals "no active point".
func (t *Tracker) ClearTarget() {
	t.mu.Lock()
	t.hasTarget = false
	t.mu.Unlock()
}

// Advance moves the current point toward the target by the smoothing factor
// and returns the result. Called once per frame by the simulation step.
func (t *Tracker) Advance() (Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasTarget {
		t.hasCurrent = false
		return Point{}, false
	}

	if !t.hasCurrent {
		// Reacquisition snaps, no lerp from an arbitrary prior position
		t.current = t.target
		t.hasCurrent = true
		return t.current, true
	}

	t.current.X += (t.target.X - t.current.X) * parameter.SmoothingFactor
	t.current.Y += (t.target.Y - t.current.Y) * parameter.SmoothingFactor
	return t.current, true
}

// Current returns the smoothed point without advancing it. The render pass
// uses this after the physics step has already advanced the frame.
func (t *Tracker) Current() (Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.hasCurrent
}
