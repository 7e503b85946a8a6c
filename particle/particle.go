// Package particle defines the point-sample data model shared by the
// sampler and the simulation.
package particle

// Particle is one simulated point.
//
// OriginX/OriginY are the particle's permanent home expressed as an offset
// from the canvas center, fixed at creation. The absolute home position is
// derived per frame as center + origin, which is what lets a resize recenter
// the whole field without regenerating anything.
type Particle struct {
	X, Y float64 // current on-screen position, mutated every frame

	OriginX, OriginY float64 // home offset from canvas center, never mutated

	VX, VY float64 // velocity, mutated by the physics step

	// Density acts as a mass-like scalar, roughly [1, 31]. It scales the
	// repulsion response: denser particles get pushed harder, not less.
	Density float64

	Size  float64 // radius (circles) or half-width (squares) in pixels
	Color string  // fixed RGB, e.g. "#FFFFFF"
}

// Set is the full particle collection for the displayed image: a flat,
// unordered slice. Particles have no relationships to each other; the
// simulation touches each one independently. Slice order is draw order,
// so ambient particles come first and image particles render on top.
type Set []Particle
