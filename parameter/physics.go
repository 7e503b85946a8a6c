package parameter

// Force model constants, tuned for a fixed 60fps frame cadence.
// Changing the cadence without rescaling these changes visible behavior.

// Interaction repulsion
const (
	// InteractionRadius is the default influence radius of the pointer in pixels
	InteractionRadius = 320.0

	// RepulsionGain scales the repulsion magnitude: ((radius-dist)/radius) * density * RepulsionGain
	// Higher-density particles are pushed harder. Intentional tuning, keep the signed relationship.
	RepulsionGain = 2.0
)

// Return-to-home spring and damping
const (
	// SpringDivisor controls the restoring pull toward home: v -= (pos - home) / SpringDivisor
	SpringDivisor = 25.0

	// VelocityDamping is applied to both velocity components every frame.
	// With no driving force, speed halves roughly every 7 frames.
	VelocityDamping = 0.90
)

// Pointer smoothing
const (
	// SmoothingFactor is the per-frame lerp toward the raw target,
	// ~95% convergence after ~19 frames at 60fps
	SmoothingFactor = 0.15
)

// DistanceEpsilon clamps particle-to-pointer distance before division.
// Zero distance would leave the push direction undefined and emit NaN velocity.
const DistanceEpsilon = 1e-4

// OffscreenSentinel stands in for an absent interaction point,
// far outside any realistic influence radius
const OffscreenSentinel = -1e6
