package parameter

// Image sampling
const (
	// AlphaThreshold selects source pixels that become image particles (alpha > threshold, of 255)
	AlphaThreshold = 128

	// SampleStride is the pixel step between alpha probes
	SampleStride = 2

	// SampleStrideNarrow trades silhouette density for frame-rate headroom on small viewports
	SampleStrideNarrow = 3

	// NarrowViewportWidth is the canvas width below which the narrow stride applies
	NarrowViewportWidth = 768

	// DrawScaleCap limits the offscreen bitmap draw to 2x each target dimension, aspect preserved
	DrawScaleCap = 2.0

	// AnchorDivisorX and AnchorDivisorY split the leftover space around the drawn bitmap.
	// Not 2.0 and 2.0: the placement is deliberately weighted off-center.
	AnchorDivisorX = 1.8
	AnchorDivisorY = 2.5
)

// Image particle attributes
const (
	ImageDensityMin  = 1.0
	ImageDensitySpan = 30.0 // density uniform in [1, 31)

	// Bimodal size classes: fine dust with occasional larger grains
	LargeGrainChance   = 0.30
	LargeGrainSizeMin  = 0.6
	LargeGrainSizeSpan = 0.8 // [0.6, 1.4)
	FineGrainSizeMin   = 0.2
	FineGrainSizeSpan  = 0.4 // [0.2, 0.6)
)

// Ambient universe sphere
const (
	// UniverseScale sets the sphere radius as a fraction of min(width, height)
	UniverseScale = 0.45

	// AmbientAreaPerParticle divides the disk area to give the ambient particle count
	AmbientAreaPerParticle = 30.0

	// AmbientCap bounds the ambient particle count regardless of canvas size
	AmbientCap = 20000

	// StarChance classifies an ambient particle as a star rather than dark matter
	StarChance = 0.005

	StarSizeMin  = 0.5
	StarSizeSpan = 1.5 // [0.5, 2.0)
	DarkSizeMin  = 0.5
	DarkSizeSpan = 2.0 // [0.5, 2.5)

	AmbientDensityMin  = 1.0
	AmbientDensitySpan = 20.0 // density uniform in [1, 21)
)
