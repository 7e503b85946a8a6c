package parameter

// Particle palette
const (
	ColorImage = "#FFFFFF"
	ColorStar  = "#C8C8C8"
	ColorDark  = "#3C3C3C"

	ColorUniverse = "#000000"
)

// SquareThreshold is the particle size below which a filled square is drawn
// instead of a circle. Imperceptible at that scale, much cheaper.
const SquareThreshold = 2.0

// Pointer glow. Alpha is 0..255, not a CSS fraction; the canvas color
// parser only reads integer rgba components.
const (
	GlowInnerRadius = 10.0
	GlowOuterRadius = 80.0

	GlowInnerColor = "rgba(255,255,255,102)"
	GlowOuterColor = "rgba(255,255,255,0)"
)
