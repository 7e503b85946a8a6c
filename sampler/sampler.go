// Package sampler converts a decoded bitmap into a particle set: one image
// particle per sufficiently opaque pixel, plus ambient particles filling the
// universe sphere.
package sampler

import (
	"errors"
	"image"
	"math"
	"math/rand"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"github.com/lixenwraith/nebula/parameter"
	"github.com/lixenwraith/nebula/particle"
)

// ErrNoSurface reports that no offscreen drawing surface could be prepared.
// Callers keep their prior particle set.
var ErrNoSurface = errors.New("sampler: offscreen drawing surface unavailable")

// Stride returns the pixel step between alpha probes for a canvas width.
func Stride(width int) int {
	if width < parameter.NarrowViewportWidth {
		return parameter.SampleStrideNarrow
	}
	return parameter.SampleStride
}

// AmbientCount returns the number of ambient particles generated for the
// given canvas dimensions: min(floor(disk area / 30), 20000).
func AmbientCount(width, height int) int {
	r := parameter.UniverseScale * math.Min(float64(width), float64(height))
	n := int(math.Floor(math.Pi * r * r / parameter.AmbientAreaPerParticle))
	if n > parameter.AmbientCap {
		n = parameter.AmbientCap
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Sample produces the full particle set for img at the target canvas
// dimensions, synchronously: ambient particles first, image particles after,
// so image particles draw on top.
//
// The bitmap is drawn into an offscreen buffer scaled so neither dimension
// exceeds 2x the corresponding target dimension (aspect preserved), anchored
// by dividing the leftover space by 1.8 horizontally and 2.5 vertically. The
// off-center placement is intentional tuning, not a centering bug.
func Sample(img image.Image, width, height int) (particle.Set, error) {
	if img == nil || width <= 0 || height <= 0 {
		return nil, ErrNoSurface
	}

	alpha, err := readAlpha(img, width, height)
	if err != nil {
		return nil, err
	}

	w := float64(width)
	h := float64(height)
	cx := w / 2
	cy := h / 2

	set := ambientParticles(width, height, cx, cy)

	stride := Stride(width)
	for y := 0; y < height; y += stride {
		for x := 0; x < width; x += stride {
			if alpha[y*width+x] <= parameter.AlphaThreshold {
				continue
			}
			size := parameter.FineGrainSizeMin + rand.Float64()*parameter.FineGrainSizeSpan
			if rand.Float64() < parameter.LargeGrainChance {
				size = parameter.LargeGrainSizeMin + rand.Float64()*parameter.LargeGrainSizeSpan
			}
			set = append(set, particle.Particle{
				// Chaotic start: image particles assemble from random positions
				X:       rand.Float64() * w,
				Y:       rand.Float64() * h,
				OriginX: float64(x) - cx,
				OriginY: float64(y) - cy,
				Density: parameter.ImageDensityMin + rand.Float64()*parameter.ImageDensitySpan,
				Size:    size,
				Color:   parameter.ColorImage,
			})
		}
	}

	return set, nil
}

// readAlpha draws img into a target-sized offscreen canvas at the capped 2x
// scale and returns the per-pixel alpha of the result.
func readAlpha(img image.Image, width, height int) ([]uint8, error) {
	bounds := img.Bounds()
	iw := float64(bounds.Dx())
	ih := float64(bounds.Dy())
	if iw <= 0 || ih <= 0 {
		return nil, ErrNoSurface
	}

	cv := canvas.New(softwarebackend.New(width, height))

	scale := math.Min(
		parameter.DrawScaleCap*float64(width)/iw,
		parameter.DrawScaleCap*float64(height)/ih,
	)
	drawW := iw * scale
	drawH := ih * scale
	dx := (float64(width) - drawW) / parameter.AnchorDivisorX
	dy := (float64(height) - drawH) / parameter.AnchorDivisorY

	cv.DrawImage(img, dx, dy, drawW, drawH)

	data := cv.GetImageData(0, 0, width, height)
	alpha := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		row := y * data.Stride
		for x := 0; x < width; x++ {
			alpha[y*width+x] = data.Pix[row+x*4+3]
		}
	}
	return alpha, nil
}

// ambientParticles fills the universe sphere with stars and dark matter.
// Unlike image particles these spawn in place, already at home.
func ambientParticles(width, height int, cx, cy float64) particle.Set {
	radius := parameter.UniverseScale * math.Min(float64(width), float64(height))
	count := AmbientCount(width, height)

	set := make(particle.Set, 0, count)
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		// sqrt gives uniform areal density; uniform radius would clump the center
		dist := math.Sqrt(rand.Float64()) * radius
		x := cx + math.Cos(angle)*dist
		y := cy + math.Sin(angle)*dist

		color := parameter.ColorDark
		size := parameter.DarkSizeMin + rand.Float64()*parameter.DarkSizeSpan
		if rand.Float64() < parameter.StarChance {
			color = parameter.ColorStar
			size = parameter.StarSizeMin + rand.Float64()*parameter.StarSizeSpan
		}

		set = append(set, particle.Particle{
			X:       x,
			Y:       y,
			OriginX: x - cx,
			OriginY: y - cy,
			Density: parameter.AmbientDensityMin + rand.Float64()*parameter.AmbientDensitySpan,
			Size:    size,
			Color:   color,
		})
	}
	return set
}
