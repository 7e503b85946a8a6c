package sampler

import (
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/nebula/parameter"
)

func opaqueImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

func alphaImage(w, h int, a uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: a})
		}
	}
	return img
}

func TestStride(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"Narrow viewport", 767, 3},
		{"Threshold width", 768, 2},
		{"Wide viewport", 1920, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stride(tt.width); got != tt.want {
				t.Errorf("Expected stride %d for width %d, got %d", tt.want, tt.width, got)
			}
		})
	}
}

func TestAmbientCount(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		// floor(pi * (0.45*min(w,h))^2 / 30)
		{"Square canvas", 200, 200, 848},
		{"Wide canvas uses min dim", 300, 200, 848},
		{"Tall canvas uses min dim", 200, 900, 848},
		{"Large canvas capped", 2000, 2000, 20000},
		{"Degenerate canvas", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AmbientCount(tt.width, tt.height); got != tt.want {
				t.Errorf("Expected %d ambient particles for %dx%d, got %d",
					tt.want, tt.width, tt.height, got)
			}
		})
	}
}

func TestSampleOpaqueBitmapCount(t *testing.T) {
	// Bitmap with the canvas aspect ratio draws at 2x and covers the whole
	// canvas, so every probed pixel passes the alpha threshold.
	const w, h = 800, 100 // w >= 768 keeps stride at 2
	img := opaqueImage(80, 10)

	set, err := Sample(img, w, h)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	ambient := AmbientCount(w, h)
	wantImage := (w / 2) * (h / 2)
	gotImage := len(set) - ambient
	if gotImage != wantImage {
		t.Errorf("Expected %d image particles, got %d", wantImage, gotImage)
	}
}

func TestSampleTransparentBitmapHasOnlyAmbient(t *testing.T) {
	const w, h = 400, 300
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))

	set, err := Sample(img, w, h)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(set) != AmbientCount(w, h) {
		t.Errorf("Expected only %d ambient particles, got %d", AmbientCount(w, h), len(set))
	}
}

func TestSampleAlphaThreshold(t *testing.T) {
	// Alpha at or below 128 never qualifies
	const w, h = 400, 300
	img := alphaImage(40, 30, 100)

	set, err := Sample(img, w, h)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if got := len(set) - AmbientCount(w, h); got != 0 {
		t.Errorf("Expected no image particles for alpha 100, got %d", got)
	}
}

func TestSampleImageParticleAttributes(t *testing.T) {
	const w, h = 800, 100
	img := opaqueImage(80, 10)

	set, err := Sample(img, w, h)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	cx, cy := float64(w)/2, float64(h)/2
	for _, p := range set[AmbientCount(w, h):] {
		if p.Color != parameter.ColorImage {
			t.Fatalf("Expected image particle color %s, got %s", parameter.ColorImage, p.Color)
		}
		px, py := p.OriginX+cx, p.OriginY+cy
		if px < 0 || px >= w || py < 0 || py >= h {
			t.Fatalf("Expected origin+center inside canvas, got (%v,%v)", px, py)
		}
		if int(px)%2 != 0 || int(py)%2 != 0 {
			t.Fatalf("Expected stride-aligned origin, got (%v,%v)", px, py)
		}
		if p.Density < parameter.ImageDensityMin ||
			p.Density >= parameter.ImageDensityMin+parameter.ImageDensitySpan {
			t.Fatalf("Expected density in [1,31), got %v", p.Density)
		}
		if p.VX != 0 || p.VY != 0 {
			t.Fatalf("Expected zero initial velocity, got (%v,%v)", p.VX, p.VY)
		}
	}
}

func TestSampleAmbientParticlesSpawnAtHome(t *testing.T) {
	const w, h = 400, 300
	set, err := Sample(image.NewRGBA(image.Rect(0, 0, 4, 4)), w, h)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	cx, cy := float64(w)/2, float64(h)/2
	for i, p := range set[:AmbientCount(w, h)] {
		// No chaotic start for ambient particles: position equals home
		if p.X != p.OriginX+cx || p.Y != p.OriginY+cy {
			t.Fatalf("particle %d: expected position at home, got (%v,%v) home (%v,%v)",
				i, p.X, p.Y, p.OriginX+cx, p.OriginY+cy)
		}
	}
}

func TestSampleIdempotentCountsAndOrigins(t *testing.T) {
	const w, h = 400, 200
	img := opaqueImage(40, 20)

	first, err := Sample(img, w, h)
	if err != nil {
		t.Fatalf("first Sample failed: %v", err)
	}
	second, err := Sample(img, w, h)
	if err != nil {
		t.Fatalf("second Sample failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Expected identical counts, got %d and %d", len(first), len(second))
	}

	// Alpha-derived membership is deterministic; ambient coordinates are not
	ambient := AmbientCount(w, h)
	for i := ambient; i < len(first); i++ {
		if first[i].OriginX != second[i].OriginX || first[i].OriginY != second[i].OriginY {
			t.Fatalf("image particle %d: origins differ: (%v,%v) vs (%v,%v)",
				i, first[i].OriginX, first[i].OriginY, second[i].OriginX, second[i].OriginY)
		}
	}
}

func TestSampleDegenerateInputs(t *testing.T) {
	tests := []struct {
		name          string
		img           image.Image
		width, height int
	}{
		{"Nil image", nil, 100, 100},
		{"Zero width", opaqueImage(4, 4), 0, 100},
		{"Zero height", opaqueImage(4, 4), 100, 0},
		{"Negative dims", opaqueImage(4, 4), -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sample(tt.img, tt.width, tt.height); err != ErrNoSurface {
				t.Errorf("Expected ErrNoSurface, got %v", err)
			}
		})
	}
}
