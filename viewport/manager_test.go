package viewport

import (
	"image"
	"sync/atomic"
	"testing"
	"time"
)

func TestResizeAppliesDimensionsImmediately(t *testing.T) {
	var applied atomic.Int64
	var lastW, lastH atomic.Int64

	m := NewManager(func(w, h int) {
		applied.Add(1)
		lastW.Store(int64(w))
		lastH.Store(int64(h))
	}, nil)
	defer m.Stop()

	m.Resize(1024, 768)
	if applied.Load() != 1 || lastW.Load() != 1024 || lastH.Load() != 768 {
		t.Errorf("Expected immediate apply of 1024x768, got %d applies (%dx%d)",
			applied.Load(), lastW.Load(), lastH.Load())
	}
}

func TestResizeBurstSamplesOnce(t *testing.T) {
	var samples atomic.Int64
	var lastW atomic.Int64

	m := NewManager(nil,
		func(img image.Image, w, h int) {
			samples.Add(1)
			lastW.Store(int64(w))
		},
		WithDebounce(60*time.Millisecond))
	defer m.Stop()

	m.SetBitmap(image.NewRGBA(image.Rect(0, 0, 4, 4)))

	// Ten resize events inside the quiescence window
	for i := 0; i < 10; i++ {
		m.Resize(800+i, 600)
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	if samples.Load() != 1 {
		t.Errorf("Expected exactly one sampling pass after the burst, got %d", samples.Load())
	}
	if lastW.Load() != 809 {
		t.Errorf("Expected sampling at the last dimensions (809), got %d", lastW.Load())
	}
}

func TestMountSamplesImmediately(t *testing.T) {
	var samples atomic.Int64
	m := NewManager(nil, func(img image.Image, w, h int) {
		samples.Add(1)
	})
	defer m.Stop()

	m.SetBitmap(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	m.Mount(640, 480)

	if samples.Load() != 1 {
		t.Errorf("Expected mount to sample synchronously, got %d samples", samples.Load())
	}
	if w, h := m.Size(); w != 640 || h != 480 {
		t.Errorf("Expected tracked size 640x480, got %dx%d", w, h)
	}
}

func TestResizeWithoutBitmapOnlyUpdatesDimensions(t *testing.T) {
	var samples atomic.Int64
	m := NewManager(nil, func(img image.Image, w, h int) {
		samples.Add(1)
	}, WithDebounce(20*time.Millisecond))
	defer m.Stop()

	m.Resize(800, 600)
	time.Sleep(80 * time.Millisecond)

	if samples.Load() != 0 {
		t.Errorf("Expected no sampling without a bitmap, got %d", samples.Load())
	}
	if w, h := m.Size(); w != 800 || h != 600 {
		t.Errorf("Expected dimensions updated to 800x600, got %dx%d", w, h)
	}
}

func TestStopCancelsPendingResample(t *testing.T) {
	var samples atomic.Int64
	m := NewManager(nil, func(img image.Image, w, h int) {
		samples.Add(1)
	}, WithDebounce(40*time.Millisecond))

	m.SetBitmap(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	m.Resize(800, 600)
	m.Stop()

	time.Sleep(120 * time.Millisecond)
	if samples.Load() != 0 {
		t.Errorf("Expected pending resample cancelled by Stop, got %d", samples.Load())
	}
}

func TestSetBitmapResamplesAtKnownDimensions(t *testing.T) {
	var samples atomic.Int64
	m := NewManager(nil, func(img image.Image, w, h int) {
		samples.Add(1)
	})
	defer m.Stop()

	m.Mount(640, 480) // no bitmap yet, dimensions only
	if samples.Load() != 0 {
		t.Fatalf("Expected no sample before a bitmap exists, got %d", samples.Load())
	}

	m.SetBitmap(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if samples.Load() != 1 {
		t.Errorf("Expected SetBitmap to resample at known dimensions, got %d", samples.Load())
	}
}
