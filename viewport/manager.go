// Package viewport tracks canvas dimensions and debounces resize-triggered
// resampling.
package viewport

import (
	"image"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDebounce is the quiescence window after the last resize event
// before resampling runs.
const DefaultDebounce = 200 * time.Millisecond

// ApplyFunc receives new canvas dimensions immediately on every resize, so
// the display never stretches while resampling waits out the debounce.
type ApplyFunc func(width, height int)

// SampleFunc regenerates the particle set from the last-loaded bitmap.
type SampleFunc func(img image.Image, width, height int)

// Manager reacts to resize events: dimensions apply immediately, resampling
// runs once per burst, after the quiescence window of the last event.
type Manager struct {
	mu sync.Mutex

	width, height int
	bitmap        image.Image

	debounce time.Duration
	timer    *time.Timer

	apply  ApplyFunc
	sample SampleFunc

	log *zap.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithDebounce overrides the quiescence window (tests use short windows).
func WithDebounce(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.debounce = d
		}
	}
}

// WithLogger attaches a logger for resize/sample events.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

func NewManager(apply ApplyFunc, sample SampleFunc, opts ...Option) *Manager {
	m := &Manager{
		debounce: DefaultDebounce,
		apply:    apply,
		sample:   sample,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetBitmap records the bitmap to sample from and, when dimensions are
// already known, resamples immediately.
func (m *Manager) SetBitmap(img image.Image) {
	m.mu.Lock()
	m.bitmap = img
	m.mu.Unlock()
	m.resample()
}

// Mount runs the unconditional initial resize-and-sample pass.
func (m *Manager) Mount(width, height int) {
	m.setSize(width, height)
	m.resample()
}

// Resize applies the new dimensions immediately and schedules resampling
// after the quiescence window. Only the last event of a burst fires.
func (m *Manager) Resize(width, height int) {
	m.setSize(width, height)

	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.debounce, m.resample)
	m.mu.Unlock()
}

// Stop cancels any pending resample. Called on teardown.
func (m *Manager) Stop() {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.mu.Unlock()
}

// Size returns the current tracked dimensions.
func (m *Manager) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *Manager) setSize(width, height int) {
	m.mu.Lock()
	m.width, m.height = width, height
	apply := m.apply
	m.mu.Unlock()

	if apply != nil {
		apply(width, height)
	}
}

func (m *Manager) resample() {
	m.mu.Lock()
	img := m.bitmap
	width, height := m.width, m.height
	sample := m.sample
	m.mu.Unlock()

	// Without a bitmap, a resize only updates dimensions
	if img == nil || sample == nil || width <= 0 || height <= 0 {
		return
	}

	m.log.Debug("resampling", zap.Int("width", width), zap.Int("height", height))
	sample(img, width, height)
}
