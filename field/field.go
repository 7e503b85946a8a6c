// Package field owns the installed particle set and runs the per-frame
// simulation and render passes.
package field

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/nebula/interaction"
	"github.com/lixenwraith/nebula/parameter"
	"github.com/lixenwraith/nebula/particle"
)

// Field is the simulation state: the particle set, the canvas dimensions and
// the interaction tracker. The set is replaced wholesale by Install, never
// edited incrementally.
type Field struct {
	mu sync.Mutex

	set           particle.Set
	width, height int
	radius        float64

	tracker *interaction.Tracker

	// Generation guard for out-of-order sampler completion: BeginSample
	// issues tokens, Install drops results whose token is older than the
	// newest already installed.
	nextGen      uint64
	installedGen uint64

	log *zap.Logger
}

// Option configures a Field.
type Option func(*Field)

// WithRadius overrides the default interaction influence radius.
func WithRadius(r float64) Option {
	return func(f *Field) {
		if r > 0 {
			f.radius = r
		}
	}
}

// WithLogger attaches a logger for install/resize events.
func WithLogger(log *zap.Logger) Option {
	return func(f *Field) {
		f.log = log
	}
}

func New(width, height int, tracker *interaction.Tracker, opts ...Option) *Field {
	f := &Field{
		width:   width,
		height:  height,
		radius:  parameter.InteractionRadius,
		tracker: tracker,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetSize updates the canvas pixel dimensions immediately. Center and
// universe radius are recomputed from these every frame, so the field
// behaves correctly between a resize and the debounced resample.
func (f *Field) SetSize(width, height int) {
	f.mu.Lock()
	f.width, f.height = width, height
	f.mu.Unlock()
	f.log.Debug("field resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the current canvas pixel dimensions.
func (f *Field) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

// Radius returns the interaction influence radius.
func (f *Field) Radius() float64 {
	return f.radius
}

// Len returns the number of installed particles.
func (f *Field) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.set)
}

// Empty reports whether no particle set is installed.
func (f *Field) Empty() bool {
	return f.Len() == 0
}

// BeginSample issues a generation token for a sampling run. The token must
// be obtained before sampling starts so that a slow run cannot overwrite the
// result of one started after it.
func (f *Field) BeginSample() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextGen++
	return f.nextGen
}

// Install replaces the particle set wholesale. Stale generations are
// dropped; the return value reports whether the set was accepted.
func (f *Field) Install(set particle.Set, gen uint64) bool {
	f.mu.Lock()
	if gen < f.installedGen {
		f.mu.Unlock()
		f.log.Warn("stale particle set dropped",
			zap.Uint64("generation", gen),
			zap.Uint64("installed", f.installedGen))
		return false
	}
	f.set = set
	f.installedGen = gen
	f.mu.Unlock()
	f.log.Info("particle set installed",
		zap.Uint64("generation", gen),
		zap.Int("particles", len(set)))
	return true
}

// Controller is the imperative surface a shell owns: frame export and
// interaction point updates, with no access to simulation internals.
type Controller interface {
	Snapshot() ([]byte, error)
	SetInteractionPoint(x, y float64)
	ClearInteractionPoint()
}

var _ Controller = (*Field)(nil)

// SetInteractionPoint forwards a canvas-relative point to the tracker.
func (f *Field) SetInteractionPoint(x, y float64) {
	f.tracker.SetTarget(x, y)
}

// ClearInteractionPoint signals that no point is active.
func (f *Field) ClearInteractionPoint() {
	f.tracker.ClearTarget()
}

// Each calls fn for every particle in draw order while holding the field
// lock, for renderers that are not canvas-backed.
func (f *Field) Each(fn func(x, y, size float64, color string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.set {
		p := &f.set[i]
		fn(p.X, p.Y, p.Size, p.Color)
	}
}

// center returns the canvas center and universe sphere radius for the
// current dimensions. Callers hold f.mu.
func (f *Field) center() (cx, cy, universe float64) {
	cx = float64(f.width) / 2
	cy = float64(f.height) / 2
	universe = parameter.UniverseScale * math.Min(float64(f.width), float64(f.height))
	return cx, cy, universe
}
