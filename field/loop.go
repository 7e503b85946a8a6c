package field

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultFrameInterval paces the runner at the 60fps cadence the physics
// constants are tuned for.
const DefaultFrameInterval = time.Second / 60

// Runner drives Field frames at a fixed interval on its own goroutine, for
// shells that have no display-synchronized callback of their own (the
// windowed shell lets its window's main loop pace frames instead).
//
// The runner has two states: running, where frames are scheduled while the
// particle set is non-empty, and stopped. While the set is empty it parks at
// a longer interval without stepping, and resumes as soon as a non-empty set
// is installed. Stop cancels the pending frame before returning, so no
// callback fires after teardown.
type Runner struct {
	field    *Field
	interval time.Duration
	draw     func() // invoked after each physics step, may be nil

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	frames atomic.Uint64

	log *zap.Logger
}

// NewRunner creates a runner for f. draw runs after every physics step while
// the set is non-empty; pass nil for a headless simulation.
func NewRunner(f *Field, interval time.Duration, draw func(), log *zap.Logger) *Runner {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		field:    f,
		interval: interval,
		draw:     draw,
		stopChan: make(chan struct{}),
		log:      log,
	}
}

// Start begins the frame loop. Safe to call once.
func (r *Runner) Start() {
	if r.running.CompareAndSwap(false, true) {
		r.wg.Add(1)
		go r.loop()
		r.log.Info("frame loop started", zap.Duration("interval", r.interval))
	}
}

// Stop halts the loop and cancels the pending frame. Blocks until the loop
// goroutine has exited. Safe to call more than once, and a no-op before
// Start, so Start still works after a premature Stop.
func (r *Runner) Stop() {
	if r.running.CompareAndSwap(true, false) {
		r.stopOnce.Do(func() { close(r.stopChan) })
		r.wg.Wait()
		r.log.Info("frame loop stopped", zap.Uint64("frames", r.frames.Load()))
	}
}

// Frames returns the number of frames stepped so far.
func (r *Runner) Frames() uint64 {
	return r.frames.Load()
}

func (r *Runner) loop() {
	defer r.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	deadline := time.Now()

	for {
		sleep := r.interval

		if r.field.Empty() {
			// Parked: nothing to simulate until a set is installed
			sleep = r.interval * 4
			deadline = time.Now()
		} else {
			r.field.Step()
			if r.draw != nil {
				r.draw()
			}
			r.frames.Add(1)

			deadline = deadline.Add(r.interval)
			now := time.Now()
			if now.Sub(deadline) > r.interval*2 {
				// Too far behind, drop the backlog instead of spiraling
				deadline = now.Add(r.interval)
			}
			sleep = time.Until(deadline)
			if sleep < 0 {
				sleep = 0
			}
		}

		if sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-r.stopChan:
				return
			}
		} else {
			select {
			case <-r.stopChan:
				return
			default:
			}
		}
	}
}
