// Package overlay plays the short particle celebration shown after a
// successful dispatch. It owns its particle batch and a single wall-clock
// countdown, and reports completion through a callback. It has no I/O and
// cannot fail.
package overlay

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	// DefaultParticleCount is the size of every batch
	DefaultParticleCount = 15
	// DefaultDuration is the countdown from activation to completion
	DefaultDuration = 2 * time.Second

	maxOffset = 50.0
	maxDelay  = 500 * time.Millisecond
	minScale  = 0.5
	maxScale  = 1.5
)

// Particle is one decorative unit of the celebration
type Particle struct {
	ID     int
	Offset float64       // horizontal offset in [-50, 50]
	Delay  time.Duration // start delay in [0, 500ms]
	Scale  float64       // in [0.5, 1.5]
}

// Overlay is safe for use from multiple goroutines; the countdown fires on a
// timer goroutine.
type Overlay struct {
	mu         sync.Mutex
	active     bool
	particles  []Particle
	timer      *time.Timer
	generation uint64
	startedAt  time.Time

	count      int
	duration   time.Duration
	rng        *rand.Rand
	onComplete func()
}

type Option func(*Overlay)

// WithDuration overrides the 2s countdown
func WithDuration(d time.Duration) Option {
	return func(o *Overlay) {
		if d > 0 {
			o.duration = d
		}
	}
}

// WithRand makes particle generation deterministic
func WithRand(r *rand.Rand) Option {
	return func(o *Overlay) {
		if r != nil {
			o.rng = r
		}
	}
}

// New returns an inactive overlay. onComplete may be nil.
func New(onComplete func(), opts ...Option) *Overlay {
	o := &Overlay{
		count:      DefaultParticleCount,
		duration:   DefaultDuration,
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		onComplete: onComplete,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Activate materializes a new particle batch and starts the countdown.
// It returns false and does nothing when the overlay is already active.
func (o *Overlay) Activate() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.active {
		return false
	}

	o.active = true
	o.generation++
	o.startedAt = time.Now()
	o.particles = lo.Times(o.count, o.newParticle)

	gen := o.generation
	o.timer = time.AfterFunc(o.duration, func() { o.expire(gen) })
	return true
}

// Deactivate drops the batch and cancels the countdown without calling back
func (o *Overlay) Deactivate() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.generation++
	o.reset()
}

func (o *Overlay) expire(gen uint64) {
	o.mu.Lock()
	if gen != o.generation || !o.active {
		o.mu.Unlock()
		return
	}
	o.timer = nil
	o.reset()
	cb := o.onComplete
	o.mu.Unlock()

	if cb != nil {
		cb()
	}
}

func (o *Overlay) reset() {
	o.active = false
	o.particles = nil
	o.startedAt = time.Time{}
}

func (o *Overlay) newParticle(i int) Particle {
	return Particle{
		ID:     i,
		Offset: o.rng.Float64()*2*maxOffset - maxOffset,
		Delay:  time.Duration(o.rng.Float64() * float64(maxDelay)),
		Scale:  minScale + o.rng.Float64()*(maxScale-minScale),
	}
}

func (o *Overlay) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

// Particles returns a copy of the current batch; empty when inactive
func (o *Overlay) Particles() []Particle {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Particle(nil), o.particles...)
}

// Elapsed is the time since activation, zero when inactive
func (o *Overlay) Elapsed() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.active {
		return 0
	}
	return time.Since(o.startedAt)
}

func (o *Overlay) Duration() time.Duration {
	return o.duration
}
