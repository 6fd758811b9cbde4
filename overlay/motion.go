package overlay

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// FPS is the frame rate the springs are tuned for
	FPS = 30
	// Flight is how long a single particle is visible once its delay has passed
	Flight = 1500 * time.Millisecond

	angularFrequency = 4.0
	dampingRatio     = 1.0
)

// FrameInterval is the wall-clock time between two Step calls
var FrameInterval = time.Second / FPS

// Sprite is the renderable state of one particle in the current frame
type Sprite struct {
	ID      int
	X       float64 // columns from the horizontal centre
	Y       float64 // rows above the baseline
	Opacity float64 // 0..1
	Scale   float64
}

type body struct {
	particle Particle
	x, xVel  float64
	y, yVel  float64
}

// Field integrates particle trajectories with a critically damped spring,
// which gives the ease-out rise of the celebration.
type Field struct {
	spring harmonica.Spring
	bodies []body
	rise   float64
}

// NewField positions every particle on the baseline. rise is the height in
// rows each particle travels towards.
func NewField(particles []Particle, rise float64) *Field {
	bodies := make([]body, len(particles))
	for i, p := range particles {
		bodies[i] = body{particle: p, x: p.Offset / 10}
	}
	return &Field{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), angularFrequency, dampingRatio),
		bodies: bodies,
		rise:   rise,
	}
}

// Step advances every in-flight particle by one frame
func (f *Field) Step(elapsed time.Duration) {
	for i := range f.bodies {
		b := &f.bodies[i]
		if !inFlight(b.particle, elapsed) {
			continue
		}
		b.x, b.xVel = f.spring.Update(b.x, b.xVel, b.particle.Offset/5)
		b.y, b.yVel = f.spring.Update(b.y, b.yVel, f.rise)
	}
}

// Sprites returns the particles that are visible at elapsed
func (f *Field) Sprites(elapsed time.Duration) []Sprite {
	sprites := make([]Sprite, 0, len(f.bodies))
	for _, b := range f.bodies {
		if !inFlight(b.particle, elapsed) {
			continue
		}
		progress := float64(elapsed-b.particle.Delay) / float64(Flight)
		sprites = append(sprites, Sprite{
			ID:      b.particle.ID,
			X:       b.x,
			Y:       b.y,
			Opacity: fade(progress),
			Scale:   b.particle.Scale,
		})
	}
	return sprites
}

func inFlight(p Particle, elapsed time.Duration) bool {
	return elapsed >= p.Delay && elapsed < p.Delay+Flight
}

// fade ramps 0 -> 1 -> 0 over the flight
func fade(progress float64) float64 {
	switch {
	case progress <= 0 || progress >= 1:
		return 0
	case progress < 0.5:
		return progress * 2
	default:
		return (1 - progress) * 2
	}
}
