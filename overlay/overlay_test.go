package overlay

import (
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOverlay_Activate(t *testing.T) {
	t.Run("should generate fifteen particles within bounds", func(t *testing.T) {
		req := require.New(t)
		o := New(nil, WithDuration(time.Hour), WithRand(rand.New(rand.NewPCG(1, 2))))
		defer o.Deactivate()

		req.True(o.Activate())
		particles := o.Particles()
		req.Len(particles, DefaultParticleCount)

		for i, p := range particles {
			req.Equal(i, p.ID)
			req.GreaterOrEqual(p.Offset, -50.0)
			req.LessOrEqual(p.Offset, 50.0)
			req.GreaterOrEqual(p.Delay, time.Duration(0))
			req.LessOrEqual(p.Delay, 500*time.Millisecond)
			req.GreaterOrEqual(p.Scale, 0.5)
			req.LessOrEqual(p.Scale, 1.5)
		}
	})

	t.Run("should ignore a second activation while active", func(t *testing.T) {
		req := require.New(t)
		o := New(nil, WithDuration(time.Hour))
		defer o.Deactivate()

		req.True(o.Activate())
		first := o.Particles()
		req.False(o.Activate())
		req.Equal(first, o.Particles())
	})

	t.Run("should return copies of the batch", func(t *testing.T) {
		o := New(nil, WithDuration(time.Hour))
		defer o.Deactivate()
		o.Activate()

		p := o.Particles()
		p[0].Scale = 99
		assert.NotEqual(t, 99.0, o.Particles()[0].Scale)
	})
}

func TestOverlay_Completion(t *testing.T) {
	t.Run("should call back exactly once inside the default window", func(t *testing.T) {
		if testing.Short() {
			t.Skip("waits for the real two second countdown")
		}
		req := require.New(t)

		var calls atomic.Int32
		done := make(chan time.Time, 2)
		o := New(func() {
			calls.Add(1)
			done <- time.Now()
		})

		start := time.Now()
		req.True(o.Activate())

		select {
		case at := <-done:
			elapsed := at.Sub(start)
			req.GreaterOrEqual(elapsed, 1500*time.Millisecond)
			req.LessOrEqual(elapsed, 2500*time.Millisecond)
		case <-time.After(5 * time.Second):
			t.Fatal("overlay never completed")
		}

		time.Sleep(100 * time.Millisecond)
		req.Equal(int32(1), calls.Load())
		req.False(o.Active())
		req.Empty(o.Particles())
	})

	t.Run("should be reusable after completing", func(t *testing.T) {
		req := require.New(t)
		done := make(chan struct{}, 2)
		o := New(func() { done <- struct{}{} }, WithDuration(10*time.Millisecond))

		for i := 0; i < 2; i++ {
			req.True(o.Activate())
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("overlay never completed")
			}
			req.False(o.Active())
		}
	})
}

func TestOverlay_Deactivate(t *testing.T) {
	t.Run("should cancel the countdown without calling back", func(t *testing.T) {
		req := require.New(t)
		var calls atomic.Int32
		o := New(func() { calls.Add(1) }, WithDuration(30*time.Millisecond))

		req.True(o.Activate())
		o.Deactivate()

		req.False(o.Active())
		req.Empty(o.Particles())
		req.Zero(o.Elapsed())

		time.Sleep(80 * time.Millisecond)
		req.Equal(int32(0), calls.Load())
	})

	t.Run("should be a no-op when inactive", func(t *testing.T) {
		o := New(nil)
		o.Deactivate()
		assert.False(t, o.Active())
	})
}

func TestField(t *testing.T) {
	particles := []Particle{
		{ID: 0, Offset: 50, Delay: 0, Scale: 1},
		{ID: 1, Offset: -20, Delay: 400 * time.Millisecond, Scale: 0.5},
	}

	t.Run("should only show particles whose delay has passed", func(t *testing.T) {
		f := NewField(particles, 12)
		sprites := f.Sprites(100 * time.Millisecond)
		require.Len(t, sprites, 1)
		assert.Equal(t, 0, sprites[0].ID)
	})

	t.Run("should rise towards the target and stay horizontal within offset", func(t *testing.T) {
		req := require.New(t)
		f := NewField(particles, 12)

		var elapsed time.Duration
		for elapsed < Flight {
			f.Step(elapsed)
			elapsed += FrameInterval
		}

		sprites := f.Sprites(Flight - FrameInterval)
		req.NotEmpty(sprites)
		req.Greater(sprites[0].Y, 6.0)
		req.LessOrEqual(sprites[0].Y, 12.5)
		req.InDelta(10.0, sprites[0].X, 2.0)
	})

	t.Run("should hide everything after the last flight ends", func(t *testing.T) {
		f := NewField(particles, 12)
		assert.Empty(t, f.Sprites(2*time.Second))
	})
}

func TestFade(t *testing.T) {
	tests := []struct {
		progress float64
		want     float64
	}{
		{progress: 0, want: 0},
		{progress: 0.25, want: 0.5},
		{progress: 0.5, want: 1},
		{progress: 0.75, want: 0.5},
		{progress: 1, want: 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, fade(tt.progress), 1e-9)
	}
}
