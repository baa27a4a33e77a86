package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	bumpFrequency   = 220.0
	bumpDuration    = 60 * time.Millisecond
	bumpMinInterval = 80 * time.Millisecond

	// Approach speeds below this are rolling contact, not a bump
	bumpMinStrength = 0.2
	// Strength giving full volume
	bumpFullStrength = 8.0
)

// BeepPlayer plays a short sine tone per wall bump, louder for harder hits
type BeepPlayer struct {
	mu       sync.Mutex
	lastBump time.Time
	now      func() time.Time
	play     func(beep.Streamer)
}

// NewBeepPlayer initializes the speaker
// Callers fall back to NopPlayer on error, the game runs without sound
func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &BeepPlayer{
		now:  time.Now,
		play: func(s beep.Streamer) { speaker.Play(s) },
	}, nil
}

// Bump plays the bump tone scaled by strength, rate-limited
func (p *BeepPlayer) Bump(strength float64) {
	if strength < bumpMinStrength {
		return
	}

	p.mu.Lock()
	now := p.now()
	if !p.lastBump.IsZero() && now.Sub(p.lastBump) < bumpMinInterval {
		p.mu.Unlock()
		return
	}
	p.lastBump = now
	p.mu.Unlock()

	tone, err := generators.SineTone(sampleRate, bumpFrequency)
	if err != nil {
		return
	}
	p.play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(bumpDuration), tone),
		Base:     2,
		Volume:   bumpVolume(strength),
	})
}

// Close stops playback
func (p *BeepPlayer) Close() {
	speaker.Clear()
}

// bumpVolume maps strength to a log2 volume in [-4, 0]
func bumpVolume(strength float64) float64 {
	ratio := math.Min(strength/bumpFullStrength, 1)
	return -4 * (1 - ratio)
}

// NopPlayer discards bumps, used when audio is disabled or unavailable
type NopPlayer struct{}

func (NopPlayer) Bump(float64) {}
