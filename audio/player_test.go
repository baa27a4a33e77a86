package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func newTestPlayer(now *time.Time) (*BeepPlayer, *int) {
	played := 0
	p := &BeepPlayer{
		now:  func() time.Time { return *now },
		play: func(beep.Streamer) { played++ },
	}
	return p, &played
}

func TestBumpVolume(t *testing.T) {
	cases := []struct {
		strength, want float64
	}{
		{0, -4},
		{4, -2},
		{8, 0},
		{20, 0},
	}
	for _, c := range cases {
		if got := bumpVolume(c.strength); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("bumpVolume(%v) = %v, want %v", c.strength, got, c.want)
		}
	}
}

func TestBump_RateLimit(t *testing.T) {
	now := time.Unix(0, 0)
	p, played := newTestPlayer(&now)

	p.Bump(0.1) // Rolling contact
	if *played != 0 {
		t.Fatal("Expected weak bump ignored")
	}

	p.Bump(3)
	now = now.Add(10 * time.Millisecond)
	p.Bump(3)
	if *played != 1 {
		t.Errorf("Expected second bump rate-limited, played %d", *played)
	}

	now = now.Add(bumpMinInterval)
	p.Bump(3)
	if *played != 2 {
		t.Errorf("Expected bump after interval, played %d", *played)
	}
}

func TestNopPlayer(t *testing.T) {
	NopPlayer{}.Bump(100)
}
