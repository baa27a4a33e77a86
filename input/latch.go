package input

import (
	"sync"
	"time"
)

// Latch turns a stream of key presses into per-tick pressed state
// Terminals report presses and auto-repeat but no releases, so a key counts
// as held until hold has elapsed since its last press
type Latch struct {
	mu       sync.Mutex
	hold     time.Duration
	lastSeen [keyCount]time.Time
}

// NewLatch creates a latch with the given hold window
func NewLatch(hold time.Duration) *Latch {
	return &Latch{hold: hold}
}

// Press records a key press at t, safe to call from the input poller goroutine
func (l *Latch) Press(k Key, t time.Time) {
	if k >= keyCount {
		return
	}
	l.mu.Lock()
	l.lastSeen[k] = t
	l.mu.Unlock()
}

// Snapshot returns the keys considered held at now
func (l *Latch) Snapshot(now time.Time) KeySet {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s KeySet
	for k := KeyA; k < keyCount; k++ {
		seen := l.lastSeen[k]
		if seen.IsZero() {
			continue
		}
		if now.Sub(seen) <= l.hold {
			s = s.With(k)
		}
	}
	return s
}

// Reset forgets all presses
func (l *Latch) Reset() {
	l.mu.Lock()
	l.lastSeen = [keyCount]time.Time{}
	l.mu.Unlock()
}
