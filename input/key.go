package input

import "strings"

// Key identifies one of the movement keys the locomotion component reads
type Key uint8

const (
	KeyA Key = iota
	KeyD
	KeyS
	KeyW
	keyCount
)

var keyNames = [keyCount]string{"A", "D", "S", "W"}

func (k Key) String() string {
	if k >= keyCount {
		return "?"
	}
	return keyNames[k]
}

// KeyState is the per-tick keyboard query exposed by the host
type KeyState interface {
	IsPressed(Key) bool
}

// KeySet is an immutable snapshot of pressed keys packed in a bitmask
type KeySet uint8

// Keys builds a KeySet from the given keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns a copy with k pressed
func (s KeySet) With(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}

// IsPressed implements KeyState
func (s KeySet) IsPressed(k Key) bool {
	if k >= keyCount {
		return false
	}
	return s&(1<<k) != 0
}

// Empty reports no key pressed
func (s KeySet) Empty() bool {
	return s == 0
}

// String lists pressed keys in evaluation order, "." when empty
func (s KeySet) String() string {
	if s.Empty() {
		return "."
	}
	var b strings.Builder
	for k := KeyA; k < keyCount; k++ {
		if s.IsPressed(k) {
			b.WriteString(k.String())
		}
	}
	return b.String()
}
