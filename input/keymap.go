package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyFromRune maps a typed character to a movement key, case-insensitive
func KeyFromRune(r rune) (Key, bool) {
	switch r {
	case 'a', 'A':
		return KeyA, true
	case 'd', 'D':
		return KeyD, true
	case 's', 'S':
		return KeyS, true
	case 'w', 'W':
		return KeyW, true
	}
	return 0, false
}

// KeyFromEvent maps a tcell key event to a movement key
// Arrow keys alias WASD
func KeyFromEvent(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyA, true
	case tcell.KeyRight:
		return KeyD, true
	case tcell.KeyDown:
		return KeyS, true
	case tcell.KeyUp:
		return KeyW, true
	case tcell.KeyRune:
		return KeyFromRune(ev.Rune())
	}
	return 0, false
}

// IsQuit reports the exit keys: Ctrl+C, Ctrl+Q, Esc, q
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
