package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rollaball/component"
	"github.com/lixenwraith/rollaball/engine"
	"github.com/lixenwraith/rollaball/physics"
)

const (
	wallRune   = '#'
	groundRune = '.'
	ballRune   = 'O'

	// Terminal cells are roughly twice as tall as wide
	cellAspect = 2
)

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleBall    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Status is the text shown under the arena
type Status struct {
	RunID string
	Mode  string
	Tick  uint64
	Keys  string
}

// Viewport maps the arena's X/Z plane onto a cell rectangle, Z grows downward on screen
type Viewport struct {
	X, Y          int // Top-left cell of the wall frame
	Width, Height int // Frame size in cells including walls
	arena         physics.Arena
}

// NewViewport fits the arena into a screen of w×h cells, reserving the last row for status
func NewViewport(arena physics.Arena, w, h int) Viewport {
	availH := h - 1
	if availH < 3 {
		availH = 3
	}
	spanX := arena.MaxX - arena.MinX
	spanZ := arena.MaxZ - arena.MinZ

	// Largest frame that keeps world proportions under cell aspect
	height := availH
	width := int(math.Round(float64(height) * cellAspect * spanX / spanZ))
	if width > w {
		width = w
		height = int(math.Round(float64(width) / cellAspect * spanZ / spanX))
	}
	if width < 3 {
		width = 3
	}
	if height < 3 {
		height = 3
	}

	return Viewport{
		X:      (w - width) / 2,
		Y:      (availH - height) / 2,
		Width:  width,
		Height: height,
		arena:  arena,
	}
}

// Project converts a world X/Z position into a cell strictly inside the frame
func (v Viewport) Project(x, z float64) (int, int) {
	innerW := v.Width - 2
	innerH := v.Height - 2
	fx := (x - v.arena.MinX) / (v.arena.MaxX - v.arena.MinX)
	fz := (z - v.arena.MinZ) / (v.arena.MaxZ - v.arena.MinZ)

	cx := int(fx * float64(innerW))
	cz := int(fz * float64(innerH))
	cx = clamp(cx, 0, innerW-1)
	cz = clamp(cz, 0, innerH-1)
	return v.X + 1 + cx, v.Y + 1 + cz
}

// Draw renders one frame: walls, ground, every ball, then the status line
func Draw(screen tcell.Screen, w *engine.World, arena physics.Arena, st Status) {
	sw, sh := screen.Size()
	screen.Clear()

	v := NewViewport(arena, sw, sh)
	drawFrame(screen, v)

	var statusBody string
	for _, e := range w.Components.Collider.All() {
		col, ok := w.Components.Collider.Get(e)
		if !ok || col.Shape != component.ShapeBall {
			continue
		}
		body, ok := w.Components.Body.Get(e)
		if !ok {
			continue
		}
		cx, cy := v.Project(body.Position.X, body.Position.Z)
		screen.SetContent(cx, cy, ballRune, nil, styleBall)

		if player, ok := w.Components.Player.Get(e); ok && statusBody == "" {
			statusBody = fmt.Sprintf("dir %s  vel %s  pos %s",
				player.Direction, body.Velocity, body.Position)
		}
	}

	line := fmt.Sprintf("[%s] %s  tick %d  keys %s  %s  (WASD/arrows, q quits)",
		st.RunID, st.Mode, st.Tick, st.Keys, statusBody)
	drawText(screen, 0, sh-1, sw, line, styleStatus)

	screen.Show()
}

func drawFrame(screen tcell.Screen, v Viewport) {
	for y := v.Y; y < v.Y+v.Height; y++ {
		for x := v.X; x < v.X+v.Width; x++ {
			edge := y == v.Y || y == v.Y+v.Height-1 || x == v.X || x == v.X+v.Width-1
			if edge {
				screen.SetContent(x, y, wallRune, nil, styleWall)
			} else {
				screen.SetContent(x, y, groundRune, nil, styleGround)
			}
		}
	}
}

func drawText(screen tcell.Screen, x, y, maxW int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= maxW {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	for ; col < maxW; col++ {
		screen.SetContent(x+col, y, ' ', nil, styleDefault)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
