package component

import (
	"github.com/lixenwraith/rollaball/locomotion"
)

// PlayerComponent tags the controllable sphere and carries its locomotion state
type PlayerComponent struct {
	locomotion.PlayerState
}
