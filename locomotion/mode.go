package locomotion

import (
	"fmt"
	"strings"
)

// ControlMode selects how held keys move the player
type ControlMode uint8

const (
	// ControlVelocity persists a direction and accelerates the body through physics
	ControlVelocity ControlMode = iota
	// ControlTranslate moves the transform directly while keys are held
	ControlTranslate
)

func (m ControlMode) String() string {
	switch m {
	case ControlVelocity:
		return "velocity"
	case ControlTranslate:
		return "translate"
	}
	return fmt.Sprintf("ControlMode(%d)", uint8(m))
}

// ParseControlMode accepts "velocity" or "translate", empty means velocity
func ParseControlMode(s string) (ControlMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "velocity", "force":
		return ControlVelocity, nil
	case "translate", "transform":
		return ControlTranslate, nil
	}
	return 0, fmt.Errorf("unknown control mode %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (m ControlMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *ControlMode) UnmarshalText(b []byte) error {
	v, err := ParseControlMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
