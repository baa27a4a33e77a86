package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/rollaball/config"
	"github.com/lixenwraith/rollaball/locomotion"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	translateFile := filepath.Join(dir, "translate.yaml")
	if err := os.WriteFile(translateFile, []byte("sim:\n  mode: translate\nplayer:\n  speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	badFile := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badFile, []byte("player:\n  speed: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		path      string
		mode      string
		wantMode  locomotion.ControlMode
		wantSpeed float64
		wantErr   error
		anyErr    bool
	}{
		{name: "defaults", wantMode: locomotion.ControlVelocity, wantSpeed: 5},
		{name: "file mode", path: translateFile, wantMode: locomotion.ControlTranslate, wantSpeed: 7},
		{name: "flag over file", path: translateFile, mode: "velocity", wantMode: locomotion.ControlVelocity, wantSpeed: 7},
		{name: "flag over defaults", mode: "translate", wantMode: locomotion.ControlTranslate, wantSpeed: 5},
		{name: "invalid flag", path: translateFile, mode: "sideways", anyErr: true},
		{name: "invalid file", path: badFile, wantErr: config.ErrInvalidSpeed},
		{name: "missing file", path: filepath.Join(dir, "missing.yaml"), wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(tt.path, tt.mode)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			case tt.anyErr:
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			case err != nil:
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg.Sim.Mode != tt.wantMode {
				t.Errorf("Expected mode %v, got %v", tt.wantMode, cfg.Sim.Mode)
			}
			if cfg.Player.Speed != tt.wantSpeed {
				t.Errorf("Expected speed %v, got %v", tt.wantSpeed, cfg.Player.Speed)
			}
		})
	}
}
