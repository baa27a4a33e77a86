package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/rollaball/config"
	"github.com/lixenwraith/rollaball/game"
	"github.com/lixenwraith/rollaball/input"
)

func TestRunHeadless(t *testing.T) {
	g, err := game.New(config.Default(), game.Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	ticks, _ := input.ParseScript("W .")
	var buf bytes.Buffer
	runHeadless(&buf, g, ticks)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 ticks, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "# run "+g.RunID) {
		t.Errorf("Unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[2], "dir (0.00, 0.00, -1.00)") || !strings.Contains(lines[2], "vel (0.00, 0.00, -0.16)") {
		t.Errorf("Unexpected tick line %q", lines[2])
	}
}

func TestRunBare(t *testing.T) {
	ticks, _ := input.ParseScript("Ax2 D")
	var buf bytes.Buffer
	runBare(&buf, config.Default(), ticks)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %q", buf.String())
	}
	// -0.16 + 0.08
	if !strings.Contains(lines[2], "dir (1.00, 0.00, 0.00) vel (-0.08, 0.00, 0.00)") {
		t.Errorf("Unexpected last line %q", lines[2])
	}
}
