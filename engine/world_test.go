package engine

import (
	"testing"

	"github.com/lixenwraith/rollaball/component"
	"github.com/lixenwraith/rollaball/locomotion"
	"github.com/lixenwraith/rollaball/physics"
)

// orderSystem records its name into a shared log when updated
type orderSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *orderSystem) Update()       { *s.log = append(*s.log, s.name) }
func (s *orderSystem) Priority() int { return s.priority }

func TestWorld_SystemOrder(t *testing.T) {
	w := NewWorld()
	var log []string

	w.AddSystem(&orderSystem{"physics", 30, &log})
	w.AddSystem(&orderSystem{"velocity", 20, &log})
	w.AddSystem(&orderSystem{"input", 10, &log})
	w.AddSystem(&orderSystem{"translate", 20, &log})

	w.RunSafe(w.UpdateLocked)

	want := []string{"input", "velocity", "translate", "physics"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d updates, got %d", len(want), len(log))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestWorld_EntityBuilder(t *testing.T) {
	w := NewWorld()

	e := With(With(w.NewEntity(),
		w.Components.Player, component.PlayerComponent{PlayerState: locomotion.NewPlayerState()}),
		w.Components.Body, component.BodyComponent{Body: physics.Body{Mass: 1}}).Build()

	if e != 1 {
		t.Errorf("Expected first entity to be 1, got %d", e)
	}
	if _, ok := w.Components.Player.Get(e); !ok {
		t.Error("Expected player component")
	}
	if body, ok := w.Components.Body.Get(e); !ok || body.Mass != 1 {
		t.Errorf("Expected body component, got %+v", body)
	}

	if e2 := w.CreateEntity(); e2 != 2 {
		t.Errorf("Expected sequential IDs, got %d", e2)
	}
}

func TestEntityBuilder_PanicsAfterBuild(t *testing.T) {
	w := NewWorld()
	eb := w.NewEntity()
	eb.Build()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when adding after Build")
		}
	}()
	With(eb, w.Components.Wall, component.WallComponent{})
}
