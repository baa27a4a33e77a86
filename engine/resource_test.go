package engine

import (
	"testing"
	"time"
)

func TestResourceStore(t *testing.T) {
	rs := NewResourceStore()

	if _, ok := GetResource[*TimeResource](rs); ok {
		t.Error("Expected missing resource")
	}

	tr := &TimeResource{}
	AddResource(rs, tr)

	got, ok := GetResource[*TimeResource](rs)
	if !ok || got != tr {
		t.Fatal("Expected the same pointer back")
	}

	got.Update(250*time.Millisecond, 7)
	if tr.Tick != 7 || tr.Seconds() != 0.25 {
		t.Errorf("Expected in-place update, got %+v", tr)
	}
}

func TestMustGetResource_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for missing resource")
		}
	}()
	MustGetResource[*ConfigResource](NewResourceStore())
}

func TestInstallCoreResources(t *testing.T) {
	w := NewWorld()
	InstallCoreResources(w, &ConfigResource{TranslateSpeed: 1})

	res := GetResourceBundle(w)
	if res.Time == nil || res.Input == nil || res.Event == nil || res.Event.Queue == nil {
		t.Fatal("Expected core resources installed")
	}
	if res.Config.TranslateSpeed != 1 {
		t.Errorf("Expected config passed through, got %+v", res.Config)
	}
}
