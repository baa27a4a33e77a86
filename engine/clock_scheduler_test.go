package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/rollaball/input"
)

// probeSystem captures the resources it observed on each tick
type probeSystem struct {
	res   Resource
	ticks []uint64
	keys  []input.KeySet
	dts   []time.Duration
	count atomic.Int64
}

func (p *probeSystem) Update() {
	p.ticks = append(p.ticks, p.res.Time.Tick)
	p.keys = append(p.keys, p.res.Input.Keys)
	p.dts = append(p.dts, p.res.Time.DeltaTime)
	p.count.Add(1)
}

func (p *probeSystem) Priority() int { return 0 }

func newSchedulerWorld() (*World, *probeSystem) {
	w := NewWorld()
	InstallCoreResources(w, &ConfigResource{})
	probe := &probeSystem{res: GetResourceBundle(w)}
	w.AddSystem(probe)
	return w, probe
}

func TestClockScheduler_Step(t *testing.T) {
	w, probe := newSchedulerWorld()
	cs, _ := NewClockScheduler(w, NewMonotonicTimeProvider(), 16*time.Millisecond)

	cs.Step(input.Keys(input.KeyW), 100*time.Millisecond)
	cs.Step(input.KeySet(0), 0)

	if cs.TickCount() != 2 {
		t.Fatalf("Expected 2 ticks, got %d", cs.TickCount())
	}
	if probe.ticks[0] != 1 || probe.ticks[1] != 2 {
		t.Errorf("Expected ticks [1 2], got %v", probe.ticks)
	}
	if probe.keys[0] != input.Keys(input.KeyW) || !probe.keys[1].Empty() {
		t.Errorf("Unexpected keys %v", probe.keys)
	}
	if probe.dts[0] != 100*time.Millisecond || probe.dts[1] != 0 {
		t.Errorf("Unexpected deltas %v", probe.dts)
	}
}

func TestClockScheduler_StartStop(t *testing.T) {
	w, probe := newSchedulerWorld()
	cs, done := NewClockScheduler(w, NewMonotonicTimeProvider(), 2*time.Millisecond)

	var sampled atomic.Int64
	cs.SetInputSource(func(time.Time) input.KeySet {
		sampled.Add(1)
		return input.Keys(input.KeyD)
	})

	cs.Start(context.Background())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a tick within 2s")
	}
	cs.Stop()
	cs.Stop() // Idempotent

	after := probe.count.Load()
	if after == 0 || sampled.Load() == 0 {
		t.Fatal("Expected systems and input source to run")
	}

	time.Sleep(10 * time.Millisecond)
	if probe.count.Load() != after {
		t.Error("Expected no ticks after Stop")
	}
}

func TestClockScheduler_ContextCancel(t *testing.T) {
	w, probe := newSchedulerWorld()
	cs, done := NewClockScheduler(w, NewMonotonicTimeProvider(), 2*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cs.Start(ctx)
	<-done
	cancel()
	cs.Stop()

	after := probe.count.Load()
	time.Sleep(10 * time.Millisecond)
	if probe.count.Load() != after {
		t.Error("Expected loop to end on cancel")
	}
}

// countingClock counts reads to prove deterministic paths never consult it
type countingClock struct {
	reads atomic.Int64
}

func (c *countingClock) Now() time.Time {
	c.reads.Add(1)
	return time.Now()
}

func TestClockScheduler_StepIgnoresClock(t *testing.T) {
	w, probe := newSchedulerWorld()
	clock := &countingClock{}
	cs, _ := NewClockScheduler(w, clock, 16*time.Millisecond)

	for i := 0; i < 3; i++ {
		cs.Step(input.KeySet(0), 16*time.Millisecond)
	}

	if n := clock.reads.Load(); n != 0 {
		t.Errorf("Expected Step not to read the clock, got %d reads", n)
	}
	if len(probe.dts) != 3 || probe.dts[2] != 16*time.Millisecond {
		t.Errorf("Expected the given step for every tick, got %v", probe.dts)
	}
}
