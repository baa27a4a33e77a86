package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/rollaball/core"
	"github.com/lixenwraith/rollaball/input"
)

// InputSource samples the keyboard for the tick starting at now
type InputSource func(now time.Time) input.KeySet

// ClockScheduler runs the world on a fixed tick
// Each tick: update TimeResource, snapshot input, run systems in priority order
type ClockScheduler struct {
	world   *World
	clock   TimeProvider
	timeRes *TimeResource
	inRes   *InputResource

	source InputSource

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.Mutex

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals a completed tick to the frame loop, non-blocking
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler for world ticking every tickInterval
// Returns the scheduler and the tick completion channel for the frame loop
func NewClockScheduler(world *World, clock TimeProvider, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		world:        world,
		clock:        clock,
		timeRes:      MustGetResource[*TimeResource](world.Resources),
		inRes:        MustGetResource[*InputResource](world.Resources),
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
	}
	return cs, updateDone
}

// SetInputSource installs the per-tick keyboard sampler, must be called before Start()
func (cs *ClockScheduler) SetInputSource(src InputSource) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.source = src
}

// TickInterval returns the fixed step
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// TickCount returns the number of processed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop, which ends on Stop or ctx cancellation
func (cs *ClockScheduler) Start(ctx context.Context) {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(func() { cs.schedulerLoop(ctx) })
	}
}

// Stop halts the scheduler loop and waits for the running tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.Load() {
			cs.wg.Wait()
			cs.running.Store(false)
		}
	})
}

// Step processes exactly one tick of dt using the given keys, the clock is not read
// Deterministic entry point for headless runs and tests, must not be mixed with Start
func (cs *ClockScheduler) Step(keys input.KeySet, dt time.Duration) {
	cs.world.RunSafe(func() {
		tick := cs.tickCount.Add(1)
		cs.timeRes.Update(dt, tick)
		cs.inRes.Keys = keys
		cs.world.UpdateLocked()
	})
}

// schedulerLoop sleeps to the next deadline and ticks, with drift correction
func (cs *ClockScheduler) schedulerLoop(ctx context.Context) {
	defer cs.wg.Done()

	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		now := cs.clock.Now()
		if !now.Before(cs.nextTickDeadline) {
			cs.processTick(now)

			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
			// Too far behind: drop the backlog instead of bursting ticks
			if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}

			select {
			case cs.updateDone <- struct{}{}:
			default:
			}
		}

		sleep := cs.nextTickDeadline.Sub(cs.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// processTick executes one clock cycle at the fixed step
func (cs *ClockScheduler) processTick(now time.Time) {
	cs.mu.Lock()
	src := cs.source
	cs.mu.Unlock()

	cs.world.RunSafe(func() {
		tick := cs.tickCount.Add(1)
		cs.timeRes.Update(cs.tickInterval, tick)
		if src != nil {
			cs.inRes.Keys = src(now)
		} else {
			cs.inRes.Keys = 0
		}
		cs.world.UpdateLocked()
	})
}
