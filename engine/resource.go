package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/rollaball/event"
	"github.com/lixenwraith/rollaball/input"
	"github.com/lixenwraith/rollaball/locomotion"
	"github.com/lixenwraith/rollaball/physics"
)

// ResourceStore is a thread-safe container for world singletons
// Systems reach shared data (Time, Config, Input) through it instead of globals
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its dynamic type
// Pointers are recommended so systems observe in-place updates
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// For core resources that are installed before any system is constructed
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// TimeResource wraps tick timing for systems
// Updated by the ClockScheduler before systems run
type TimeResource struct {
	// DeltaTime is the elapsed time since the previous tick
	DeltaTime time.Duration

	// Tick is the 1-based index of the tick being processed
	Tick uint64
}

// Update modifies TimeResource fields in place
// Must be called under the world update lock
func (tr *TimeResource) Update(deltaTime time.Duration, tick uint64) {
	tr.DeltaTime = deltaTime
	tr.Tick = tick
}

// Seconds returns DeltaTime in seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// InputResource holds the keyboard snapshot for the current tick
type InputResource struct {
	Keys input.KeySet
}

// ConfigResource holds the simulation settings systems read each tick
type ConfigResource struct {
	Mode           locomotion.ControlMode
	Arena          physics.Arena
	TranslateSpeed float64
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// AudioPlayer is the minimal audio interface used by systems
type AudioPlayer interface {
	Bump(strength float64)
}

// AudioResource wraps the audio player
type AudioResource struct {
	Player AudioPlayer
}

// Resource bundles cached resource pointers for system construction
type Resource struct {
	Time   *TimeResource
	Input  *InputResource
	Config *ConfigResource
	Event  *EventQueueResource
}

// GetResourceBundle resolves the core resources, panicking if any is missing
func GetResourceBundle(w *World) Resource {
	return Resource{
		Time:   MustGetResource[*TimeResource](w.Resources),
		Input:  MustGetResource[*InputResource](w.Resources),
		Config: MustGetResource[*ConfigResource](w.Resources),
		Event:  MustGetResource[*EventQueueResource](w.Resources),
	}
}

// InstallCoreResources adds fresh Time, Input, Event resources and the given config
func InstallCoreResources(w *World, cfg *ConfigResource) {
	AddResource(w.Resources, &TimeResource{})
	AddResource(w.Resources, &InputResource{})
	AddResource(w.Resources, cfg)
	AddResource(w.Resources, &EventQueueResource{Queue: event.NewEventQueue()})
}
