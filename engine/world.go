package engine

import (
	"fmt"

	"github.com/lixenwraith/spacegame/component"
	"github.com/lixenwraith/spacegame/core"
	"github.com/lixenwraith/spacegame/event"
	"github.com/lixenwraith/spacegame/parameter"
)

// World contains all entities and their components using typed stores
// Single-threaded: systems and the session mutate it from the frame loop only
type World struct {
	pool *entityPool

	// Session singletons shared by systems
	Resources *Resources

	Kinematics  *Store[component.KinematicComponent]
	Appearances *Store[component.AppearanceComponent]

	// Type-erased view of every store for destruction and clearing
	stores []AnyStore

	// Per-kind asset handles copied onto entities at spawn
	appearance [core.KindCount]component.AppearanceComponent

	// Direct pointers for event emission
	eventQueue  *event.EventQueue
	frameSource *int64

	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	w := &World{
		pool:        newEntityPool(parameter.EntityPoolCapacity),
		Resources:   &Resources{},
		Kinematics:  NewStore[component.KinematicComponent](),
		Appearances: NewStore[component.AppearanceComponent](),
	}
	w.stores = []AnyStore{w.Kinematics, w.Appearances}
	return w
}

// CreateEntity reserves a new entity handle with no components
func (w *World) CreateEntity() core.Entity {
	return w.pool.create()
}

// Spawn creates an entity of the given kind with a default kinematic component and the kind's appearance
func (w *World) Spawn(kind core.Kind) core.Entity {
	e := w.pool.create()
	w.Kinematics.Set(e, component.KinematicComponent{Kind: kind})
	if kind.Valid() {
		w.Appearances.Set(e, w.appearance[kind])
	}
	return e
}

// DestroyEntity removes e and all its components
// Returns false without side effects when e is stale or was never issued
func (w *World) DestroyEntity(e core.Entity) bool {
	if !w.pool.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.pool.destroy(e)
}

// Alive reports whether e refers to a live entity
func (w *World) Alive(e core.Entity) bool {
	return w.pool.isAlive(e)
}

// Count returns the number of live entities
func (w *World) Count() int {
	return w.pool.count
}

// Kinematic returns the mutable kinematic component of e
// The pointer is valid until the next spawn or destroy
func (w *World) Kinematic(e core.Entity) (*component.KinematicComponent, error) {
	if !w.pool.isAlive(e) {
		return nil, fmt.Errorf("kinematic of entity %#x: %w", uint64(e), core.ErrUnknownEntity)
	}
	kc, ok := w.Kinematics.Ptr(e)
	if !ok {
		return nil, fmt.Errorf("entity %#x has no kinematic component: %w", uint64(e), core.ErrUnknownEntity)
	}
	return kc, nil
}

// SetAppearance registers the asset handles assigned to kind at spawn
func (w *World) SetAppearance(kind core.Kind, app component.AppearanceComponent) {
	if kind.Valid() {
		w.appearance[kind] = app
	}
}

// Clear destroys every entity
// Generations are retained so handles issued before the clear stay invalid
func (w *World) Clear() {
	for _, e := range w.pool.live() {
		w.pool.destroy(e)
	}
	for _, s := range w.stores {
		s.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort, stable for equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// InitSystems resets every system to its post-reset state
func (w *World) InitSystems() {
	for _, system := range w.systems {
		system.Init()
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems in priority order, stopping at the first error
func (w *World) Update(dt float64) error {
	for _, system := range w.systems {
		if err := system.Update(dt); err != nil {
			return err
		}
	}
	return nil
}

// FrameNumber returns the current frame index of the owning session
func (w *World) FrameNumber() int64 {
	if w.frameSource == nil {
		return 0
	}
	return *w.frameSource
}

// SetEventMetadata wires the queue and frame counter used by PushEvent
func (w *World) SetEventMetadata(q *event.EventQueue, frame *int64) {
	w.eventQueue = q
	w.frameSource = frame
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return
	}

	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}
