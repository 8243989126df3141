package engine

import "github.com/lixenwraith/spacegame/core"

// AnyStore provides type-erased operations for lifecycle management
// World destroys entities across every registered store through it
type AnyStore interface {
	// Remove deletes the component of e, no-op when absent
	Remove(e core.Entity)

	// Has reports whether e holds this component under its current generation
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Clear removes all components from this store
	Clear()
}

// QueryableStore extends AnyStore with the listing the query builder intersects
type QueryableStore interface {
	AnyStore

	// All returns a copy of the entities holding this component
	All() []core.Entity
}
