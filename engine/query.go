package engine

import (
	"iter"
	"slices"

	"github.com/lixenwraith/spacegame/core"
)

// QueryBuilder intersects component stores into a lazy entity view
// The view starts from the smallest store and filters through the larger ones
type QueryBuilder struct {
	world  *World
	stores []QueryableStore
}

// Query creates a new QueryBuilder for finding entities with specific component combinations
//
// Example:
//
//	for e := range world.Query().With(world.Kinematics, world.Appearances).Each() {
//	    ...
//	}
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 2),
	}
}

// With adds component stores to the query filter
func (qb *QueryBuilder) With(stores ...QueryableStore) *QueryBuilder {
	qb.stores = append(qb.stores, stores...)
	return qb
}

// Execute returns the entities currently holding every requested component
func (qb *QueryBuilder) Execute() []core.Entity {
	if len(qb.stores) == 0 {
		return nil
	}

	stores := slices.Clone(qb.stores)
	slices.SortFunc(stores, func(a, b QueryableStore) int {
		return a.Count() - b.Count()
	})

	candidates := stores[0].All()
	for _, store := range stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}
	return candidates
}

// Each returns a restartable view over the query
// Membership is snapshotted when a range starts: entities created during the pass are not visited,
// entities destroyed or stripped during the pass are skipped
func (qb *QueryBuilder) Each() iter.Seq[core.Entity] {
	return func(yield func(core.Entity) bool) {
		for _, e := range qb.Execute() {
			if !qb.matches(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (qb *QueryBuilder) matches(e core.Entity) bool {
	if !qb.world.Alive(e) {
		return false
	}
	for _, s := range qb.stores {
		if !s.Has(e) {
			return false
		}
	}
	return true
}
