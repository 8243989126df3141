package core

// Entity is an opaque handle: low 32 bits index, high 32 bits generation
// The generation is bumped every time an index is recycled so a stale handle never aliases a newer entity
type Entity uint64

// NoEntity is never issued by the registry
const NoEntity Entity = 0

// NewEntity packs an index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

func (e Entity) Index() uint32      { return uint32(e) }
func (e Entity) Generation() uint32 { return uint32(e >> 32) }
func (e Entity) IsZero() bool       { return e == NoEntity }
