package engine

import "github.com/lixenwraith/spacegame/core"

// entityPool issues generational handles and recycles freed indices
// Generations start at 1 so the zero handle is never issued
type entityPool struct {
	generations []uint32
	alive       []bool
	free        []uint32
	count       int
}

func newEntityPool(capacity int) *entityPool {
	return &entityPool{
		generations: make([]uint32, 0, capacity),
		alive:       make([]bool, 0, capacity),
		free:        make([]uint32, 0, capacity),
	}
}

func (p *entityPool) create() core.Entity {
	p.count++

	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.alive[idx] = true
		return core.NewEntity(idx, p.generations[idx])
	}

	idx := uint32(len(p.generations))
	p.generations = append(p.generations, 1)
	p.alive = append(p.alive, true)
	return core.NewEntity(idx, 1)
}

// destroy retires e and reports whether it was alive
func (p *entityPool) destroy(e core.Entity) bool {
	if !p.isAlive(e) {
		return false
	}

	idx := e.Index()
	p.alive[idx] = false
	p.generations[idx]++
	if p.generations[idx] == 0 {
		p.generations[idx] = 1
	}
	p.free = append(p.free, idx)
	p.count--
	return true
}

func (p *entityPool) isAlive(e core.Entity) bool {
	idx := e.Index()
	if e.IsZero() || int(idx) >= len(p.generations) {
		return false
	}
	return p.alive[idx] && p.generations[idx] == e.Generation()
}

// live returns every live handle in index order
func (p *entityPool) live() []core.Entity {
	out := make([]core.Entity, 0, p.count)
	for idx, ok := range p.alive {
		if ok {
			out = append(out, core.NewEntity(uint32(idx), p.generations[idx]))
		}
	}
	return out
}
