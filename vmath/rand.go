package vmath

import "github.com/go-gl/mathgl/mgl32"

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each owner keeps its own handle so runs replay from a seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Seed restarts the sequence
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float32) float32 {
	return lo + float32(r.Float64())*(hi-lo)
}

// Vec3 returns a vector with each component in [lo, hi)
func (r *FastRand) Vec3(lo, hi float32) mgl32.Vec3 {
	return mgl32.Vec3{r.Range(lo, hi), r.Range(lo, hi), r.Range(lo, hi)}
}
