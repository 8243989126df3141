package main

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// parseSeed turns the -seed flag into an RNG seed
// Empty picks a time-based seed, digits are used as-is, any other text is hashed so named runs replay
func parseSeed(s string, now func() time.Time) uint64 {
	if s == "" {
		return uint64(now().UnixNano())
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}
	return xxhash.Sum64String(s)
}
