package meet

import (
	"hash/fnv"
	"math/rand"
)

// SeedKey uniquely identifies a reproducible generation run. Two runs
// with the same SeedKey and identical configuration and entries MUST
// produce bit-for-bit identical heat sheets.
type SeedKey int64

// PartitionedRNG derives one isolated, deterministic random stream per
// event. Each event's stream is seeded with the master seed XOR the
// FNV-1a hash of the normalized event name, so a stream does not depend
// on how many events precede it in running order.
//
// Thread-safety: NOT thread-safe. The pipeline is single-threaded.
type PartitionedRNG struct {
	key     SeedKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(key SeedKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:     key,
		streams: make(map[string]*rand.Rand),
	}
}

// ForEvent returns the deterministically-seeded RNG for the named event.
// The same event name always returns the same cached *rand.Rand.
// Never returns nil.
func (p *PartitionedRNG) ForEvent(name string) *rand.Rand {
	norm := Normalize(name)
	if rng, ok := p.streams[norm]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(norm)))
	p.streams[norm] = rng
	return rng
}

// Key returns the master seed this PartitionedRNG was created with.
func (p *PartitionedRNG) Key() SeedKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
