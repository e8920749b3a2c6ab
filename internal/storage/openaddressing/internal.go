package openaddressing

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
)

// probeStart - Returns the initial probe index of key in a table of the given capacity
func probeStart[K any](hashFunc hashfunc.HashFunc[K], key K, capacity int) int {
	return int(hashFunc(key) % uint64(capacity))
}

// probeNext - Returns index (h + j*j) mod capacity given index (h + (j-1)*(j-1)) mod capacity.
// The step 2j-1 keeps j*j from overflowing on large tables.
func probeNext(idx, iteration, capacity int) int {
	return (idx + 2*iteration - 1) % capacity
}

// probingForGet - Is the Quadratic Probing algorithm for finding a live entry matching key.
// Tombstones are walked past. The walk ends at a never used slot, or when the probe comes back to its
// start, which for a prime capacity happens once iteration reaches capacity.
func (Q *QPMap[K, V]) probingForGet(key K) (idx int, found bool) {
	start := probeStart(Q.hashFunc, key, Q.capacity)
	idx = start

	for i := 0; i <= Q.capacity; i++ {
		if i > 0 {
			idx = probeNext(idx, i, Q.capacity)
			if idx == start {
				return
			}
		}

		entry := Q.buckets[idx]
		if entry == nil {
			return
		}
		if !entry.IsTombstone && entry.Key == key {
			found = true
			return
		}
	}

	return
}

// probingForSet - Is the Quadratic Probing algorithm for finding a slot to place a new entry in.
// The first never used or tombstoned slot along the probe sequence is returned. The caller is expected to
// have checked that key is not already present.
func (Q *QPMap[K, V]) probingForSet(key K) (idx int, err error) {
	idx = probeStart(Q.hashFunc, key, Q.capacity)

	for i := 0; i < Q.capacity; i++ {
		if i > 0 {
			idx = probeNext(idx, i, Q.capacity)
		}

		entry := Q.buckets[idx]
		if entry == nil || entry.IsTombstone {
			return
		}
	}

	// A prime capacity above twice the number of live entries always leaves a free slot
	// on the probe sequence, this is a failsafe.
	err = crt.ProbingAlgorithm{}
	return
}

// rehash - Places an entry in the first never used slot along its probe sequence in buckets.
// The buckets are fresh, hence there are no tombstones and no equal keys to look out for.
func rehash[K comparable, V any](buckets []*model.Entry[K, V], entry *model.Entry[K, V], hashFunc hashfunc.HashFunc[K]) {
	capacity := len(buckets)
	idx := probeStart(hashFunc, entry.Key, capacity)

	for i := 1; buckets[idx] != nil && i < capacity; i++ {
		idx = probeNext(idx, i, capacity)
	}

	buckets[idx] = entry
}
