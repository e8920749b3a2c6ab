package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// HashFunc - Function type that permits an implementation using the hash map to supply a custom hash
// suited for its particular distribution of keys.
// The returned value does not have to be uniform but must be stable for a given key, the hash map
// reduces it modulo its table size and recomputes it after every resize.
type HashFunc[K any] func(key K) uint64

// SumOfRunes - Sums the code points of the key. Anagrams collide, which makes it handy for
// exercising collision resolution.
func SumOfRunes(key string) uint64 {
	var h uint64
	for _, r := range key {
		h += uint64(r)
	}
	return h
}

// WeightedSumOfRunes - Sums the code points of the key weighted by their 1-based position
func WeightedSumOfRunes(key string) uint64 {
	var h uint64
	var i uint64
	for _, r := range key {
		i++
		h += i * uint64(r)
	}
	return h
}

// XXHash - Hashes the key using xxHash64
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// NewComparable - Returns a HashFunc for any comparable key type using the runtime's own map hasher.
// The seed is random per call, so two functions returned from separate calls disagree on values,
// while each one is stable on its own.
func NewComparable[K comparable]() HashFunc[K] {
	hasher := maphash.NewHasher[K]()
	return hasher.Hash
}

// ByName - Returns one of the stock string hash functions given its name.
//   - name is one of "sum", "weighted" or "xxhash"
//
// It returns false if the name is not known.
func ByName(name string) (hashFunc HashFunc[string], ok bool) {
	switch name {
	case "sum":
		return SumOfRunes, true
	case "weighted":
		return WeightedSumOfRunes, true
	case "xxhash":
		return XXHash, true
	}
	return nil, false
}
