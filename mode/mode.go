// Package mode finds the most frequent elements of a sequence by tallying them in a separate chaining hash map.
package mode

import (
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
)

// DefaultCapacity - Initial number of buckets of the tally map
const DefaultCapacity = 11

// FindMode - Returns every element of values occurring the highest number of times, in the tally map's bucket order,
// together with that number. It uses DefaultCapacity buckets.
//   - values is the sequence to examine, an empty sequence gives no modes and frequency 0
//   - hashFunc is an optional custom hash function, nil gives the internal one
func FindMode[K comparable](values []K, hashFunc hashfunc.HashFunc[K]) (modes []K, frequency int, err error) {
	return FindModeWithCapacity(values, DefaultCapacity, hashFunc)
}

// FindModeWithCapacity - Same as FindMode with a custom initial number of buckets.
// The tally map never grows by itself, pick a capacity in line with the expected number of unique values.
func FindModeWithCapacity[K comparable](values []K, capacity int, hashFunc hashfunc.HashFunc[K]) (modes []K, frequency int, err error) {
	tally, _, err := memhashmap.NewHashMap[K, int](crt.SeparateChaining, capacity, hashFunc)
	if err != nil {
		return
	}

	for _, v := range values {
		count, _ := tally.Get(v)
		if err = tally.Set(v, count+1); err != nil {
			return
		}
	}

	for _, kv := range tally.GetKeysAndValues() {
		switch {
		case kv.Value > frequency:
			modes = append(modes[:0], kv.Key)
			frequency = kv.Value
		case kv.Value == frequency:
			modes = append(modes, kv.Key)
		}
	}

	return
}
