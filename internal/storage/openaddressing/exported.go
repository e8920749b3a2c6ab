package openaddressing

import (
	"errors"
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/utils"
	"strings"
)

// QPMap - Represents an implementation of the Quadratic Probing Collision Resolution Technique.
// It uses one slice of buckets where each bucket holds at most one entry. In case of a collision, it probes through
// the table visiting (h + j*j) mod capacity for j = 0, 1, 2... looking for a free slot.
// Removed entries are kept as tombstones so that probe chains passing through them stay intact, they are
// reclaimed by a later insert probing onto them or dropped at the next resize.
// The table grows before an insert that would push the load factor above 0.5.
type QPMap[K comparable, V any] struct {
	buckets  []*model.Entry[K, V]
	capacity int
	size     int
	hashFunc hashfunc.HashFunc[K]
}

// NewQPMap - Returns a pointer to a new empty instance of Quadratic Probing map.
//   - capacity is the requested number of buckets, it is coerced up to the nearest prime
//   - hashFunc is the hash function to distribute keys with
func NewQPMap[K comparable, V any](capacity int, hashFunc hashfunc.HashFunc[K]) *QPMap[K, V] {
	capacity = utils.NextPrime(capacity)

	return &QPMap[K, V]{
		buckets:  make([]*model.Entry[K, V], capacity),
		capacity: capacity,
		size:     0,
		hashFunc: hashFunc,
	}
}

// Put - Updates the value of an existing live key or adds a new key/value pair.
// Updating never resizes. A new key makes the table grow to the prime nearest double capacity first if the
// insert would otherwise push the load factor above 0.5.
//
// It returns:
//   - err is of type crt.ProbingAlgorithm if no slot could be found, which the load ceiling should rule out
func (Q *QPMap[K, V]) Put(key K, value V) (err error) {
	if idx, found := Q.probingForGet(key); found {
		Q.buckets[idx].Value = value
		return
	}

	if 2*(Q.size+1) > Q.capacity {
		Q.ResizeTable(2 * Q.capacity)
	}

	idx, err := Q.probingForSet(key)
	if errors.Is(err, crt.ProbingAlgorithm{}) {
		Q.ResizeTable(2 * Q.capacity)
		idx, err = Q.probingForSet(key)
	}
	if err != nil {
		err = fmt.Errorf("error while probing for a free slot at capacity %d: %w", Q.capacity, err)
		return
	}

	Q.buckets[idx] = model.NewEntry(key, value)
	Q.size++

	return
}

// Get - Returns the value of the live entry matching key
//
// It returns:
//   - value is the value found, the zero value if not found
//   - ok is false if no live entry matches key
func (Q *QPMap[K, V]) Get(key K) (value V, ok bool) {
	if Q.size == 0 {
		return
	}

	idx, ok := Q.probingForGet(key)
	if ok {
		value = Q.buckets[idx].Value
	}

	return
}

// ContainsKey - Returns true if a live entry matches key
func (Q *QPMap[K, V]) ContainsKey(key K) bool {
	if Q.size == 0 {
		return false
	}

	_, found := Q.probingForGet(key)
	return found
}

// Remove - Marks the live entry matching key as a tombstone. The slot is not reclaimed as empty.
// Nothing happens if key is not present.
func (Q *QPMap[K, V]) Remove(key K) {
	if Q.size == 0 {
		return
	}

	idx, found := Q.probingForGet(key)
	if !found {
		return
	}

	Q.buckets[idx].IsTombstone = true
	Q.size--
}

// ResizeTable - Rehashes all live entries into a new table.
// The new capacity is the nearest prime at or above newCapacity, advanced further until the load factor is at most 0.5.
// Tombstones are not carried over. Nothing happens if newCapacity is less than the current number of entries.
//   - newCapacity is the requested number of buckets
func (Q *QPMap[K, V]) ResizeTable(newCapacity int) {
	if newCapacity < Q.size {
		return
	}

	newCapacity = utils.NextPrime(newCapacity)
	for 2*Q.size > newCapacity {
		newCapacity = utils.NextPrime(newCapacity + 1)
	}

	newBuckets := make([]*model.Entry[K, V], newCapacity)
	for _, entry := range Q.buckets {
		if entry == nil || entry.IsTombstone {
			continue
		}
		rehash(newBuckets, entry, Q.hashFunc)
	}

	Q.buckets = newBuckets
	Q.capacity = newCapacity
}

// EmptyBuckets - Returns the number of slots available for insert, that is never used slots plus tombstones
func (Q *QPMap[K, V]) EmptyBuckets() (n int) {
	for _, entry := range Q.buckets {
		if entry == nil || entry.IsTombstone {
			n++
		}
	}

	return
}

// Clear - Empties every slot, capacity is kept
func (Q *QPMap[K, V]) Clear() {
	for i := range Q.buckets {
		Q.buckets[i] = nil
	}
	Q.size = 0
}

// GetKeysAndValues - Returns a snapshot of all live key/value pairs in slot order
func (Q *QPMap[K, V]) GetKeysAndValues() (keyValues []model.KeyValue[K, V]) {
	keyValues = make([]model.KeyValue[K, V], 0, Q.size)
	if Q.size == 0 {
		return
	}

	for _, entry := range Q.buckets {
		if entry != nil && !entry.IsTombstone {
			keyValues = append(keyValues, model.KeyValue[K, V]{Key: entry.Key, Value: entry.Value})
		}
	}

	return
}

// BucketDistribution - Returns the number of live entries per slot, which for open addressing is either 0 or 1
func (Q *QPMap[K, V]) BucketDistribution() (distribution []int64) {
	distribution = make([]int64, Q.capacity)
	for i, entry := range Q.buckets {
		if entry != nil && !entry.IsTombstone {
			distribution[i] = 1
		}
	}

	return
}

// GetSize - Returns number of live entries
func (Q *QPMap[K, V]) GetSize() int {
	return Q.size
}

// GetCapacity - Returns number of slots
func (Q *QPMap[K, V]) GetCapacity() int {
	return Q.capacity
}

// TableLoad - Returns the load factor, live entries divided by slots
func (Q *QPMap[K, V]) TableLoad() float64 {
	return float64(Q.size) / float64(Q.capacity)
}

// String - Dumps the table one slot per line
func (Q *QPMap[K, V]) String() string {
	var sb strings.Builder
	for i, entry := range Q.buckets {
		if entry == nil {
			_, _ = fmt.Fprintf(&sb, "%d: None\n", i)
		} else {
			_, _ = fmt.Fprintf(&sb, "%d: %s\n", i, entry)
		}
	}

	return sb.String()
}
