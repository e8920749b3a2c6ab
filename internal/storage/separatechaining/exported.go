package separatechaining

import (
	"fmt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/utils"
	"strings"
)

// SCMap - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// It uses one slice of buckets where each bucket is the head of a singly linked chain of nodes. Keys hashing
// to the same bucket are all kept in that bucket's chain, hence the map never runs out of slots.
//
// The map never grows by itself, lookups degrade to O(chain length) under high load and it is up to the
// caller to use ResizeTable if that becomes a problem.
type SCMap[K comparable, V any] struct {
	buckets  []*model.Node[K, V]
	capacity int
	size     int
	hashFunc hashfunc.HashFunc[K]
}

// NewSCMap - Returns a pointer to a new empty instance of Separate Chaining map.
//   - capacity is the requested number of buckets, it is coerced up to the nearest prime
//   - hashFunc is the hash function to distribute keys with
func NewSCMap[K comparable, V any](capacity int, hashFunc hashfunc.HashFunc[K]) *SCMap[K, V] {
	capacity = utils.NextPrime(capacity)

	return &SCMap[K, V]{
		buckets:  make([]*model.Node[K, V], capacity),
		capacity: capacity,
		size:     0,
		hashFunc: hashFunc,
	}
}

// Put - Updates the value of an existing key or prepends a new node to the key's chain.
// It always returns a nil error, the signature is shared with the probing implementation.
func (S *SCMap[K, V]) Put(key K, value V) (err error) {
	idx := S.bucketNo(key)

	if node := findInChain(S.buckets[idx], key); node != nil {
		node.Value = value
		return
	}

	S.buckets[idx] = &model.Node[K, V]{Key: key, Value: value, Next: S.buckets[idx]}
	S.size++

	return
}

// Get - Returns the value of the node matching key
//
// It returns:
//   - value is the value found, the zero value if not found
//   - ok is false if no node matches key
func (S *SCMap[K, V]) Get(key K) (value V, ok bool) {
	if S.size == 0 {
		return
	}

	if node := findInChain(S.buckets[S.bucketNo(key)], key); node != nil {
		value = node.Value
		ok = true
	}

	return
}

// ContainsKey - Returns true if a node matches key
func (S *SCMap[K, V]) ContainsKey(key K) bool {
	if S.size == 0 {
		return false
	}

	return findInChain(S.buckets[S.bucketNo(key)], key) != nil
}

// Remove - Unlinks the node matching key from its chain. Nothing happens if key is not present.
func (S *SCMap[K, V]) Remove(key K) {
	if S.size == 0 {
		return
	}

	idx := S.bucketNo(key)
	var removed bool
	S.buckets[idx], removed = unlinkFromChain(S.buckets[idx], key)
	if removed {
		S.size--
	}
}

// ResizeTable - Rehashes every node into a new set of chains.
// A newCapacity that is not prime is advanced to the nearest prime. Any capacity from 1 and up is accepted, also
// one below the number of entries, and no load factor ceiling is applied. Nothing happens if newCapacity is less than 1.
//   - newCapacity is the requested number of buckets
func (S *SCMap[K, V]) ResizeTable(newCapacity int) {
	if newCapacity < 1 {
		return
	}

	if !utils.IsPrime(newCapacity) {
		newCapacity = utils.NextPrime(newCapacity)
	}

	newBuckets := make([]*model.Node[K, V], newCapacity)
	for _, head := range S.buckets {
		for node := head; node != nil; node = node.Next {
			idx := int(S.hashFunc(node.Key) % uint64(newCapacity))
			newBuckets[idx] = &model.Node[K, V]{Key: node.Key, Value: node.Value, Next: newBuckets[idx]}
		}
	}

	S.buckets = newBuckets
	S.capacity = newCapacity
}

// EmptyBuckets - Returns the number of buckets with an empty chain
func (S *SCMap[K, V]) EmptyBuckets() (n int) {
	for _, head := range S.buckets {
		if head == nil {
			n++
		}
	}

	return
}

// Clear - Replaces every chain with an empty one, capacity is kept
func (S *SCMap[K, V]) Clear() {
	for i := range S.buckets {
		S.buckets[i] = nil
	}
	S.size = 0
}

// GetKeysAndValues - Returns a snapshot of all key/value pairs, bucket by bucket and in chain order within a bucket
func (S *SCMap[K, V]) GetKeysAndValues() (keyValues []model.KeyValue[K, V]) {
	keyValues = make([]model.KeyValue[K, V], 0, S.size)
	if S.size == 0 {
		return
	}

	for _, head := range S.buckets {
		for node := head; node != nil; node = node.Next {
			keyValues = append(keyValues, model.KeyValue[K, V]{Key: node.Key, Value: node.Value})
		}
	}

	return
}

// BucketDistribution - Returns the chain length of every bucket
func (S *SCMap[K, V]) BucketDistribution() (distribution []int64) {
	distribution = make([]int64, S.capacity)
	for i, head := range S.buckets {
		distribution[i] = int64(chainLength(head))
	}

	return
}

// GetSize - Returns number of entries
func (S *SCMap[K, V]) GetSize() int {
	return S.size
}

// GetCapacity - Returns number of buckets
func (S *SCMap[K, V]) GetCapacity() int {
	return S.capacity
}

// TableLoad - Returns the load factor, entries divided by buckets. It may well exceed 1.
func (S *SCMap[K, V]) TableLoad() float64 {
	return float64(S.size) / float64(S.capacity)
}

// String - Dumps the table one bucket per line with its chain
func (S *SCMap[K, V]) String() string {
	var sb strings.Builder
	for i, head := range S.buckets {
		_, _ = fmt.Fprintf(&sb, "%d:", i)
		for node := head; node != nil; node = node.Next {
			_, _ = fmt.Fprintf(&sb, " -> (%v: %v)", node.Key, node.Value)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
