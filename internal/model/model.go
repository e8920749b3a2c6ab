package model

import "fmt"

// Entry - Represents one slot occupant in an open addressing table.
// A removed entry stays in its slot with IsTombstone set, Key and Value are then stale and ignored.
type Entry[K comparable, V any] struct {
	Key         K
	Value       V
	IsTombstone bool
}

// NewEntry - Returns a pointer to a new live Entry
func NewEntry[K comparable, V any](key K, value V) *Entry[K, V] {
	return &Entry[K, V]{Key: key, Value: value}
}

// String - Formats the entry the way it is shown in a table dump
func (E *Entry[K, V]) String() string {
	if E.IsTombstone {
		return fmt.Sprintf("K: %v V: %v TS: true", E.Key, E.Value)
	}
	return fmt.Sprintf("K: %v V: %v", E.Key, E.Value)
}

// Node - Represents one link in a separate chaining bucket. A node belongs to exactly one chain.
type Node[K comparable, V any] struct {
	Key   K
	Value V
	Next  *Node[K, V]
}

// KeyValue - A key/value pair as returned in snapshots
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}
