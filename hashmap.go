package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
	"github.com/gostonefire/memhashmap/internal/storage/separatechaining"
)

// Storage - Interface for any collision resolution technique implementation
type Storage[K comparable, V any] interface {
	Put(key K, value V) (err error)
	Get(key K) (value V, ok bool)
	ContainsKey(key K) bool
	Remove(key K)
	ResizeTable(newCapacity int)
	EmptyBuckets() int
	Clear()
	GetKeysAndValues() []model.KeyValue[K, V]
	BucketDistribution() []int64
	GetSize() int
	GetCapacity() int
	TableLoad() float64
	String() string
}

// KeyValue - A key/value pair as returned by GetKeysAndValues
type KeyValue[K comparable, V any] model.KeyValue[K, V]

// HashMapInfo - Information structure containing some information about the hash map created
//   - CollisionResolutionTechnique is the technique the map was created with, see package crt
//   - NumberOfBuckets is the initial number of buckets, the requested capacity coerced up to a prime
//   - InternalAlgorithm is true if no hash function was supplied and the internal one is used
type HashMapInfo struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int
	InternalAlgorithm            bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the number of live records stored
//   - NumberOfBuckets is the current number of buckets
//   - Load is records divided by buckets
//   - EmptyBuckets is the number of buckets available, for quadratic probing tombstones count as available
//   - BucketDistribution is the number of records stored in each bucket
type HashMapStat struct {
	Records            int
	NumberOfBuckets    int
	Load               float64
	EmptyBuckets       int
	BucketDistribution []int64
}

// HashMap - The main implementation struct
type HashMap[K comparable, V any] struct {
	storage Storage[K, V]
	crtType int
}

// NewHashMap - Returns a new empty hash map using the given collision resolution technique.
//   - crtType is one of crt.SeparateChaining or crt.QuadraticProbing
//   - capacity is the initial number of buckets, it is coerced up to the nearest prime
//   - hashFunc is an optional custom hash function, if nil a hash using the runtime's map hasher is used
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap[K comparable, V any](
	crtType int,
	capacity int,
	hashFunc hashfunc.HashFunc[K],
) (
	hashMap *HashMap[K, V],
	hashMapInfo HashMapInfo,
	err error,
) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// If no hash function was given then use the default internal
	var internalAlg bool
	if hashFunc == nil {
		hashFunc = hashfunc.NewComparable[K]()
		internalAlg = true
	}

	var s Storage[K, V]
	switch crtType {
	case crt.SeparateChaining:
		s = separatechaining.NewSCMap[K, V](capacity, hashFunc)
	case crt.QuadraticProbing:
		s = openaddressing.NewQPMap[K, V](capacity, hashFunc)
	default:
		err = fmt.Errorf("collision resolution technique %d is not supported", crtType)
		return
	}

	hashMap = &HashMap[K, V]{
		storage: s,
		crtType: crtType,
	}

	hashMapInfo = HashMapInfo{
		CollisionResolutionTechnique: crtType,
		NumberOfBuckets:              s.GetCapacity(),
		InternalAlgorithm:            internalAlg,
	}

	return
}

// CollisionResolutionTechnique - Returns the technique the hash map was created with
func (H *HashMap[K, V]) CollisionResolutionTechnique() int {
	return H.crtType
}

// String - Dumps the underlying table, one bucket per line
func (H *HashMap[K, V]) String() string {
	return H.storage.String()
}
