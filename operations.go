package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
)

// Get - Gets the value that corresponds to the given key.
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is of type crt.NoRecordFound if no record matches key
func (H *HashMap[K, V]) Get(key K) (value V, err error) {
	value, ok := H.storage.Get(key)
	if !ok {
		err = crt.NoRecordFound{}
	}

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
// With crt.QuadraticProbing the table may grow before a new record is added, with crt.SeparateChaining it never does.
//
// It returns:
//   - err is a standard error, if something went wrong
func (H *HashMap[K, V]) Set(key K, value V) (err error) {
	err = H.storage.Put(key, value)
	if err != nil {
		err = fmt.Errorf("error while updating or adding record: %w", err)
	}

	return
}

// Pop - Returns the value corresponding to key and removes it from the hash map.
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is of type crt.NoRecordFound if no record matches key
func (H *HashMap[K, V]) Pop(key K) (value V, err error) {
	value, err = H.Get(key)
	if err != nil {
		return
	}

	H.storage.Remove(key)

	return
}

// Remove - Removes the record matching key, nothing happens if there is none
func (H *HashMap[K, V]) Remove(key K) {
	H.storage.Remove(key)
}

// ContainsKey - Returns true if a record matches key
func (H *HashMap[K, V]) ContainsKey(key K) bool {
	return H.storage.ContainsKey(key)
}

// Clear - Removes all records, the number of buckets is kept
func (H *HashMap[K, V]) Clear() {
	H.storage.Clear()
}

// ResizeTable - Rehashes all records into a table of (at least) newCapacity buckets, always a prime number of them.
// Invalid targets are silently ignored, for crt.QuadraticProbing that is anything below the number of records and for
// crt.SeparateChaining anything below 1. Compare GetCapacity before and after if it matters.
//   - newCapacity is the requested number of buckets
func (H *HashMap[K, V]) ResizeTable(newCapacity int) {
	H.storage.ResizeTable(newCapacity)
}

// GetSize - Returns the number of records
func (H *HashMap[K, V]) GetSize() int {
	return H.storage.GetSize()
}

// GetCapacity - Returns the number of buckets
func (H *HashMap[K, V]) GetCapacity() int {
	return H.storage.GetCapacity()
}

// TableLoad - Returns records divided by buckets
func (H *HashMap[K, V]) TableLoad() float64 {
	return H.storage.TableLoad()
}

// EmptyBuckets - Returns the number of buckets available
func (H *HashMap[K, V]) EmptyBuckets() int {
	return H.storage.EmptyBuckets()
}

// GetKeysAndValues - Returns a snapshot of all key/value pairs in bucket order.
// Later changes to the hash map are not reflected in the returned slice.
func (H *HashMap[K, V]) GetKeysAndValues() (keyValues []KeyValue[K, V]) {
	kvs := H.storage.GetKeysAndValues()
	keyValues = make([]KeyValue[K, V], len(kvs))
	for i, kv := range kvs {
		keyValues[i] = KeyValue[K, V](kv)
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
// The HashMapStat.BucketDistribution slice has one entry per bucket.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	hms := HashMapStat{
		Records:         H.storage.GetSize(),
		NumberOfBuckets: H.storage.GetCapacity(),
		Load:            H.storage.TableLoad(),
		EmptyBuckets:    H.storage.EmptyBuckets(),
	}

	if includeDistribution {
		hms.BucketDistribution = H.storage.BucketDistribution()
	}

	hashMapStat = &hms
	return
}
