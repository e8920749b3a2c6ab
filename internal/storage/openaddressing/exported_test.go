//go:build unit

package openaddressing

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/utils"
	"github.com/stretchr/testify/assert"
	"testing"
)

func constantHash(string) uint64 { return 0 }

func identityHash(key int) uint64 { return uint64(key) }

func TestNewQPMap(t *testing.T) {
	t.Run("coerces capacity to a prime", func(t *testing.T) {
		// Prepare
		requested := []int{1, 2, 10, 11, 100}
		expected := []int{3, 3, 11, 11, 101}

		for i := range requested {
			// Execute
			m := NewQPMap[string, int](requested[i], hashfunc.SumOfRunes)

			// Check
			assert.Equalf(t, expected[i], m.GetCapacity(), "capacity for requested %d", requested[i])
			assert.Equal(t, expected[i], len(m.buckets), "buckets allocated")
			assert.Equal(t, 0, m.GetSize(), "map is empty")
			assert.Equal(t, expected[i], m.EmptyBuckets(), "all buckets empty")
		}
	})
}

func TestQPMap_Put(t *testing.T) {
	t.Run("adds and updates records", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](101, hashfunc.SumOfRunes)

		// Execute
		err1 := m.Put("key1", 10)
		err2 := m.Put("key2", 20)
		err3 := m.Put("key1", 30)

		// Check
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.NoError(t, err3)
		assert.Equal(t, 2, m.GetSize(), "update does not change size")
		assert.Equal(t, 101, m.GetCapacity(), "no resize")
		assert.Equal(t, 99, m.EmptyBuckets(), "two buckets used")

		v, ok := m.Get("key1")
		assert.True(t, ok)
		assert.Equal(t, 30, v, "value was overwritten")
	})

	t.Run("resizes before the insert that would cross half load", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](23, hashfunc.XXHash)
		keys := make([]string, 12)
		for i := range keys {
			keys[i] = fmt.Sprintf("key%d", i)
		}

		// Execute
		for i := 0; i < 11; i++ {
			err := m.Put(keys[i], i)
			assert.NoError(t, err)
			assert.Equal(t, 23, m.GetCapacity(), "no resize while below half load")
			assert.LessOrEqual(t, m.TableLoad(), 0.5, "load ceiling holds")
		}
		err := m.Put(keys[11], 11)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, utils.NextPrime(46), m.GetCapacity(), "resized to next prime of double capacity")
		assert.Equal(t, 12, m.GetSize(), "all records counted")
		assert.LessOrEqual(t, m.TableLoad(), 0.5, "load ceiling holds")
		for i, key := range keys {
			v, ok := m.Get(key)
			assert.Truef(t, ok, "%s retrievable", key)
			assert.Equalf(t, i, v, "%s has correct value", key)
		}
	})

	t.Run("updating an existing key at half load does not resize", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](7, hashfunc.SumOfRunes)
		for i := 0; i < 3; i++ {
			_ = m.Put(fmt.Sprintf("k%d", i), i)
		}
		assert.Equal(t, 7, m.GetCapacity())

		// Execute
		err := m.Put("k0", 100)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, 7, m.GetCapacity(), "capacity unchanged")
		assert.Equal(t, 3, m.GetSize(), "size unchanged")
	})

	t.Run("reuses a tombstoned slot for another key", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, string](11, constantHash)
		_ = m.Put("A", "a")
		m.Remove("A")
		assert.True(t, m.buckets[0].IsTombstone, "slot 0 is tombstoned")

		// Execute
		err := m.Put("B", "b")

		// Check
		assert.NoError(t, err)
		assert.Equal(t, "B", m.buckets[0].Key, "B placed in the tombstoned slot")
		assert.False(t, m.buckets[0].IsTombstone, "slot is live again")
		assert.Nil(t, m.buckets[1], "next probe slot untouched")

		_, ok := m.Get("A")
		assert.False(t, ok, "A is absent")
		v, ok := m.Get("B")
		assert.True(t, ok)
		assert.Equal(t, "b", v, "B has its value")
		assert.Equal(t, 1, m.GetSize(), "size only reflects B")
	})

	t.Run("reinserting a removed key makes it live again", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](11, constantHash)
		_ = m.Put("A", 1)
		_ = m.Put("B", 2)
		m.Remove("A")

		// Execute
		_ = m.Put("A", 3)

		// Check
		v, ok := m.Get("A")
		assert.True(t, ok)
		assert.Equal(t, 3, v)
		assert.Equal(t, 2, m.GetSize())
	})

	t.Run("colliding keys are placed along the quadratic probe sequence", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](11, constantHash)

		// Execute
		for i := 0; i < 4; i++ {
			_ = m.Put(fmt.Sprintf("c%d", i), i)
		}

		// Check
		for i, slot := range []int{0, 1, 4, 9} {
			if assert.NotNilf(t, m.buckets[slot], "slot %d used", slot) {
				assert.Equal(t, fmt.Sprintf("c%d", i), m.buckets[slot].Key, "key in expected slot")
			}
		}
	})
}

func TestQPMap_Get(t *testing.T) {
	t.Run("returns absent on empty map", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](31, hashfunc.SumOfRunes)

		// Execute
		v, ok := m.Get("key")

		// Check
		assert.False(t, ok)
		assert.Equal(t, 0, v, "zero value returned")
	})

	t.Run("finds records past tombstones", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](11, constantHash)
		_ = m.Put("A", 1)
		_ = m.Put("B", 2)
		_ = m.Put("C", 3)

		// Execute
		m.Remove("A")
		m.Remove("B")

		// Check
		v, ok := m.Get("C")
		assert.True(t, ok, "C reachable through two tombstones")
		assert.Equal(t, 3, v)
	})

	t.Run("terminates on a table without never used slots", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](7, constantHash)
		for i := range m.buckets {
			m.buckets[i] = model.NewEntry(fmt.Sprintf("x%d", i), i)
		}
		m.size = len(m.buckets)

		// Execute
		_, ok := m.Get("y")
		contains := m.ContainsKey("y")

		// Check
		assert.False(t, ok, "absent key not found")
		assert.False(t, contains, "absent key not contained")
	})
}

func TestQPMap_ScenarioFiveKeys(t *testing.T) {
	t.Run("inserts five keys and removes one", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](11, hashfunc.SumOfRunes)
		for i := 1; i <= 5; i++ {
			_ = m.Put(fmt.Sprintf("key%d", i), i*10)
		}
		assert.Equal(t, 5, m.GetSize())

		// Execute
		m.Remove("key3")

		// Check
		assert.False(t, m.ContainsKey("key3"), "key3 not contained")
		_, ok := m.Get("key3")
		assert.False(t, ok, "key3 absent")
		assert.Equal(t, 4, m.GetSize())
		assert.Equal(t, 11, m.GetCapacity())
		assert.Equal(t, 7, m.EmptyBuckets(), "tombstone counts as empty")
		for _, i := range []int{1, 2, 4, 5} {
			v, ok := m.Get(fmt.Sprintf("key%d", i))
			assert.True(t, ok)
			assert.Equal(t, i*10, v)
		}
	})
}

func TestQPMap_Remove(t *testing.T) {
	t.Run("removing an absent key changes nothing", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](53, hashfunc.SumOfRunes)
		m.Remove("key4")
		_ = m.Put("key1", 10)
		before := m.GetKeysAndValues()

		// Execute
		m.Remove("key4")

		// Check
		assert.Equal(t, 1, m.GetSize(), "size unchanged")
		assert.Equal(t, 53, m.EmptyBuckets()+1, "no tombstone added")
		assert.Empty(t, cmp.Diff(before, m.GetKeysAndValues()), "contents unchanged")
	})

	t.Run("keeps the slot occupied as tombstone", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](11, constantHash)
		_ = m.Put("A", 1)

		// Execute
		m.Remove("A")
		m.Remove("A")

		// Check
		assert.NotNil(t, m.buckets[0], "slot not cleared")
		assert.True(t, m.buckets[0].IsTombstone, "slot tombstoned")
		assert.Equal(t, 0, m.GetSize(), "size decremented once")
	})
}

func TestQPMap_ResizeTable(t *testing.T) {
	t.Run("keeps contents and picks a prime capacity", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](23, hashfunc.SumOfRunes)
		_ = m.Put("key1", 10)

		// Execute
		m.ResizeTable(30)

		// Check
		assert.Equal(t, 31, m.GetCapacity())
		assert.Equal(t, 1, m.GetSize())
		v, ok := m.Get("key1")
		assert.True(t, ok)
		assert.Equal(t, 10, v)
	})

	t.Run("does nothing below current size", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, string](11, hashfunc.WeightedSumOfRunes)
		for i := 1; i < 6; i++ {
			_ = m.Put(fmt.Sprint(i), fmt.Sprint(i*10))
		}
		before := m.GetKeysAndValues()

		// Execute
		m.ResizeTable(2)

		// Check
		assert.Equal(t, 11, m.GetCapacity(), "capacity unchanged")
		assert.Empty(t, cmp.Diff(before, m.GetKeysAndValues()), "contents unchanged")
	})

	t.Run("advances capacity until load is at most half", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](11, hashfunc.SumOfRunes)
		for i := 1; i <= 5; i++ {
			_ = m.Put(fmt.Sprintf("key%d", i), i)
		}

		// Execute
		m.ResizeTable(5)

		// Check
		assert.Equal(t, 11, m.GetCapacity(), "5 and 7 are too small for 5 records")
		assert.LessOrEqual(t, m.TableLoad(), 0.5)
	})

	t.Run("drops tombstones", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](11, constantHash)
		_ = m.Put("A", 1)
		_ = m.Put("B", 2)
		_ = m.Put("C", 3)
		m.Remove("A")

		// Execute
		m.ResizeTable(11)

		// Check
		for i, entry := range m.buckets {
			if entry != nil {
				assert.Falsef(t, entry.IsTombstone, "no tombstone in slot %d", i)
			}
		}
		assert.Equal(t, 9, m.EmptyBuckets())
		v, ok := m.Get("C")
		assert.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("preserves contents across many capacities", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](79, hashfunc.WeightedSumOfRunes)
		var keys []int
		for k := 1; k < 1000; k += 13 {
			keys = append(keys, k)
			_ = m.Put(fmt.Sprint(k), k*42)
		}

		for capacity := 111; capacity < 1000; capacity += 117 {
			// Execute
			m.ResizeTable(capacity)

			// Check
			assert.True(t, utils.IsPrime(m.GetCapacity()), "capacity is prime")
			assert.LessOrEqual(t, m.TableLoad(), 0.5, "load factor acceptable")
			assert.Equal(t, len(keys), m.GetSize())

			_ = m.Put("some key", -1)
			assert.True(t, m.ContainsKey("some key"))
			m.Remove("some key")

			for _, k := range keys {
				assert.Truef(t, m.ContainsKey(fmt.Sprint(k)), "key %d present at capacity %d", k, capacity)
				assert.Falsef(t, m.ContainsKey(fmt.Sprint(k+1)), "key %d absent at capacity %d", k+1, capacity)
			}
		}
	})
}

func TestQPMap_Clear(t *testing.T) {
	t.Run("empties map and keeps capacity", func(t *testing.T) {
		// Prepare
		m := NewQPMap[string, int](53, hashfunc.SumOfRunes)
		_ = m.Put("key1", 10)
		_ = m.Put("key2", 20)
		m.ResizeTable(100)
		capacity := m.GetCapacity()

		// Execute
		m.Clear()

		// Check
		assert.Equal(t, 0, m.GetSize())
		assert.Equal(t, capacity, m.GetCapacity())
		assert.Equal(t, capacity, m.EmptyBuckets())
		assert.False(t, m.ContainsKey("key1"))
	})
}

func TestQPMap_GetKeysAndValues(t *testing.T) {
	t.Run("returns live pairs in slot order", func(t *testing.T) {
		// Prepare
		m := NewQPMap[int, string](11, identityHash)
		_ = m.Put(7, "seven")
		_ = m.Put(3, "three")
		_ = m.Put(5, "five")
		_ = m.Put(4, "four")
		m.Remove(4)

		// Execute
		kvs := m.GetKeysAndValues()

		// Check
		expected := []model.KeyValue[int, string]{{Key: 3, Value: "three"}, {Key: 5, Value: "five"}, {Key: 7, Value: "seven"}}
		assert.Empty(t, cmp.Diff(expected, kvs), "pairs in slot order")
	})

	t.Run("returns empty snapshot on empty map", func(t *testing.T) {
		// Prepare
		m := NewQPMap[int, string](11, identityHash)

		// Execute
		kvs := m.GetKeysAndValues()

		// Check
		assert.NotNil(t, kvs)
		assert.Len(t, kvs, 0)
	})
}

func TestQPMap_BucketDistribution(t *testing.T) {
	t.Run("counts live slots", func(t *testing.T) {
		// Prepare
		m := NewQPMap[int, string](11, identityHash)
		_ = m.Put(1, "a")
		_ = m.Put(2, "b")
		m.Remove(2)

		// Execute
		d := m.BucketDistribution()

		// Check
		assert.Len(t, d, 11)
		assert.Equal(t, int64(1), d[1])
		assert.Equal(t, int64(0), d[2], "tombstone is not counted")
	})
}

func TestQPMap_String(t *testing.T) {
	t.Run("dumps one slot per line", func(t *testing.T) {
		// Prepare
		m := NewQPMap[int, string](3, identityHash)
		_ = m.Put(1, "a")

		// Execute
		s := m.String()

		// Check
		assert.Equal(t, "0: None\n1: K: 1 V: a\n2: None\n", s)
	})
}
