package separatechaining

import "github.com/gostonefire/memhashmap/internal/model"

// bucketNo - Returns which bucket the given key belongs to at current capacity
func (S *SCMap[K, V]) bucketNo(key K) int {
	return int(S.hashFunc(key) % uint64(S.capacity))
}

// findInChain - Returns the node matching key or nil
func findInChain[K comparable, V any](head *model.Node[K, V], key K) *model.Node[K, V] {
	for node := head; node != nil; node = node.Next {
		if node.Key == key {
			return node
		}
	}

	return nil
}

// unlinkFromChain - Unlinks the node matching key, tracking the previous node rather than rebuilding the chain.
//
// It returns:
//   - newHead is the head of the chain after unlinking, it differs from head only if the head node was removed
//   - removed is true if a node was unlinked
func unlinkFromChain[K comparable, V any](head *model.Node[K, V], key K) (newHead *model.Node[K, V], removed bool) {
	newHead = head

	var prev *model.Node[K, V]
	for node := head; node != nil; node = node.Next {
		if node.Key != key {
			prev = node
			continue
		}

		if prev == nil {
			newHead = node.Next
		} else {
			prev.Next = node.Next
		}
		node.Next = nil
		removed = true
		return
	}

	return
}

// chainLength - Returns the number of nodes in a chain
func chainLength[K comparable, V any](head *model.Node[K, V]) (n int) {
	for node := head; node != nil; node = node.Next {
		n++
	}

	return
}
