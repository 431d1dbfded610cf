package table

import (
	"github.com/gostonefire/chainedhashmap/internal/model"
	"github.com/gostonefire/chainedhashmap/internal/overflow"
)

// Insert - Adds an entry to the table, growing it first if it is full.
// There is no check for an existing entry with the same hash, inserting twice stores two entries.
//   - hash is the hash value of key
//   - key is the key to store along with the value
//   - value is the value to store
//
// It returns:
//   - iterator pointing at the inserted entry
func (T *Table[K, V]) Insert(hash uint32, key K, value V) (iterator Iterator[K, V]) {
	T.ensureCapacity()

	idx := T.tableSize.BucketIndex(hash)
	head := &T.buckets[idx]
	T.size++

	if !head.Occupied {
		head.Set(key, value, hash)
		iterator = Iterator[K, V]{table: T, node: head, bucket: idx}
		return
	}

	tail := head
	for tail.Next != nil {
		tail = tail.Next
	}
	n := &model.Node[K, V]{}
	n.Set(key, value, hash)
	tail.Next = n

	iterator = Iterator[K, V]{table: T, node: n, bucket: idx}
	return
}

// Find - Returns an iterator to the first entry having hash, or the end iterator if there is none
func (T *Table[K, V]) Find(hash uint32) (iterator Iterator[K, V]) {
	node, idx := T.findNode(hash)
	if node == nil {
		return T.End()
	}

	iterator = Iterator[K, V]{table: T, node: node, bucket: idx}
	return
}

// Contains - Returns true if there is an entry having hash
func (T *Table[K, V]) Contains(hash uint32) bool {
	node, _ := T.findNode(hash)
	return node != nil
}

// ContainsValue - Returns true if there is an entry having both hash and value
func (T *Table[K, V]) ContainsValue(hash uint32, value V) bool {
	return T.countPair(hash, value) > 0
}

// Count - Returns the number of entries having hash
func (T *Table[K, V]) Count(hash uint32) (count uint64) {
	head := T.head(hash)
	if head == nil {
		return
	}

	for n := head; n != nil; n = n.Next {
		if n.Hash == hash {
			count++
		}
	}

	return
}

// Get - Returns the value of the first entry having hash, or def if there is none
func (T *Table[K, V]) Get(hash uint32, def V) V {
	node, _ := T.findNode(hash)
	if node == nil {
		return def
	}

	return node.Value
}

// GetNodeByHash - Returns the first node having hash, or nil if there is none
func (T *Table[K, V]) GetNodeByHash(hash uint32) *model.Node[K, V] {
	node, _ := T.findNode(hash)
	return node
}

// GetNodeByValue - Returns the first node found having value, or nil if there is none.
// All buckets are scanned so this is linear in the number of entries.
func (T *Table[K, V]) GetNodeByValue(value V) *model.Node[K, V] {
	for i := range T.buckets {
		head := &T.buckets[i]
		if !head.Occupied {
			continue
		}
		if T.valueEqual(head.Value, value) {
			return head
		}

		iter := overflow.NewRecords(head)
		for iter.HasNext() {
			n := iter.Next()
			if T.valueEqual(n.Value, value) {
				return n
			}
		}
	}

	return nil
}

// Remove - Removes every entry having hash.
// Matching overflow nodes are spliced out first, the head is checked last. A removed head takes over the
// contents of the first remaining overflow node.
//
// It returns:
//   - removed is the number of entries removed
func (T *Table[K, V]) Remove(hash uint32) (removed uint64) {
	head := T.head(hash)
	if head == nil {
		return
	}

	if head.Next == nil {
		if head.Hash == hash {
			head.Reset()
			T.size--
			removed = 1
		}
		return
	}

	prev := head
	for n := head.Next; n != nil; n = n.Next {
		if n.Hash == hash {
			prev.Next = n.Next
			removed++
		} else {
			prev = n
		}
	}

	if head.Hash == hash {
		removeHead(head)
		removed++
	}

	T.size -= removed

	return
}

// RemoveAt - Removes the entry iterator points at.
//
// It returns:
//   - next is an iterator to the entry following the removed one, or the end iterator. If the removed entry was
//     a bucket head with a chain behind it, next points at that same head which now holds the following entry.
func (T *Table[K, V]) RemoveAt(iterator Iterator[K, V]) (next Iterator[K, V]) {
	node := iterator.node
	if node == nil || iterator.table != T || iterator.bucket >= uint64(len(T.buckets)) {
		return T.End()
	}

	idx := iterator.bucket
	head := &T.buckets[idx]

	if node == head {
		if !head.Occupied {
			return T.End()
		}
		T.size--
		if head.Next == nil {
			head.Reset()
			return T.seekForward(idx + 1)
		}
		removeHead(head)
		next = Iterator[K, V]{table: T, node: head, bucket: idx}
		return
	}

	prev := head
	for prev.Next != nil && prev.Next != node {
		prev = prev.Next
	}
	if prev.Next == nil {
		return T.End()
	}

	prev.Next = node.Next
	T.size--

	if node.Next != nil {
		next = Iterator[K, V]{table: T, node: node.Next, bucket: idx}
		return
	}

	return T.seekForward(idx + 1)
}

// Take - Removes the first entry having hash and returns its value, or def if there is none.
// Only one entry is removed even if more entries share the same hash.
func (T *Table[K, V]) Take(hash uint32, def V) V {
	head := T.head(hash)
	if head == nil {
		return def
	}

	if head.Hash == hash {
		value := head.Value
		if head.Next == nil {
			head.Reset()
		} else {
			removeHead(head)
		}
		T.size--
		return value
	}

	for prev := head; prev.Next != nil; prev = prev.Next {
		if prev.Next.Hash == hash {
			value := prev.Next.Value
			prev.Next = prev.Next.Next
			T.size--
			return value
		}
	}

	return def
}

// Equal - Returns true if both tables hold the same (hash, value) entries, duplicates included.
// Tables of different size are never equal, and every entry in T must occur as many times in other.
// Together that makes containment hold in both directions.
func (T *Table[K, V]) Equal(other *Table[K, V]) bool {
	if T == other {
		return true
	}
	if T.size != other.size {
		return false
	}

	for i := range T.buckets {
		head := &T.buckets[i]
		if !head.Occupied {
			continue
		}
		for n := head; n != nil; n = n.Next {
			if T.countPair(n.Hash, n.Value) != other.countPair(n.Hash, n.Value) {
				return false
			}
		}
	}

	return true
}

// head - Returns the occupied bucket head for hash, or nil if the bucket is empty or the table uninitialised
func (T *Table[K, V]) head(hash uint32) *model.Node[K, V] {
	if !T.IsInitialised() {
		return nil
	}

	head := &T.buckets[T.tableSize.BucketIndex(hash)]
	if !head.Occupied {
		return nil
	}

	return head
}

// findNode - Returns the first node having hash along with its bucket index
func (T *Table[K, V]) findNode(hash uint32) (node *model.Node[K, V], idx uint64) {
	head := T.head(hash)
	if head == nil {
		return
	}

	idx = T.tableSize.BucketIndex(hash)
	for n := head; n != nil; n = n.Next {
		if n.Hash == hash {
			node = n
			return
		}
	}

	return
}

// countPair - Returns the number of entries having both hash and value
func (T *Table[K, V]) countPair(hash uint32, value V) (count uint64) {
	head := T.head(hash)
	if head == nil {
		return
	}

	for n := head; n != nil; n = n.Next {
		if n.Hash == hash && T.valueEqual(n.Value, value) {
			count++
		}
	}

	return
}

// removeHead - Replaces the contents of a head having a chain with its first overflow node, which is dropped
func removeHead[K any, V any](head *model.Node[K, V]) {
	if head.Next == nil {
		head.Reset()
		return
	}

	next := head.Next
	head.SetFrom(next)
	head.Next = next.Next
}
