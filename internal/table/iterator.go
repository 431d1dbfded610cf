package table

import "github.com/gostonefire/chainedhashmap/internal/model"

// Iterator - Is a cursor over the entries of a Table, bucket by bucket and along each chain.
// An iterator with no node is the end iterator. Any insert, remove or resize on the table invalidates all
// iterators except the one returned by that call.
type Iterator[K any, V any] struct {
	table  *Table[K, V]
	node   *model.Node[K, V]
	bucket uint64
}

// Begin - Returns an iterator to the first entry, or the end iterator for an empty table
func (T *Table[K, V]) Begin() Iterator[K, V] {
	return T.seekForward(0)
}

// End - Returns the end iterator
func (T *Table[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{table: T}
}

// Last - Returns an iterator to the last entry, or the end iterator for an empty table
func (T *Table[K, V]) Last() Iterator[K, V] {
	return T.seekBackward(uint64(len(T.buckets)))
}

// Range - Calls fn for every entry until fn returns false
func (T *Table[K, V]) Range(fn func(key K, value V) bool) {
	for i := range T.buckets {
		head := &T.buckets[i]
		if !head.Occupied {
			continue
		}
		for n := head; n != nil; n = n.Next {
			if !fn(n.Key, n.Value) {
				return
			}
		}
	}
}

// Next - Steps to the following entry, or to the end iterator after the last entry.
// Stepping the end iterator is a no-op.
func (I *Iterator[K, V]) Next() {
	if I.node == nil {
		return
	}
	if I.node.Next != nil {
		I.node = I.node.Next
		return
	}

	*I = I.table.seekForward(I.bucket + 1)
}

// Prev - Steps to the preceding entry. Stepping back from the end iterator gives the last entry,
// stepping back from the first entry gives the end iterator.
// There are no back links, so the predecessor is found by walking the bucket chain from its head.
func (I *Iterator[K, V]) Prev() {
	if I.table == nil {
		return
	}
	if I.node == nil {
		*I = I.table.Last()
		return
	}

	head := &I.table.buckets[I.bucket]
	if I.node == head {
		*I = I.table.seekBackward(I.bucket)
		return
	}

	prev := head
	for prev.Next != nil && prev.Next != I.node {
		prev = prev.Next
	}
	I.node = prev
}

// IsEnd - Returns true for the end iterator
func (I Iterator[K, V]) IsEnd() bool {
	return I.node == nil
}

// Equal - Returns true if both iterators point at the same node, the end iterators of all tables are equal
func (I Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return I.node == other.node
}

// Key - Returns the key of the entry, or the zero key for the end iterator
func (I Iterator[K, V]) Key() (key K) {
	if I.node == nil {
		return
	}
	return I.node.Key
}

// Value - Returns the value of the entry, or the zero value for the end iterator
func (I Iterator[K, V]) Value() (value V) {
	if I.node == nil {
		return
	}
	return I.node.Value
}

// ValuePtr - Returns a pointer to the stored value, nil for the end iterator
func (I Iterator[K, V]) ValuePtr() *V {
	if I.node == nil {
		return nil
	}
	return &I.node.Value
}

// Hash - Returns the cached hash of the entry, 0 for the end iterator
func (I Iterator[K, V]) Hash() uint32 {
	if I.node == nil {
		return 0
	}
	return I.node.Hash
}

// SetValue - Overwrites the value of the entry, a no-op on the end iterator
func (I Iterator[K, V]) SetValue(value V) {
	if I.node == nil {
		return
	}
	I.node.Value = value
}

// seekForward - Returns an iterator to the first occupied head at or after bucket from
func (T *Table[K, V]) seekForward(from uint64) Iterator[K, V] {
	for i := from; i < uint64(len(T.buckets)); i++ {
		if T.buckets[i].Occupied {
			return Iterator[K, V]{table: T, node: &T.buckets[i], bucket: i}
		}
	}

	return T.End()
}

// seekBackward - Returns an iterator to the chain tail of the last occupied bucket before bucket before
func (T *Table[K, V]) seekBackward(before uint64) Iterator[K, V] {
	for i := before; i > 0; i-- {
		head := &T.buckets[i-1]
		if !head.Occupied {
			continue
		}
		tail := head
		for tail.Next != nil {
			tail = tail.Next
		}
		return Iterator[K, V]{table: T, node: tail, bucket: i - 1}
	}

	return T.End()
}
