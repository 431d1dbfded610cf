package chainedhashmap

import "github.com/gostonefire/chainedhashmap/internal/table"

// Iterator - Is a cursor over the entries of a HashMap. Entries come in bucket order, which is not stable
// across growth. Any insert, remove or resize invalidates outstanding iterators except the one returned by
// that call.
type Iterator[K any, V any] struct {
	it table.Iterator[K, V]
}

// Next - Steps to the following entry, or to the end iterator after the last entry
func (I *Iterator[K, V]) Next() {
	I.it.Next()
}

// Prev - Steps to the preceding entry, from the end iterator that is the last entry
func (I *Iterator[K, V]) Prev() {
	I.it.Prev()
}

// IsEnd - Returns true for the end iterator
func (I Iterator[K, V]) IsEnd() bool {
	return I.it.IsEnd()
}

// Equal - Returns true if both iterators point at the same entry
func (I Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return I.it.Equal(other.it)
}

// Key - Returns the key of the entry
func (I Iterator[K, V]) Key() K {
	return I.it.Key()
}

// Value - Returns the value of the entry
func (I Iterator[K, V]) Value() V {
	return I.it.Value()
}

// Hash - Returns the stored hash of the entry
func (I Iterator[K, V]) Hash() uint32 {
	return I.it.Hash()
}

// ValuePtr - Returns a pointer to the stored value, nil for the end iterator
func (I Iterator[K, V]) ValuePtr() *V {
	return I.it.ValuePtr()
}

// SetValue - Overwrites the value of the entry
func (I Iterator[K, V]) SetValue(value V) {
	I.it.SetValue(value)
}

// Begin - Returns an iterator to the first entry, equal to End for an empty map
func (H *HashMap[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{it: H.table.Begin()}
}

// End - Returns the end iterator
func (H *HashMap[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{it: H.table.End()}
}

// Last - Returns an iterator to the last entry, equal to End for an empty map
func (H *HashMap[K, V]) Last() Iterator[K, V] {
	return Iterator[K, V]{it: H.table.Last()}
}

// Range - Calls fn for every entry until fn returns false
func (H *HashMap[K, V]) Range(fn func(key K, value V) bool) {
	H.table.Range(fn)
}
