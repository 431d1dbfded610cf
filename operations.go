package chainedhashmap

// Insert - Adds an entry. No check is made for an existing entry with the same key, use Contains first if
// keys must be unique.
//   - key is the key of the entry
//   - value is the value of the entry
//
// It returns:
//   - iterator pointing at the new entry
func (H *HashMap[K, V]) Insert(key K, value V) Iterator[K, V] {
	return H.InsertHashed(H.hashFunc.Hash(key), key, value)
}

// InsertHashed - Same as Insert but with the hash of key already computed by the caller
func (H *HashMap[K, V]) InsertHashed(hash uint32, key K, value V) Iterator[K, V] {
	return Iterator[K, V]{it: H.table.Insert(hash, key, value)}
}

// Find - Returns an iterator to the first entry for key, or the end iterator
func (H *HashMap[K, V]) Find(key K) Iterator[K, V] {
	return H.FindHashed(H.hashFunc.Hash(key))
}

// FindHashed - Returns an iterator to the first entry having hash, or the end iterator
func (H *HashMap[K, V]) FindHashed(hash uint32) Iterator[K, V] {
	return Iterator[K, V]{it: H.table.Find(hash)}
}

// At - Returns a pointer to the value stored for key. If key is missing an entry holding the default value
// is inserted first, so unlike Value this may grow the map.
func (H *HashMap[K, V]) At(key K) *V {
	hash := H.hashFunc.Hash(key)
	if node := H.table.GetNodeByHash(hash); node != nil {
		return &node.Value
	}

	return H.table.Insert(hash, key, H.defaultValue).ValuePtr()
}

// Value - Returns the value stored for key, or the default value. The map is never changed.
func (H *HashMap[K, V]) Value(key K) V {
	return H.table.Get(H.hashFunc.Hash(key), H.defaultValue)
}

// ValueOr - Returns the value stored for key, or def
func (H *HashMap[K, V]) ValueOr(key K, def V) V {
	return H.table.Get(H.hashFunc.Hash(key), def)
}

// Key - Returns the key of the first entry found holding value, or the default key.
// All entries may have to be visited.
func (H *HashMap[K, V]) Key(value V) K {
	return H.KeyOr(value, H.defaultKey)
}

// KeyOr - Returns the key of the first entry found holding value, or def
func (H *HashMap[K, V]) KeyOr(value V, def K) K {
	node := H.table.GetNodeByValue(value)
	if node == nil {
		return def
	}

	return node.Key
}

// Contains - Returns true if there is an entry for key
func (H *HashMap[K, V]) Contains(key K) bool {
	return H.table.Contains(H.hashFunc.Hash(key))
}

// ContainsValue - Returns true if there is an entry for key holding value
func (H *HashMap[K, V]) ContainsValue(key K, value V) bool {
	return H.table.ContainsValue(H.hashFunc.Hash(key), value)
}

// Count - Returns the number of entries for key
func (H *HashMap[K, V]) Count(key K) uint64 {
	return H.table.Count(H.hashFunc.Hash(key))
}

// Remove - Removes every entry for key and returns how many were removed
func (H *HashMap[K, V]) Remove(key K) uint64 {
	return H.RemoveHashed(H.hashFunc.Hash(key))
}

// RemoveHashed - Removes every entry having hash and returns how many were removed
func (H *HashMap[K, V]) RemoveHashed(hash uint32) uint64 {
	return H.table.Remove(hash)
}

// RemoveAt - Removes the entry iterator points at and returns an iterator to the entry that followed it
func (H *HashMap[K, V]) RemoveAt(iterator Iterator[K, V]) Iterator[K, V] {
	return Iterator[K, V]{it: H.table.RemoveAt(iterator.it)}
}

// Take - Removes the first entry for key and returns its value, or the default value if there is none
func (H *HashMap[K, V]) Take(key K) V {
	return H.table.Take(H.hashFunc.Hash(key), H.defaultValue)
}

// TakeOr - Removes the first entry for key and returns its value, or def if there is none
func (H *HashMap[K, V]) TakeOr(key K, def V) V {
	return H.table.Take(H.hashFunc.Hash(key), def)
}
