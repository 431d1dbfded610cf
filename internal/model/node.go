package model

// Node - Represents one slot in a bucket table, either a bucket head living directly in the bucket array
// or an overflow node linked in behind a head.
// An empty node never has a next node, and a node having a next node is always occupied.
type Node[K any, V any] struct {
	Key      K
	Value    V
	Hash     uint32
	Occupied bool
	Next     *Node[K, V]
}

// Set - Overwrites the node with a new entry and drops any chain linked behind it.
//   - key is the key to store
//   - value is the value to store
//   - hash is the hash value of key as given by the hash function of the table
func (N *Node[K, V]) Set(key K, value V, hash uint32) {
	N.Key = key
	N.Value = value
	N.Hash = hash
	N.Occupied = true
	N.Next = nil
}

// SetFrom - Copies the entry of other into this node without taking over the chain of other.
// The chain already linked behind this node is left as is.
func (N *Node[K, V]) SetFrom(other *Node[K, V]) {
	N.Key = other.Key
	N.Value = other.Value
	N.Hash = other.Hash
	N.Occupied = other.Occupied
}

// Reset - Returns the node to the empty state, the chain linked behind it is released with it.
func (N *Node[K, V]) Reset() {
	var key K
	var value V
	N.Key = key
	N.Value = value
	N.Hash = 0
	N.Occupied = false
	N.Next = nil
}

// CloneChain - Returns a deep copy of this node together with copies of every node linked behind it.
// The chain is walked iteratively so chain length never affects stack depth.
func (N *Node[K, V]) CloneChain() (clone Node[K, V]) {
	clone = *N
	tail := &clone
	for src := N.Next; src != nil; src = src.Next {
		n := *src
		tail.Next = &n
		tail = tail.Next
	}
	tail.Next = nil

	return
}

// ChainLength - Returns the number of occupied nodes from this node and onwards
func (N *Node[K, V]) ChainLength() (length int) {
	if !N.Occupied {
		return
	}
	for n := N; n != nil; n = n.Next {
		length++
	}

	return
}
