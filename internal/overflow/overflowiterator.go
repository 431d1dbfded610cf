package overflow

import "github.com/gostonefire/chainedhashmap/internal/model"

// Records - Is used to iterate over the overflow nodes of a bucket one by one.
type Records[K any, V any] struct {
	next *model.Node[K, V]
}

// NewRecords - Returns a pointer to a new Records struct walking the overflow chain behind head.
// The head itself is not part of the iteration.
func NewRecords[K any, V any](head *model.Node[K, V]) *Records[K, V] {
	records := &Records[K, V]{}
	if head != nil {
		records.next = head.Next
	}

	return records
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (O *Records[K, V]) HasNext() bool {
	return O.next != nil
}

// Next - Returns the next overflow node, or nil if the chain is exhausted.
func (O *Records[K, V]) Next() (node *model.Node[K, V]) {
	if O.next == nil {
		return
	}

	node = O.next
	O.next = node.Next

	return
}
