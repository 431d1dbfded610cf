package hash

import (
	"github.com/gostonefire/chainedhashmap/internal/utils"
	"math"
)

// TableSize - Holds the bucket array dimensions for a separate chaining table.
// The number of buckets is always a prime number to spread weak hash values over all buckets, and the
// max size is the number of entries the table may hold before it has to grow.
type TableSize struct {
	capacity   uint64
	maxSize    uint64
	loadFactor float32
}

// NewTableSize - Returns a TableSize sized to hold targetMax entries at the given load factor.
//   - targetMax is the number of entries the table should accept before growing
//   - loadFactor is the fraction of the buckets allowed to be filled, it has to be in the range (0, 1]
//
// The capacity is calculated as NextPrime(ceil(targetMax / loadFactor)) and max size as floor(capacity * loadFactor).
func NewTableSize(targetMax uint64, loadFactor float32) (tableSize TableSize) {
	buckets := uint64(math.Ceil(float64(targetMax) / float64(loadFactor)))
	capacity := utils.NextPrime(buckets)

	tableSize = TableSize{
		capacity:   capacity,
		maxSize:    uint64(math.Floor(float64(capacity) * float64(loadFactor))),
		loadFactor: loadFactor,
	}

	return
}

// Capacity - Returns the number of buckets
func (T TableSize) Capacity() uint64 {
	return T.capacity
}

// MaxSize - Returns the number of entries that fits before the table has to grow
func (T TableSize) MaxSize() uint64 {
	return T.maxSize
}

// LoadFactor - Returns the load factor the size was calculated with
func (T TableSize) LoadFactor() float32 {
	return T.loadFactor
}

// BucketIndex - Given a hash value it returns the bucket it belongs to, between 0 and capacity - 1.
// Must not be called on a zero TableSize.
func (T TableSize) BucketIndex(hash uint32) uint64 {
	return uint64(hash) % T.capacity
}
