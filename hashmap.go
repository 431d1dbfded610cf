package chainedhashmap

import (
	"github.com/gostonefire/chainedhashmap/hashfunc"
	"github.com/gostonefire/chainedhashmap/internal/table"
	"go.uber.org/zap"
)

// Stat - Statistics on the overall usage and distribution over buckets, see Table.Stat
type Stat = table.Stat

// HashMap - The main implementation struct, a separate chaining hash map from K to V.
// Keys are identified by their 32-bit hash only. Duplicate keys are permitted, Insert never replaces an entry.
// Lookups that miss return the map's default key or value rather than an error.
// A HashMap is not safe for concurrent use.
type HashMap[K any, V any] struct {
	table        *table.Table[K, V]
	hashFunc     hashfunc.HashFunc[K]
	defaultKey   K
	defaultValue V
	logger       *zap.Logger
}

// New - Returns a new hash map prepared to hold config.InitialSize entries before growing.
// Values are compared using reflect.DeepEqual, use NewWithValueEqual to supply a cheaper comparison.
//   - hashFunc is the hash function for the key type
//   - config is a Config struct, zero fields are given default values
//
// It returns:
//   - hashMap is a pointer to the new HashMap
//   - err is of type InvalidArgument if config holds an out of range load factor
func New[K any, V any](hashFunc hashfunc.HashFunc[K], config Config) (hashMap *HashMap[K, V], err error) {
	return NewWithValueEqual[K, V](hashFunc, config, nil)
}

// NewWithValueEqual - Same as New but with a custom function for comparing values, used by Key, ContainsValue and Equal.
func NewWithValueEqual[K any, V any](hashFunc hashfunc.HashFunc[K], config Config, valueEqual func(a, b V) bool) (hashMap *HashMap[K, V], err error) {
	config = config.withDefaults()

	t := table.New[K, V](valueEqual, config.Logger)
	err = t.Initialise(config.InitialSize, config.LoadFactor)
	if err != nil {
		return
	}

	hashMap = &HashMap[K, V]{
		table:    t,
		hashFunc: hashFunc,
		logger:   config.Logger,
	}

	return
}

// SetDefaultKey - Sets the key returned by Key when no entry holds the value asked for
func (H *HashMap[K, V]) SetDefaultKey(key K) {
	H.defaultKey = key
}

// SetDefaultValue - Sets the value returned by lookups that miss, and inserted by At for missing keys
func (H *HashMap[K, V]) SetDefaultValue(value V) {
	H.defaultValue = value
}

// DefaultKey - Returns the default key
func (H *HashMap[K, V]) DefaultKey() K {
	return H.defaultKey
}

// DefaultValue - Returns the default value
func (H *HashMap[K, V]) DefaultValue() V {
	return H.defaultValue
}

// Size - Returns the number of entries
func (H *HashMap[K, V]) Size() uint64 {
	return H.table.Size()
}

// IsEmpty - Returns true if there are no entries
func (H *HashMap[K, V]) IsEmpty() bool {
	return H.table.Size() == 0
}

// Capacity - Returns the number of buckets
func (H *HashMap[K, V]) Capacity() uint64 {
	return H.table.Capacity()
}

// MaxSize - Returns the number of entries that fits before the map grows
func (H *HashMap[K, V]) MaxSize() uint64 {
	return H.table.MaxSize()
}

// LoadFactor - Returns the load factor
func (H *HashMap[K, V]) LoadFactor() float32 {
	return H.table.LoadFactor()
}

// Reserve - Grows the map so n entries fit without further growth
func (H *HashMap[K, V]) Reserve(n uint64) {
	H.table.Reserve(n)
}

// Clear - Removes all entries, capacity is kept
func (H *HashMap[K, V]) Clear() {
	H.table.Clear()
}

// Free - Releases all memory held by the map. The map stays usable, the next insert sizes it again
// using default settings.
func (H *HashMap[K, V]) Free() {
	H.table.Free()
}

// Clone - Returns a deep copy of the map including its default key and value
func (H *HashMap[K, V]) Clone() *HashMap[K, V] {
	clone := &HashMap[K, V]{
		table:    table.New[K, V](H.table.ValueEqual(), H.logger),
		hashFunc: H.hashFunc,
		logger:   H.logger,
	}
	clone.Assign(H)

	return clone
}

// Assign - Replaces the contents and defaults of the map with a deep copy of other
func (H *HashMap[K, V]) Assign(other *HashMap[K, V]) {
	if H == other {
		return
	}

	H.table.Copy(other.table)
	H.hashFunc = other.hashFunc
	H.defaultKey = other.defaultKey
	H.defaultValue = other.defaultValue
}

// MoveFrom - Takes over the contents and defaults of other, leaving other empty and freed
func (H *HashMap[K, V]) MoveFrom(other *HashMap[K, V]) {
	if H == other {
		return
	}

	H.table.Move(other.table)
	H.hashFunc = other.hashFunc
	H.defaultKey = other.defaultKey
	H.defaultValue = other.defaultValue
}

// Swap - Exchanges contents, defaults and the value equality function with other
func (H *HashMap[K, V]) Swap(other *HashMap[K, V]) {
	H.table.Swap(other.table)
	H.hashFunc, other.hashFunc = other.hashFunc, H.hashFunc
	H.defaultKey, other.defaultKey = other.defaultKey, H.defaultKey
	H.defaultValue, other.defaultValue = other.defaultValue, H.defaultValue
}

// Equal - Returns true if both maps hold the same entries, in any order and at any capacity
func (H *HashMap[K, V]) Equal(other *HashMap[K, V]) bool {
	return H.table.Equal(other.table)
}

// Stat - Walks through all buckets and returns a Stat struct
//   - includeDistribution set to true will include a slice with number of entries per bucket
func (H *HashMap[K, V]) Stat(includeDistribution bool) Stat {
	return H.table.Stat(includeDistribution)
}
