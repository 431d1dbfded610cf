package table

import (
	"fmt"
	"github.com/gostonefire/chainedhashmap/internal/conf"
	"github.com/gostonefire/chainedhashmap/internal/hash"
	"github.com/gostonefire/chainedhashmap/internal/model"
	"github.com/gostonefire/chainedhashmap/internal/overflow"
	"go.uber.org/zap"
	"reflect"
)

// Table - Represents a separate chaining hash table.
// Every bucket head lives directly in the bucket array, colliding entries are linked in single linked lists
// behind the head. Entries are addressed by their 32-bit hash, keys are carried along but never compared.
// The table is not safe for concurrent use.
type Table[K any, V any] struct {
	buckets    []model.Node[K, V]
	size       uint64
	tableSize  hash.TableSize
	loadFactor float32
	valueEqual func(a, b V) bool
	logger     *zap.Logger
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - HeadRecords is the number of entries stored directly in the bucket array
//   - OverflowRecords is the number of entries that has ended up in overflow chains
//   - LongestChain is the number of entries in the most populated bucket
//   - BucketDistribution is the number of entries stored in each bucket
type Stat struct {
	Records            int64
	HeadRecords        int64
	OverflowRecords    int64
	LongestChain       int64
	BucketDistribution []int64
}

// New - Returns a pointer to a new uninitialised Table.
//   - valueEqual is used wherever values are compared, if nil reflect.DeepEqual is used
//   - logger receives debug output on structural changes, if nil a no-op logger is used
func New[K any, V any](valueEqual func(a, b V) bool, logger *zap.Logger) *Table[K, V] {
	if valueEqual == nil {
		valueEqual = func(a, b V) bool { return reflect.DeepEqual(a, b) }
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Table[K, V]{valueEqual: valueEqual, logger: logger}
}

// Initialise - Allocates the bucket array sized to hold targetMax entries at the given load factor.
//   - targetMax is the number of entries to fit before the table grows, it must be higher than 0 (zero)
//   - loadFactor is the fraction of buckets allowed to be used, it must be in the range (0, 1]
//
// It returns:
//   - err is of type AlreadyInitialised if the table has a bucket array already, or InvalidArgument for bad input
func (T *Table[K, V]) Initialise(targetMax uint64, loadFactor float32) (err error) {
	if T.IsInitialised() {
		T.logger.Warn("initialise called on initialised table",
			zap.Uint64("capacity", T.tableSize.Capacity()),
			zap.Uint64("size", T.size))
		err = AlreadyInitialised{}
		return
	}
	if targetMax == 0 {
		err = InvalidArgument{msg: "target max size must be a positive value higher than 0 (zero)"}
		return
	}
	if !(loadFactor > conf.MinLoadFactor && loadFactor <= conf.MaxLoadFactor) {
		err = InvalidArgument{msg: fmt.Sprintf("load factor must be in range (%g, %g], got %g", conf.MinLoadFactor, conf.MaxLoadFactor, loadFactor)}
		return
	}

	T.tableSize = hash.NewTableSize(targetMax, loadFactor)
	T.loadFactor = loadFactor
	T.buckets = make([]model.Node[K, V], T.tableSize.Capacity())
	T.size = 0

	T.logger.Debug("initialised table",
		zap.Uint64("capacity", T.tableSize.Capacity()),
		zap.Uint64("maxSize", T.tableSize.MaxSize()),
		zap.Float32("loadFactor", loadFactor))

	return
}

// IsInitialised - Returns true if the table has a bucket array
func (T *Table[K, V]) IsInitialised() bool {
	return T.tableSize.Capacity() != 0
}

// ValueEqual - Returns the function used to compare values
func (T *Table[K, V]) ValueEqual() func(a, b V) bool {
	return T.valueEqual
}

// Size - Returns the number of entries stored
func (T *Table[K, V]) Size() uint64 {
	return T.size
}

// Capacity - Returns the number of buckets
func (T *Table[K, V]) Capacity() uint64 {
	return T.tableSize.Capacity()
}

// MaxSize - Returns the number of entries that fits before the table grows
func (T *Table[K, V]) MaxSize() uint64 {
	return T.tableSize.MaxSize()
}

// LoadFactor - Returns the load factor, conf.DefaultLoadFactor if the table never had one
func (T *Table[K, V]) LoadFactor() float32 {
	if T.loadFactor == 0 {
		return conf.DefaultLoadFactor
	}
	return T.loadFactor
}

// Resize - Grows the table to hold newMaxSize entries, a newMaxSize not bigger than the current max size is a no-op.
// Every entry is rehashed into a new bucket array which then replaces the old one. Iterators are invalidated.
func (T *Table[K, V]) Resize(newMaxSize uint64) {
	if newMaxSize <= T.tableSize.MaxSize() {
		return
	}

	oldCapacity := T.tableSize.Capacity()
	tableSize := hash.NewTableSize(newMaxSize, T.LoadFactor())
	buckets := make([]model.Node[K, V], tableSize.Capacity())
	tails := make([]*model.Node[K, V], tableSize.Capacity())

	for i := range T.buckets {
		head := &T.buckets[i]
		if !head.Occupied {
			continue
		}
		rehash(buckets, tails, tableSize, head)

		iter := overflow.NewRecords(head)
		for iter.HasNext() {
			rehash(buckets, tails, tableSize, iter.Next())
		}
	}

	T.buckets = buckets
	T.tableSize = tableSize
	T.loadFactor = tableSize.LoadFactor()

	T.logger.Debug("resized table",
		zap.Uint64("oldCapacity", oldCapacity),
		zap.Uint64("capacity", tableSize.Capacity()),
		zap.Uint64("maxSize", tableSize.MaxSize()),
		zap.Uint64("size", T.size))
}

// Reserve - Makes room for n entries without further growth
func (T *Table[K, V]) Reserve(n uint64) {
	T.Resize(n)
}

// Copy - Replaces the contents of the table with a deep copy of other.
// Every chain is copied so the two tables share no nodes afterwards.
func (T *Table[K, V]) Copy(other *Table[K, V]) {
	if T == other {
		return
	}

	var buckets []model.Node[K, V]
	if other.buckets != nil {
		buckets = make([]model.Node[K, V], len(other.buckets))
		for i := range other.buckets {
			buckets[i] = other.buckets[i].CloneChain()
		}
	}

	T.buckets = buckets
	T.size = other.size
	T.tableSize = other.tableSize
	T.loadFactor = other.loadFactor
	T.valueEqual = other.valueEqual
}

// Move - Takes over the bucket array of other and leaves other uninitialised
func (T *Table[K, V]) Move(other *Table[K, V]) {
	if T == other {
		return
	}

	T.buckets = other.buckets
	T.size = other.size
	T.tableSize = other.tableSize
	T.loadFactor = other.loadFactor
	T.valueEqual = other.valueEqual

	other.buckets = nil
	other.size = 0
	other.tableSize = hash.TableSize{}
}

// Swap - Exchanges contents with other, the value equality function travels with the contents
func (T *Table[K, V]) Swap(other *Table[K, V]) {
	T.valueEqual, other.valueEqual = other.valueEqual, T.valueEqual
	T.buckets, other.buckets = other.buckets, T.buckets
	T.size, other.size = other.size, T.size
	T.tableSize, other.tableSize = other.tableSize, T.tableSize
	T.loadFactor, other.loadFactor = other.loadFactor, T.loadFactor
}

// Clear - Empties every bucket, capacity and max size are kept
func (T *Table[K, V]) Clear() {
	for i := range T.buckets {
		T.buckets[i].Reset()
	}
	T.size = 0

	T.logger.Debug("cleared table", zap.Uint64("capacity", T.tableSize.Capacity()))
}

// Free - Releases the bucket array and returns the table to the uninitialised state.
// The load factor is kept for a later initialisation on insert.
func (T *Table[K, V]) Free() {
	T.buckets = nil
	T.size = 0
	T.tableSize = hash.TableSize{}

	T.logger.Debug("freed table")
}

// Stat - Walks through all buckets and produce a Stat struct with information.
//   - includeDistribution set to true will include a slice with number of entries per bucket, false will set Stat.BucketDistribution to nil.
func (T *Table[K, V]) Stat(includeDistribution bool) (stat Stat) {
	if includeDistribution {
		stat.BucketDistribution = make([]int64, len(T.buckets))
	}

	for i := range T.buckets {
		head := &T.buckets[i]
		if !head.Occupied {
			continue
		}

		chain := int64(1)
		stat.HeadRecords++
		iter := overflow.NewRecords(head)
		for iter.HasNext() {
			iter.Next()
			stat.OverflowRecords++
			chain++
		}

		stat.Records += chain
		if chain > stat.LongestChain {
			stat.LongestChain = chain
		}
		if includeDistribution {
			stat.BucketDistribution[i] = chain
		}
	}

	return
}

// rehash - Puts a copy of node into buckets, either in an empty head or at the tail of the chain
func rehash[K any, V any](buckets []model.Node[K, V], tails []*model.Node[K, V], tableSize hash.TableSize, node *model.Node[K, V]) {
	idx := tableSize.BucketIndex(node.Hash)
	head := &buckets[idx]
	if !head.Occupied {
		head.SetFrom(node)
		tails[idx] = head
		return
	}

	n := &model.Node[K, V]{}
	n.SetFrom(node)
	tails[idx].Next = n
	tails[idx] = n
}

// ensureCapacity - Makes sure there is room for one more entry, initialising an uninitialised table
func (T *Table[K, V]) ensureCapacity() {
	if !T.IsInitialised() {
		T.logger.Warn("insert into uninitialised table, initialising with defaults",
			zap.Uint64("targetMax", conf.DefaultInitialSize),
			zap.Float32("loadFactor", T.LoadFactor()))
		if err := T.Initialise(conf.DefaultInitialSize, T.LoadFactor()); err != nil {
			T.logger.Error("stored load factor rejected, initialising with default load factor",
				zap.Float32("loadFactor", T.LoadFactor()), zap.Error(err))
			T.loadFactor = conf.DefaultLoadFactor
			// Both arguments are package defaults within the accepted range.
			_ = T.Initialise(conf.DefaultInitialSize, conf.DefaultLoadFactor)
		}
		return
	}

	if T.size >= T.tableSize.MaxSize() {
		maxSize := T.tableSize.MaxSize()
		newMaxSize := maxSize * conf.GrowthFactor
		if newMaxSize <= maxSize {
			newMaxSize = maxSize + 1
		}
		T.Resize(newMaxSize)
	}
}
