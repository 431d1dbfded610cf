package conf

// DefaultInitialSize - Number of entries a table is sized for when nothing else is given,
// it is also what an uninitialised table is initialised to on its first insert
const DefaultInitialSize uint64 = 16

// DefaultLoadFactor - Fraction of the bucket array that may be filled before the table grows
const DefaultLoadFactor float32 = 0.75

// MinLoadFactor - Exclusive lower bound for a load factor
const MinLoadFactor float32 = 0

// MaxLoadFactor - Inclusive upper bound for a load factor
const MaxLoadFactor float32 = 1

// GrowthFactor - Multiplier applied to max size when a full table grows on insert
const GrowthFactor uint64 = 2
