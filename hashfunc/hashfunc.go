package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
	"hash/crc32"
)

// HashFunc - Interface that permits a user of the hash map to supply the hash function for its key type.
// Entries are addressed by the 32-bit value alone, two keys giving the same value are treated as the same key
// for lookups and removal, so the function should spread keys as evenly as possible.
type HashFunc[K any] interface {
	// Hash - Given key it returns a 32-bit hash value. The function has to be pure, the same key must
	// always give the same value.
	Hash(key K) uint32
}

// Func - Adapts an ordinary function to the HashFunc interface
type Func[K any] func(key K) uint32

// Hash - Calls F(key)
func (F Func[K]) Hash(key K) uint32 {
	return F(key)
}

// Identity - Hashes integer keys to themselves, truncated to 32 bits
type Identity[K constraints.Integer] struct{}

// Hash - Returns key as a uint32
func (Identity[K]) Hash(key K) uint32 {
	return uint32(key)
}

// String - Hashes string keys using xxhash, folding the 64-bit sum into 32 bits
type String struct{}

// Hash - Returns the folded xxhash sum of key
func (String) Hash(key string) uint32 {
	return fold(xxhash.Sum64String(key))
}

// Bytes - Hashes byte slice keys using crc32.ChecksumIEEE
type Bytes struct{}

// Hash - Returns the IEEE crc32 checksum of key
func (Bytes) Hash(key []byte) uint32 {
	return crc32.ChecksumIEEE(key)
}

// fold - Mixes the upper half of h into the lower half
func fold(h uint64) uint32 {
	return uint32(h) ^ uint32(h>>32)
}
