//go:build unit

package chainedhashmap

import (
	"fmt"
	"github.com/gostonefire/chainedhashmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestHashMap_Insert(t *testing.T) {
	t.Run("inserted entries are found with their values", func(t *testing.T) {
		// Prepare
		hm, err := New[string, int](hashfunc.String{}, Config{InitialSize: 10, LoadFactor: 0.8})
		require.NoError(t, err, "creates hash map")

		// Execute
		for i := 0; i < 6; i++ {
			hm.Insert(fmt.Sprintf("key-%d", i), i)
		}

		// Check
		assert.Equal(t, uint64(6), hm.Size(), "six entries")
		for i := 0; i < 6; i++ {
			it := hm.Find(fmt.Sprintf("key-%d", i))
			assert.False(t, it.IsEnd(), "key-%d found", i)
			assert.Equal(t, i, it.Value(), "key-%d value", i)
		}
	})

	t.Run("entries survive growth", func(t *testing.T) {
		// Prepare
		hm := newIntMap(t, 4, 0.75)

		// Execute
		for i := 0; i < 1000; i++ {
			hm.Insert(i, fmt.Sprint(i))
		}

		// Check
		assert.Equal(t, uint64(1000), hm.Size(), "all entries")
		assert.LessOrEqual(t, hm.Size(), hm.MaxSize(), "size within max size")
		for i := 0; i < 1000; i++ {
			assert.Equal(t, fmt.Sprint(i), hm.Value(i), "value of %d", i)
		}
	})

	t.Run("pre hashed entry points agree with key based ones", func(t *testing.T) {
		// Prepare
		hm := newIntMap(t, 10, 0.8)

		// Execute
		hm.InsertHashed(5, 5, "five")

		// Check
		assert.Equal(t, "five", hm.FindHashed(5).Value(), "found by hash")
		assert.Equal(t, "five", hm.Value(5), "found by key")
		assert.Equal(t, uint64(1), hm.RemoveHashed(5), "removed by hash")
	})
}

func TestHashMap_At(t *testing.T) {
	t.Run("missing key inserts default value once", func(t *testing.T) {
		// Prepare
		hm := newIntMap(t, 10, 0.8)
		hm.SetDefaultValue("default")

		// Execute
		first := hm.At(3)
		sizeAfterFirst := hm.Size()
		second := hm.At(3)

		// Check
		assert.Equal(t, "default", *first, "default inserted")
		assert.Equal(t, uint64(1), sizeAfterFirst, "size increased by one")
		assert.Equal(t, uint64(1), hm.Size(), "repeat access does not insert")
		assert.Same(t, first, second, "same stored value")
	})

	t.Run("writes through the returned pointer", func(t *testing.T) {
		// Prepare
		counts, err := New[string, int](hashfunc.String{}, DefaultConfig())
		require.NoError(t, err, "creates hash map")

		// Execute
		for _, word := range []string{"a", "b", "a", "c", "a", "b"} {
			*counts.At(word)++
		}

		// Check
		assert.Equal(t, 3, counts.Value("a"), "a counted")
		assert.Equal(t, 2, counts.Value("b"), "b counted")
		assert.Equal(t, 1, counts.Value("c"), "c counted")
		assert.Equal(t, uint64(3), counts.Size(), "three keys")
	})
}

func TestHashMap_Remove(t *testing.T) {
	t.Run("colliding entries are both removed", func(t *testing.T) {
		// Prepare
		hm := newIntMap(t, 10, 0.8)
		hm.Insert(1, "a")
		hm.Insert(14, "b")
		hm.Insert(1, "c")
		hm.Insert(2, "d")

		// Execute
		removed := hm.Remove(1)

		// Check
		assert.Equal(t, uint64(2), removed, "both entries for key removed")
		assert.Equal(t, uint64(2), hm.Size(), "size dropped by two")
		assert.Equal(t, "b", hm.Value(14), "colliding key kept")
	})

	t.Run("shared hash removes every entry", func(t *testing.T) {
		// Prepare
		byLength := hashfunc.Func[string](func(key string) uint32 { return uint32(len(key)) })
		hm, err := New[string, int](byLength, Config{InitialSize: 10, LoadFactor: 0.8})
		require.NoError(t, err, "creates hash map")
		hm.Insert("ab", 1)
		hm.Insert("cd", 2)

		// Execute
		removed := hm.Remove("xy")

		// Check
		assert.Equal(t, uint64(2), removed, "two removed")
		assert.True(t, hm.IsEmpty(), "size dropped by two")
	})

	t.Run("absent key removes nothing", func(t *testing.T) {
		// Prepare
		hm := newIntMap(t, 10, 0.8)
		hm.Insert(1, "a")

		// Execute
		removed := hm.Remove(2)

		// Check
		assert.Equal(t, uint64(0), removed, "nothing removed")
		assert.Equal(t, uint64(1), hm.Size(), "size unchanged")
	})

	t.Run("remove at iterator while iterating", func(t *testing.T) {
		// Prepare
		hm := newIntMap(t, 10, 0.8)
		for i := 0; i < 20; i++ {
			hm.Insert(i, "v")
		}

		// Execute
		for it := hm.Begin(); !it.IsEnd(); {
			if it.Key()%2 == 0 {
				it = hm.RemoveAt(it)
			} else {
				it.Next()
			}
		}

		// Check
		assert.Equal(t, uint64(10), hm.Size(), "even keys removed")
		for i := 0; i < 20; i++ {
			assert.Equal(t, i%2 == 1, hm.Contains(i), "contains %d", i)
		}
	})
}

func TestHashMap_Take(t *testing.T) {
	t.Run("take returns value then default", func(t *testing.T) {
		// Prepare
		hm := newIntMap(t, 10, 0.8)
		hm.Insert(1, "a")

		// Execute
		first := hm.TakeOr(1, "gone")
		second := hm.TakeOr(1, "gone")

		// Check
		assert.Equal(t, "a", first, "value taken")
		assert.Equal(t, "gone", second, "default on second take")
		assert.True(t, hm.IsEmpty(), "removed once")
	})
}

func TestHashMap_Lookup(t *testing.T) {
	t.Run("reverse lookup, contains and count", func(t *testing.T) {
		// Prepare
		hm := newIntMap(t, 10, 0.8)
		hm.Insert(1, "a")
		hm.Insert(2, "b")
		hm.Insert(2, "c")

		// Execute and Check
		assert.Equal(t, 2, hm.Key("b"), "key of value")
		assert.True(t, hm.Contains(2), "contains key")
		assert.True(t, hm.ContainsValue(2, "c"), "contains pair")
		assert.False(t, hm.ContainsValue(1, "c"), "pair missing")
		assert.Equal(t, uint64(2), hm.Count(2), "duplicates counted")
		assert.Equal(t, uint64(0), hm.Count(3), "missing key count")
	})

	t.Run("custom value equality", func(t *testing.T) {
		// Prepare
		hm, err := NewWithValueEqual[int, []string](hashfunc.Identity[int]{}, DefaultConfig(), func(a, b []string) bool {
			return len(a) == len(b)
		})
		require.NoError(t, err, "creates hash map")
		hm.Insert(1, []string{"x"})

		// Execute and Check
		assert.Equal(t, 1, hm.Key([]string{"y"}), "matched by custom equality")
	})
}

func TestHashMap_Equal(t *testing.T) {
	t.Run("equality holds in both directions", func(t *testing.T) {
		// Prepare
		a := newIntMap(t, 10, 0.8)
		b := newIntMap(t, 50, 0.5)
		a.Insert(1, "a")
		b.Insert(1, "a")
		b.Insert(2, "b")

		// Execute and Check
		assert.False(t, a.Equal(b), "a not equal to superset")
		assert.False(t, b.Equal(a), "superset not equal to a")

		a.Insert(2, "b")
		assert.True(t, a.Equal(b), "equal after insert")
		assert.True(t, b.Equal(a), "equal both ways")
	})
}
