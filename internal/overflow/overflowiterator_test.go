//go:build unit

package overflow

import (
	"github.com/gostonefire/chainedhashmap/internal/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRecords(t *testing.T) {
	t.Run("walks overflow chain excluding head", func(t *testing.T) {
		// Prepare
		head := &model.Node[string, int]{Key: "a", Value: 1, Occupied: true}
		head.Next = &model.Node[string, int]{Key: "b", Value: 2, Occupied: true}
		head.Next.Next = &model.Node[string, int]{Key: "c", Value: 3, Occupied: true}

		// Execute
		var keys []string
		iter := NewRecords(head)
		for iter.HasNext() {
			keys = append(keys, iter.Next().Key)
		}

		// Check
		assert.Equal(t, []string{"b", "c"}, keys, "overflow keys in chain order")
		assert.Nil(t, iter.Next(), "exhausted iterator returns nil")
	})

	t.Run("head without chain has nothing to iterate", func(t *testing.T) {
		// Prepare
		head := &model.Node[string, int]{Key: "a", Value: 1, Occupied: true}

		// Execute
		iter := NewRecords(head)

		// Check
		assert.False(t, iter.HasNext(), "no overflow")
		assert.False(t, NewRecords[string, int](nil).HasNext(), "nil head has no overflow")
	})
}
