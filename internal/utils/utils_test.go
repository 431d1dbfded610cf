//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsPrime(t *testing.T) {
	t.Run("recognizes primes", func(t *testing.T) {
		// Prepare
		primes := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 97, 7919, 104729, 1000003}

		// Execute and Check
		for _, p := range primes {
			assert.True(t, IsPrime(p), "%d is prime", p)
		}
	})

	t.Run("rejects non primes", func(t *testing.T) {
		// Prepare
		nonPrimes := []uint64{0, 1, 4, 6, 9, 15, 25, 49, 91, 7917, 1000001}

		// Execute and Check
		for _, n := range nonPrimes {
			assert.False(t, IsPrime(n), "%d is not prime", n)
		}
	})
}

func TestNextPrime(t *testing.T) {
	t.Run("rounds up to nearest prime", func(t *testing.T) {
		// Prepare
		input := []uint64{0, 1, 2, 3, 4, 8, 13, 14, 20, 24, 90, 1000, 7908}
		expected := []uint64{2, 2, 2, 3, 5, 11, 13, 17, 23, 29, 97, 1009, 7919}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			assert.Equal(t, expected[i], NextPrime(input[i]), "next prime of %d", input[i])
		}
	})
}
