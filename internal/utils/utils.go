package utils

// IsPrime - Returns true if n is a prime number.
// Trial division over 6k +/- 1 candidates, table sizes stay well within the range where that is fast enough.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime number that is equal to or bigger than n.
// A value of 0 or 1 gives 2.
func NextPrime(n uint64) (prime uint64) {
	if n <= 2 {
		return 2
	}

	prime = n
	if prime%2 == 0 {
		if IsPrime(prime) {
			return
		}
		prime++
	}

	for !IsPrime(prime) {
		prime += 2
	}

	return
}
