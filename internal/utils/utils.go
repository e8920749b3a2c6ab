package utils

// IsPrime - Returns true if n is a prime number.
// Trial division by odd factors up to the square root of n.
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n < 2 || n%2 == 0 {
		return false
	}

	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime at or above n, where an even n is first advanced to n+1.
// Hence NextPrime(2) is 3. Values below 1 are treated as 1.
func NextPrime(n int) (prime int) {
	if n < 1 {
		n = 1
	}

	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	prime = n
	return
}
