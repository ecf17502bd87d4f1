package HashTable

// isPrime by trial division over 2, 3 and 6k±1.
func isPrime(n uint) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// nextPrime is the smallest prime >= n. ok is false if there's none below the uint limit.
func nextPrime(n uint) (p uint, ok bool) {
	for p = n; !isPrime(p); p++ {
		if p == ^uint(0) {
			return 0, false
		}
	}
	return p, true
}
