package mrep

// binomial computes the binomial coefficient C(n, k) as a float64. The
// multiplicative form stays exact for every coefficient the implicitization
// sizes here can ask for, and keeps concurrent callers safe without a cache.
func binomial(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}

	if k > n-k {
		k = n - k
	}

	r := 1.0
	for d := 1; d <= k; d++ {
		r *= float64(n-k+d) / float64(d)
	}

	return r
}
