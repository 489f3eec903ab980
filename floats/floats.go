// Package floats provides a small set of helper routines for dealing with
// slices of float64, used by the body store's divergence check and the
// diagnostics package's conservation-law accumulation.
package floats

import "math"

// HasNaN returns true if the slice s has any values that are NaN and false
// otherwise.
func HasNaN(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// HasInf returns true if the slice s has any values that are an infinity
// and false otherwise.
func HasInf(s []float64) bool {
	for _, v := range s {
		if math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// Sum returns the sum of the elements of the slice.
func Sum(s []float64) (sum float64) {
	for _, val := range s {
		sum += val
	}
	return sum
}

// Norm returns the L norm of the slice s, defined as
// (sum_{i=1}^N s[i]^L)^{1/L}.
// L = math.Inf(1) gives the maximum absolute value.
func Norm(s []float64, L float64) (norm float64) {
	if len(s) == 0 {
		return 0
	}
	if L == 2 {
		twoNorm := math.Abs(s[0])
		for i := 1; i < len(s); i++ {
			twoNorm = math.Hypot(twoNorm, s[i])
		}
		return twoNorm
	}
	if L == 1 {
		for _, val := range s {
			norm += math.Abs(val)
		}
		return norm
	}
	if math.IsInf(L, 1) {
		for _, val := range s {
			norm = math.Max(norm, math.Abs(val))
		}
		return norm
	}
	for _, val := range s {
		norm += math.Pow(math.Abs(val), L)
	}
	return math.Pow(norm, 1/L)
}
