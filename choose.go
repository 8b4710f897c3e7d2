package cubemoves

import (
	"fmt"
	"math"
	"math/bits"
)

// Choose returns the binomial coefficient C(n, k). It returns 0 when n < k,
// which lets ranking code treat out-of-range terms as empty.
// Negative arguments, and results that do not fit in an int, return
// ErrInvalidArgument.
func Choose(n, k int) (int, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("%w: choose(%d, %d)", ErrInvalidArgument, n, k)
	}
	c, ok := choose(n, k)
	if !ok {
		return 0, fmt.Errorf("%w: choose(%d, %d) overflows int", ErrInvalidArgument, n, k)
	}
	return c, nil
}

// choose computes C(n, k) for non-negative n and k. ok is false when the
// result exceeds math.MaxInt.
func choose(n, k int) (c int, ok bool) {
	if n < k {
		return 0, true
	}
	if k > n/2 {
		k = n - k
	}

	// Each partial product of i consecutive integers is divisible by i!,
	// so dividing after every multiply keeps the result exact. The multiply
	// is widened to 128 bits; partial results never exceed the final one.
	var result uint64 = 1
	var denom uint64 = 1
	for i := n; i > n-k; i-- {
		hi, lo := bits.Mul64(result, uint64(i))
		if hi >= denom {
			return 0, false
		}
		result, _ = bits.Div64(hi, lo, denom)
		if result > math.MaxInt {
			return 0, false
		}
		denom++
	}
	return int(result), true
}

// CombinationIndex ranks a set of positions in the combinatorial number
// system: sum of C(positions[i], i+1). Positions must be non-negative and
// strictly increasing. The set {0, 1, ..., k-1} has index 0.
// ErrInvalidArgument is returned if the rank does not fit in an int.
func CombinationIndex(positions []int) (int, error) {
	index := 0
	for i, p := range positions {
		if p < 0 || (i > 0 && p <= positions[i-1]) {
			return 0, fmt.Errorf("%w: positions must be strictly increasing and non-negative, got %v", ErrInvalidArgument, positions)
		}
		c, ok := choose(p, i+1)
		if !ok || c > math.MaxInt-index {
			return 0, fmt.Errorf("%w: rank of %v overflows int", ErrInvalidArgument, positions)
		}
		index += c
	}
	return index, nil
}

// CombinationFromIndex is the inverse of CombinationIndex: it returns the
// k strictly increasing positions whose rank is index.
func CombinationFromIndex(index, k int) ([]int, error) {
	if index < 0 || k < 0 || (k == 0 && index != 0) {
		return nil, fmt.Errorf("%w: index %d k %d", ErrInvalidArgument, index, k)
	}

	positions := make([]int, k)
	for i := k; i >= 1; i-- {
		p := largestWithin(index, i)
		c, _ := choose(p, i)
		index -= c
		positions[i-1] = p
	}
	return positions, nil
}

// largestWithin returns the largest p >= i-1 with C(p, i) <= index.
// C(i-1, i) is 0, so the search starts there.
func largestWithin(index, i int) int {
	fits := func(p int) bool {
		c, ok := choose(p, i)
		return ok && c <= index
	}

	// Double the step until C(hi, i) passes index, then bisect.
	lo, hi := i-1, 0
	step := 1
	for {
		if lo > math.MaxInt-step {
			hi = math.MaxInt
			if fits(hi) {
				return hi
			}
			break
		}
		hi = lo + step
		if !fits(hi) {
			break
		}
		lo = hi
		step *= 2
	}

	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
