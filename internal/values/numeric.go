package values

import (
	"cmp"
	"math"
)

// Bounds of int64 as exactly representable float64 values.
const (
	minInt64Float = -0x1p63
	maxInt64Float = 0x1p63 // exclusive
)

// compareFloats orders floats numerically with -0.0 == 0.0.
// NaN equals NaN and is greater than every number.
func compareFloats(a, b float64) int {
	switch {
	case math.IsNaN(a):
		if math.IsNaN(b) {
			return 0
		}
		return 1
	case math.IsNaN(b):
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareIntFloat compares an integer against a float exactly.
// The float is never rounded to an integer and the integer is never rounded
// to a float: the integer is compared against the float's integral part and
// the fractional part breaks the tie.
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return -1
	case f >= maxInt64Float:
		return -1
	case f < minInt64Float:
		return 1
	}

	t := math.Trunc(f)
	if c := cmp.Compare(i, int64(t)); c != 0 {
		return c
	}
	switch {
	case f > t:
		return -1
	case f < t:
		return 1
	default:
		return 0
	}
}

// compareFloatInt is compareIntFloat with operands swapped.
func compareFloatInt(f float64, i int64) int {
	return -compareIntFloat(i, f)
}

// compareSequences orders two sequences lexicographically: the first
// differing element decides, otherwise the shorter sequence is smaller.
func compareSequences(n, m int, elem func(i int) int) int {
	for i, k := 0, min(n, m); i < k; i++ {
		if c := elem(i); c != 0 {
			return c
		}
	}
	return cmp.Compare(n, m)
}
