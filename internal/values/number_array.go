package values

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

type integral interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

type floating interface {
	~float32 | ~float64
}

// IntegralArray is an array of whole numbers.
type IntegralArray struct {
	elems []int64
}

// NewIntegralArray copies elems into a new array.
func NewIntegralArray(elems ...int64) IntegralArray {
	return IntegralArray{elems: slices.Clone(elems)}
}

// IntegralArrayOf widens elems of any integral type that fits in int64.
func IntegralArrayOf[T integral](elems []T) IntegralArray {
	out := make([]int64, len(elems))
	for i, e := range elems {
		out[i] = int64(e)
	}
	return IntegralArray{elems: out}
}

func (IntegralArray) storable() {}

// Group returns GroupNumberArray.
func (IntegralArray) Group() ValueGroup { return GroupNumberArray }

func (a IntegralArray) Len() int { return len(a.elems) }

// At returns the i-th element.
func (a IntegralArray) At(i int) int64 { return a.elems[i] }

// Elements returns a copy of the elements.
func (a IntegralArray) Elements() []int64 { return slices.Clone(a.elems) }

func (a IntegralArray) CompareIntegral(other IntegralArray) int {
	return compareSequences(len(a.elems), len(other.elems), func(i int) int {
		return cmp.Compare(a.elems[i], other.elems[i])
	})
}

func (a IntegralArray) CompareFloating(other FloatingPointArray) int {
	return compareSequences(len(a.elems), len(other.elems), func(i int) int {
		return compareIntFloat(a.elems[i], other.elems[i])
	})
}

func (a IntegralArray) Equals(other Value) bool {
	switch o := other.(type) {
	case IntegralArray:
		return a.CompareIntegral(o) == 0
	case FloatingPointArray:
		return a.CompareFloating(o) == 0
	default:
		return false
	}
}

func (a IntegralArray) String() string {
	parts := make([]string, len(a.elems))
	for i, e := range a.elems {
		parts[i] = strconv.FormatInt(e, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FloatingPointArray is an array of floating-point numbers.
type FloatingPointArray struct {
	elems []float64
}

// NewFloatingPointArray copies elems into a new array.
func NewFloatingPointArray(elems ...float64) FloatingPointArray {
	return FloatingPointArray{elems: slices.Clone(elems)}
}

// FloatingPointArrayOf widens float32 or float64 elems.
func FloatingPointArrayOf[T floating](elems []T) FloatingPointArray {
	out := make([]float64, len(elems))
	for i, e := range elems {
		out[i] = float64(e)
	}
	return FloatingPointArray{elems: out}
}

func (FloatingPointArray) storable() {}

// Group returns GroupNumberArray.
func (FloatingPointArray) Group() ValueGroup { return GroupNumberArray }

func (a FloatingPointArray) Len() int { return len(a.elems) }

// At returns the i-th element.
func (a FloatingPointArray) At(i int) float64 { return a.elems[i] }

// Elements returns a copy of the elements.
func (a FloatingPointArray) Elements() []float64 { return slices.Clone(a.elems) }

func (a FloatingPointArray) CompareIntegral(other IntegralArray) int {
	return compareSequences(len(a.elems), len(other.elems), func(i int) int {
		return compareFloatInt(a.elems[i], other.elems[i])
	})
}

func (a FloatingPointArray) CompareFloating(other FloatingPointArray) int {
	return compareSequences(len(a.elems), len(other.elems), func(i int) int {
		return compareFloats(a.elems[i], other.elems[i])
	})
}

func (a FloatingPointArray) Equals(other Value) bool {
	switch o := other.(type) {
	case IntegralArray:
		return a.CompareIntegral(o) == 0
	case FloatingPointArray:
		return a.CompareFloating(o) == 0
	default:
		return false
	}
}

func (a FloatingPointArray) String() string {
	parts := make([]string, len(a.elems))
	for i, e := range a.elems {
		parts[i] = formatFloat(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// compareNumberArray dispatches on the flavor of other.
func compareNumberArray(a NumberArray, other Value) int {
	switch o := other.(type) {
	case IntegralArray:
		return a.CompareIntegral(o)
	case FloatingPointArray:
		return a.CompareFloating(o)
	default:
		return 0
	}
}
