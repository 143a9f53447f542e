package values

import (
	"strconv"
)

// Value is a sealed interface over storable values.
// Only the types in this package implement it.
type Value interface {
	// Group returns the kind tag. Every concrete type reports exactly one group.
	Group() ValueGroup

	// Equals reports value equality. It is defined for every other Value,
	// including nil and values of unrelated kinds, for which it returns false.
	Equals(other Value) bool

	String() string

	storable() // Sealed
}

// Array is a Value holding a sequence of elements.
type Array interface {
	Value
	Len() int
}

// NumberArray is an array of integral or floating-point numbers.
// Every number array compares against both flavors; the results are raw
// signed integers, use FromSign to turn them into a Comparison.
type NumberArray interface {
	Array
	CompareIntegral(other IntegralArray) int
	CompareFloating(other FloatingPointArray) int
}

// Int is an integral number.
type Int int64

func (Int) storable() {}

// Group returns GroupNumber.
func (Int) Group() ValueGroup { return GroupNumber }

func (v Int) Equals(other Value) bool {
	switch o := other.(type) {
	case Int:
		return v == o
	case Float:
		return compareIntFloat(int64(v), float64(o)) == 0
	default:
		return false
	}
}

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Float is a floating-point number.
type Float float64

func (Float) storable() {}

// Group returns GroupNumber.
func (Float) Group() ValueGroup { return GroupNumber }

func (v Float) Equals(other Value) bool {
	switch o := other.(type) {
	case Float:
		return compareFloats(float64(v), float64(o)) == 0
	case Int:
		return compareIntFloat(int64(o), float64(v)) == 0
	default:
		return false
	}
}

func (v Float) String() string {
	return formatFloat(float64(v))
}

// Bool is a boolean.
type Bool bool

func (Bool) storable() {}

// Group returns GroupBoolean.
func (Bool) Group() ValueGroup { return GroupBoolean }

func (v Bool) Equals(other Value) bool {
	o, ok := other.(Bool)
	return ok && v == o
}

func (v Bool) String() string {
	return strconv.FormatBool(bool(v))
}

// Char is a single character. It shares GroupText with Text and equals the
// one-character Text holding the same rune. A rune that is not valid
// Unicode (a surrogate half, or out of range) stands for U+FFFD.
type Char rune

func (Char) storable() {}

// Group returns GroupText.
func (Char) Group() ValueGroup { return GroupText }

func (v Char) Equals(other Value) bool {
	o, ok := textOf(other)
	return ok && string(rune(v)) == o
}

func (v Char) String() string {
	return strconv.QuoteRune(rune(v))
}

// Text is a string.
type Text string

func (Text) storable() {}

// Group returns GroupText.
func (Text) Group() ValueGroup { return GroupText }

func (v Text) Equals(other Value) bool {
	switch o := other.(type) {
	case Text:
		return v == o
	case Char:
		return string(v) == string(rune(o))
	default:
		return false
	}
}

func (v Text) String() string {
	return strconv.Quote(string(v))
}

type noValue struct{}

// NoValue is the absent value. It is only equal to itself and sorts last
// under DefaultPrecedence.
var NoValue Value = noValue{}

func (noValue) storable() {}

func (noValue) Group() ValueGroup { return GroupNoValue }

func (noValue) Equals(other Value) bool {
	_, ok := other.(noValue)
	return ok
}

func (noValue) String() string { return "NO_VALUE" }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
