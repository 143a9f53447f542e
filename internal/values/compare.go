package values

import (
	"cmp"
	"slices"
)

// ArrayOrdering selects how arrays of the same group are ordered.
type ArrayOrdering uint8

const (
	// Lexicographic compares shared positions first; on a tie the shorter
	// array is smaller.
	Lexicographic ArrayOrdering = iota
	// LengthFirst orders by length and compares elements only between
	// arrays of equal length.
	LengthFirst
)

func (o ArrayOrdering) String() string {
	if o == LengthFirst {
		return "length-first"
	}
	return "lexicographic"
}

// Comparator orders values: first by group precedence, then by the group's
// own rule. The zero value orders like NewComparator() with no options.
type Comparator struct {
	precedence Precedence
	arrays     ArrayOrdering
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithPrecedence replaces DefaultPrecedence.
func WithPrecedence(p Precedence) Option {
	return func(c *Comparator) {
		c.precedence = slices.Clone(p)
	}
}

// WithArrayOrdering selects the array ordering policy.
func WithArrayOrdering(o ArrayOrdering) Option {
	return func(c *Comparator) {
		c.arrays = o
	}
}

// NewComparator creates a Comparator. Without options it uses
// DefaultPrecedence and Lexicographic array ordering.
func NewComparator(opts ...Option) *Comparator {
	c := &Comparator{precedence: DefaultPrecedence}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultComparator = NewComparator()

// Compare orders a and b with the default Comparator.
func Compare(a, b Value) Comparison {
	return defaultComparator.Compare(a, b)
}

// Compare orders a and b. A nil operand is treated as NoValue.
func (c *Comparator) Compare(a, b Value) Comparison {
	ga, gb := groupOf(a), groupOf(b)
	if ga != gb {
		return c.precedence.Compare(ga, gb)
	}
	if c.arrays == LengthFirst {
		if x, ok := a.(Array); ok {
			if y, ok := b.(Array); ok {
				if n := cmp.Compare(x.Len(), y.Len()); n != 0 {
					return FromSign(n)
				}
			}
		}
	}
	return FromSign(compareSameGroup(a, b))
}

// Sort sorts vs in place. Equal values keep their relative order.
func (c *Comparator) Sort(vs []Value) {
	slices.SortStableFunc(vs, func(a, b Value) int {
		return c.Compare(a, b).Sign()
	})
}

// Equals reports whether a and b are equal. It never panics: values of
// different groups are unequal, and nil is only equal to nil.
func Equals(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Group() != b.Group() {
		return false
	}
	return a.Equals(b)
}

func groupOf(v Value) ValueGroup {
	if v == nil {
		return GroupNoValue
	}
	return v.Group()
}

// compareSameGroup applies the rule of the group shared by a and b.
func compareSameGroup(a, b Value) int {
	switch x := a.(type) {
	case NumberArray:
		return compareNumberArray(x, b)
	case Int:
		switch y := b.(type) {
		case Int:
			return cmp.Compare(x, y)
		case Float:
			return compareIntFloat(int64(x), float64(y))
		}
	case Float:
		switch y := b.(type) {
		case Int:
			return compareFloatInt(float64(x), int64(y))
		case Float:
			return compareFloats(float64(x), float64(y))
		}
	case Bool:
		if y, ok := b.(Bool); ok {
			return compareBools(bool(x), bool(y))
		}
	case Char, Text:
		sa, _ := textOf(a)
		if sb, ok := textOf(b); ok {
			return compareText(sa, sb)
		}
	case Point:
		if y, ok := b.(Point); ok {
			return x.compareTo(y)
		}
	case BooleanArray:
		if y, ok := b.(BooleanArray); ok {
			return x.compareTo(y)
		}
	case textSequence:
		if y, ok := b.(textSequence); ok {
			return compareTextSequences(x, y)
		}
	case GeometryArray:
		if y, ok := b.(GeometryArray); ok {
			return x.compareTo(y)
		}
	}
	// Same group and both nil or NoValue.
	return 0
}
