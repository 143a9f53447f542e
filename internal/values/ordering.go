package values

// Comparison is the outcome of ordering two values.
// Only the sign of a raw comparison survives; magnitude is dropped.
type Comparison uint8

const (
	Less Comparison = iota
	Equal
	Greater
)

// FromSign maps a raw signed comparison result to a Comparison.
// Any negative number is Less, zero is Equal and any positive number is Greater.
func FromSign(n int) Comparison {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

// Reverse returns the result of the same comparison with operands swapped.
func (c Comparison) Reverse() Comparison {
	switch c {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return Equal
	}
}

// Sign returns -1, 0 or +1. Use it to plug a Comparison into
// slices.SortFunc and friends.
func (c Comparison) Sign() int {
	switch c {
	case Less:
		return -1
	case Greater:
		return 1
	default:
		return 0
	}
}

func (c Comparison) String() string {
	switch c {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}
