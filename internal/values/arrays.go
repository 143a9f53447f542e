package values

import (
	"slices"
	"strconv"
	"strings"
)

// BooleanArray is an array of booleans. false sorts before true.
type BooleanArray struct {
	elems []bool
}

// NewBooleanArray copies elems into a new array.
func NewBooleanArray(elems ...bool) BooleanArray {
	return BooleanArray{elems: slices.Clone(elems)}
}

func (BooleanArray) storable() {}

// Group returns GroupBooleanArray.
func (BooleanArray) Group() ValueGroup { return GroupBooleanArray }

func (a BooleanArray) Len() int { return len(a.elems) }

// At returns the i-th element.
func (a BooleanArray) At(i int) bool { return a.elems[i] }

func (a BooleanArray) Equals(other Value) bool {
	o, ok := other.(BooleanArray)
	return ok && slices.Equal(a.elems, o.elems)
}

func (a BooleanArray) compareTo(other BooleanArray) int {
	return compareSequences(len(a.elems), len(other.elems), func(i int) int {
		return compareBools(a.elems[i], other.elems[i])
	})
}

func (a BooleanArray) String() string {
	parts := make([]string, len(a.elems))
	for i, e := range a.elems {
		parts[i] = strconv.FormatBool(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// CharArray is an array of characters. It belongs to GroupTextArray and
// equals the TextArray of the same one-character strings.
// Invalid runes stand for U+FFFD, as they do in Char.
type CharArray struct {
	elems []rune
}

// NewCharArray copies elems into a new array.
func NewCharArray(elems ...rune) CharArray {
	return CharArray{elems: slices.Clone(elems)}
}

func (CharArray) storable() {}

// Group returns GroupTextArray.
func (CharArray) Group() ValueGroup { return GroupTextArray }

func (a CharArray) Len() int { return len(a.elems) }

// At returns the i-th element.
func (a CharArray) At(i int) rune { return a.elems[i] }

func (a CharArray) textAt(i int) string { return string(a.elems[i]) }

func (a CharArray) Equals(other Value) bool {
	o, ok := other.(textSequence)
	return ok && compareTextSequences(a, o) == 0
}

func (a CharArray) String() string {
	parts := make([]string, len(a.elems))
	for i, e := range a.elems {
		parts[i] = strconv.QuoteRune(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TextArray is an array of strings.
type TextArray struct {
	elems []string
}

// NewTextArray copies elems into a new array.
func NewTextArray(elems ...string) TextArray {
	return TextArray{elems: slices.Clone(elems)}
}

func (TextArray) storable() {}

// Group returns GroupTextArray.
func (TextArray) Group() ValueGroup { return GroupTextArray }

func (a TextArray) Len() int { return len(a.elems) }

// At returns the i-th element.
func (a TextArray) At(i int) string { return a.elems[i] }

func (a TextArray) textAt(i int) string { return a.elems[i] }

func (a TextArray) Equals(other Value) bool {
	switch o := other.(type) {
	case TextArray:
		return slices.Equal(a.elems, o.elems)
	case CharArray:
		return compareTextSequences(a, o) == 0
	default:
		return false
	}
}

func (a TextArray) String() string {
	parts := make([]string, len(a.elems))
	for i, e := range a.elems {
		parts[i] = strconv.Quote(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
