package values

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareTextUTF16Order(t *testing.T) {
	// U+FFFF is one code unit, U+10000 starts with the surrogate 0xD800.
	// UTF-8 byte order puts U+FFFF first; UTF-16 order does not.
	bmp := "\uFFFF"
	astral := "\U00010000"

	assert.Equal(t, -1, strings.Compare(bmp, astral))
	assert.Equal(t, 1, compareText(bmp, astral))
	assert.Equal(t, -1, compareText(astral, bmp))
}

func TestCompareText(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "a", -1},
		{"a", "", 1},
		{"abc", "abd", -1},
		{"abc", "ab", 1},
		{"A", "a", -1},
		{"é", "é", 0},
		{"\U0001F600", "\U0001F601", -1},
		{"\xff", "\xfe", 1},
		{"\xff", "\uFFFD", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, compareText(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, -tt.want, compareText(tt.b, tt.a), "%q vs %q", tt.b, tt.a)
	}
}

func TestInvalidRunesStandForReplacementChar(t *testing.T) {
	surrogate := Char(0xD800)
	replacement := Char(0xFFFD)
	text := Text("\uFFFD")

	assert.True(t, surrogate.Equals(replacement))
	assert.True(t, surrogate.Equals(text))
	assert.True(t, replacement.Equals(text))
	assert.Equal(t, Hash(surrogate), Hash(replacement))
	assert.Equal(t, Equal, NewComparator().Compare(surrogate, replacement))

	arr := NewCharArray('a', 0x110000)
	assert.True(t, arr.Equals(NewCharArray('a', 0xFFFD)))
	assert.True(t, arr.Equals(NewTextArray("a", "\uFFFD")))
	assert.True(t, NewTextArray("a", "\uFFFD").Equals(arr))
	assert.Equal(t, Hash(arr), Hash(NewTextArray("a", "\uFFFD")))

	assert.False(t, surrogate.Equals(Text("\xff")))
}
