package values

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSign(t *testing.T) {
	tests := []struct {
		n    int
		want Comparison
	}{
		{-42, Less},
		{-1, Less},
		{0, Equal},
		{1, Greater},
		{7, Greater},
		{math.MinInt, Less},
		{math.MaxInt, Greater},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromSign(tt.n), "FromSign(%d)", tt.n)
	}
}

func TestFromSignIgnoresMagnitude(t *testing.T) {
	assert.Equal(t, FromSign(-1), FromSign(-1000))
	assert.Equal(t, FromSign(1), FromSign(1000))
}

func TestComparisonReverse(t *testing.T) {
	assert.Equal(t, Greater, Less.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())
	assert.Equal(t, Less, Greater.Reverse())
}

func TestComparisonSignRoundTrip(t *testing.T) {
	for _, c := range []Comparison{Less, Equal, Greater} {
		assert.Equal(t, c, FromSign(c.Sign()))
	}
}

func TestComparisonString(t *testing.T) {
	assert.Equal(t, "less", Less.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "greater", Greater.String())
	assert.Equal(t, "invalid", Comparison(9).String())
}
