package values

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashFormat(t *testing.T) {
	h := Hash(NewIntegralArray(1, 2, 3))
	assert.Len(t, h, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", h)
}

func TestHashConsistentWithEquals(t *testing.T) {
	pairs := []struct {
		name string
		a, b Value
	}{
		{"cross-flavor arrays", NewIntegralArray(1, 2, 3), NewFloatingPointArray(1, 2, 3)},
		{"empty number arrays", NewIntegralArray(), NewFloatingPointArray()},
		{"negative zero", NewFloatingPointArray(math.Copysign(0, -1)), NewIntegralArray(0)},
		{"nan", Float(math.NaN()), Float(math.NaN())},
		{"cross-flavor scalars", Int(-7), Float(-7)},
		{"char and text", Char('x'), Text("x")},
		{"char array and text array", NewCharArray('x', 'y'), NewTextArray("x", "y")},
		{"points", NewPoint(Cartesian, 0, 1), NewPoint(Cartesian, math.Copysign(0, -1), 1)},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Equals(tt.a, tt.b))
			assert.Equal(t, Hash(tt.a), Hash(tt.b))
		})
	}
}

func TestHashDistinguishes(t *testing.T) {
	distinct := []Value{
		NewIntegralArray(),
		NewBooleanArray(),
		NewTextArray(),
		NewGeometryArray(),
		NewIntegralArray(1, 2),
		NewIntegralArray(12),
		NewFloatingPointArray(1.5),
		NewFloatingPointArray(math.Inf(1)),
		NewTextArray("a", "b"),
		NewTextArray("a,b"),
		NewTextArray("ab"),
		Text("1"),
		Int(1),
		Int(1 << 62),
		Float(0x1p63),
		Bool(true),
		NoValue,
		NewPoint(Cartesian, 1, 2),
		NewPoint(WGS84, 1, 2),
	}

	seen := make(map[string]Value, len(distinct))
	for _, v := range distinct {
		h := Hash(v)
		if prev, ok := seen[h]; ok {
			t.Errorf("hash collision between %s and %s", prev, v)
		}
		seen[h] = v
	}
}

func TestHashNilIsNoValue(t *testing.T) {
	assert.Equal(t, Hash(NoValue), Hash(nil))
}
