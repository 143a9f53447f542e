package store

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/storable/internal/fixture"
	"github.com/roach88/storable/internal/values"
)

func TestPut_StoresNewValue(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec, dup, err := s.Put(ctx, "scores", values.NewIntegralArray(1, 2, 3))
	require.NoError(t, err)
	assert.False(t, dup)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "scores", rec.Property)
	assert.Equal(t, values.Hash(values.NewIntegralArray(1, 2, 3)), rec.Hash)
	assert.Equal(t, int64(1), rec.Seq)

	n, err := s.Count(ctx, "scores")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPut_DetectsEqualValueAcrossFlavors(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first, dup, err := s.Put(ctx, "scores", values.NewIntegralArray(1, 2, 3))
	require.NoError(t, err)
	require.False(t, dup)

	again, dup, err := s.Put(ctx, "scores", values.NewFloatingPointArray(1, 2, 3))
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, first.ID, again.ID)
	assert.IsType(t, values.IntegralArray{}, again.Value)

	n, err := s.Count(ctx, "scores")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPut_SameValueDifferentProperty(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	a, _, err := s.Put(ctx, "a", values.Text("x"))
	require.NoError(t, err)
	b, dup, err := s.Put(ctx, "b", values.Char('x'))
	require.NoError(t, err)

	assert.False(t, dup)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, int64(2), b.Seq)
}

func TestPut_DistinctValuesInSameGroup(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, v := range []values.Value{
		values.NewIntegralArray(1, 2, 3),
		values.NewIntegralArray(1, 2, 4),
		values.NewFloatingPointArray(1, 2, 3.5),
	} {
		_, dup, err := s.Put(ctx, "scores", v)
		require.NoError(t, err)
		assert.False(t, dup, v.String())
	}

	n, err := s.Count(ctx, "scores")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPut_MixedCRSRejected(t *testing.T) {
	s := createTestStore(t)

	route := values.NewGeometryArray(
		values.NewPoint(values.Cartesian, 1, 2),
		values.NewPoint(values.WGS84, 1, 2),
	)
	_, _, err := s.Put(context.Background(), "route", route)
	assert.Error(t, err)
}

func TestPut_RoundTripsSpecialFloats(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	stored := []values.Value{
		values.Float(math.NaN()),
		values.Float(math.Inf(-1)),
		values.NewFloatingPointArray(math.NaN(), 0.5),
		values.Int(math.MinInt64),
	}
	for _, v := range stored {
		_, dup, err := s.Put(ctx, "odd", v)
		require.NoError(t, err)
		require.False(t, dup, v.String())
	}

	// NaN equals NaN, so a second NaN is a duplicate.
	_, dup, err := s.Put(ctx, "odd", values.Float(math.NaN()))
	require.NoError(t, err)
	assert.True(t, dup)

	records, err := s.List(ctx, "odd")
	require.NoError(t, err)
	require.Len(t, records, len(stored))
	for _, rec := range records {
		found := false
		for _, v := range stored {
			if values.Equals(rec.Value, v) {
				found = true
			}
		}
		assert.True(t, found, "unexpected value %s", rec.Value)
	}
}

func TestList_Empty(t *testing.T) {
	s := createTestStore(t)

	records, err := s.List(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestList_ComparatorOrder(t *testing.T) {
	inputs := []values.Value{
		values.Int(5),
		values.NewIntegralArray(2),
		values.Text("a"),
		values.NewIntegralArray(1, 9),
		values.NewBooleanArray(true),
		values.Float(-1.5),
	}

	tests := []struct {
		name   string
		opts   []values.Option
		expect []string
	}{
		{
			name:   "lexicographic",
			expect: []string{"[true]", "[1, 9]", "[2]", `"a"`, "-1.5", "5"},
		},
		{
			name:   "length first",
			opts:   []values.Option{values.WithArrayOrdering(values.LengthFirst)},
			expect: []string{"[true]", "[2]", "[1, 9]", `"a"`, "-1.5", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestStore(t,
				WithComparator(values.NewComparator(tt.opts...)),
				WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
			)
			ctx := context.Background()
			for _, v := range inputs {
				_, _, err := s.Put(ctx, "mixed", v)
				require.NoError(t, err)
			}

			records, err := s.List(ctx, "mixed")
			require.NoError(t, err)

			got := make([]string, len(records))
			for i, rec := range records {
				got[i] = rec.Value.String()
			}
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestPut_RejectsUndecodableValue(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, _, err := s.Put(ctx, "p", values.NewIntegralArray(1))
	require.NoError(t, err)

	_, _, err = s.Put(ctx, "p", values.NewPoint(values.Cartesian, 1, 2, 3))
	assert.ErrorIs(t, err, fixture.ErrInvalidLiteral)

	n, err := s.Count(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	records, err := s.List(ctx, "p")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, values.Equals(values.NewIntegralArray(1), records[0].Value))
}

func TestPut_NilStoredAsNoValue(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec, dup, err := s.Put(ctx, "p", nil)
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, values.Hash(values.NoValue), rec.Hash)

	_, dup, err = s.Put(ctx, "p", values.NoValue)
	require.NoError(t, err)
	assert.True(t, dup)

	records, err := s.List(ctx, "p")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, values.Equals(values.NoValue, records[0].Value))
}
