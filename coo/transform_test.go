package coo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsekit/coo"
)

// shift adds d to every element, order-preserving; models a relocation-style
// elementwise mapping.
func shift(d int64) coo.IndexFunc {
	return func(src []int64) []int64 {
		out := make([]int64, len(src))
		for i, v := range src {
			out[i] = v + d
		}
		return out
	}
}

// scale multiplies every payload entry by f.
func scale(f float64) coo.ValueFunc {
	return func(src []float64) []float64 {
		out := make([]float64, len(src))
		for i, v := range src {
			out[i] = v * f
		}
		return out
	}
}

func TestApply_TouchesOnlyMaterializedCaches(t *testing.T) {
	s := newFixture(t, coo.WithValue([]float64{1, 2, 3, 4, 5}))
	require.NoError(t, s.FillCache(coo.CacheRowptr))

	out := s.Apply(shift(100), scale(2))

	require.Equal(t, []int64{100, 100, 101, 102, 102}, out.Row())
	require.Equal(t, []float64{2, 4, 6, 8, 10}, out.Value())

	// The materialized rowptr was transformed; absent caches stay absent.
	require.True(t, out.HasRowptr())
	require.Equal(t, []int64{100, 102, 103, 105}, out.Rowptr())
	require.False(t, out.HasColptr())
	require.False(t, out.HasCSR2CSC())
}

func TestApply_SourceUntouched(t *testing.T) {
	s := newFixture(t, coo.WithValue([]float64{1, 2, 3, 4, 5}))

	_ = s.Apply(shift(1), scale(3))

	require.Equal(t, []int64{0, 0, 1, 2, 2}, s.Row())
	require.Equal(t, []float64{1, 2, 3, 4, 5}, s.Value())
}

func TestApplyInPlace_MutatesReceiver(t *testing.T) {
	s := newFixture(t, coo.WithValue([]float64{1, 2, 3, 4, 5}))

	got := s.ApplyInPlace(nil, scale(10))

	require.Same(t, s, got)
	require.Equal(t, []float64{10, 20, 30, 40, 50}, s.Value())
	require.Equal(t, []int64{0, 0, 1, 2, 2}, s.Row(), "nil IndexFunc is identity")
}

func TestApplyValue_LeavesCachesAndCoordinates(t *testing.T) {
	s := newFixture(t, coo.WithValue([]float64{1, 1, 1, 1, 1}))
	require.NoError(t, s.FillCache())

	out := s.ApplyValue(scale(5))

	require.Equal(t, []float64{5, 5, 5, 5, 5}, out.Value())
	require.Equal(t, s.Row(), out.Row())
	require.ElementsMatch(t, s.CachedKeys(), out.CachedKeys())
	require.Equal(t, s.Rowptr(), out.Rowptr())
}

func TestApplyValue_StructuralOnlyStaysStructural(t *testing.T) {
	s := newFixture(t)

	out := s.ApplyValue(scale(2))

	require.False(t, out.HasValue())
}

func TestMap_ExtractsMaterializedArrays(t *testing.T) {
	s := newFixture(t, coo.WithValue([]float64{1, 2, 3, 4, 5}))
	require.NoError(t, s.FillCache(coo.CacheRowptr, coo.CacheColcount))

	arrays := s.Map(shift(0), scale(1))

	require.Equal(t, s.Row(), arrays.Row)
	require.Equal(t, s.Col(), arrays.Col)
	require.Equal(t, s.Value(), arrays.Value)
	require.Equal(t, s.Rowptr(), arrays.Rowptr)
	require.Equal(t, s.Colcount(), arrays.Colcount)
	require.Nil(t, arrays.Colptr)
	require.Nil(t, arrays.CSR2CSC)
	require.Nil(t, arrays.CSC2CSR)
}

func TestClone_DeepCopies(t *testing.T) {
	s := newFixture(t, coo.WithValue([]float64{1, 2, 3, 4, 5}))
	require.NoError(t, s.FillCache(coo.CacheRowptr))

	c := s.Clone()

	require.Equal(t, s.Row(), c.Row())
	require.Equal(t, s.Value(), c.Value())
	require.Equal(t, s.Rowptr(), c.Rowptr())

	// Mutating the clone's arrays must not reach the source.
	c.Value()[0] = 99
	require.Equal(t, float64(1), s.Value()[0])
	c.Rowptr()[0] = 42
	require.Equal(t, int64(0), s.Rowptr()[0])
}

func TestCopy_SharesArrays(t *testing.T) {
	s := newFixture(t, coo.WithValue([]float64{1, 2, 3, 4, 5}))

	c := s.Copy()

	require.NotSame(t, s, c)
	c.Value()[0] = 7
	require.Equal(t, float64(7), s.Value()[0], "Copy shares backing arrays")
}
