package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsekit/kernel"
)

func TestArgsort_StableOnTies(t *testing.T) {
	keys := []int64{3, 1, 3, 0, 1}

	perm := kernel.For(kernel.CPU).Argsort(keys)

	// Sorted order with ties resolved by input position.
	require.Equal(t, []int64{3, 1, 4, 0, 2}, perm)

	// Applying the permutation yields a non-decreasing sequence.
	prev := int64(-1 << 62)
	for _, p := range perm {
		require.GreaterOrEqual(t, keys[p], prev)
		prev = keys[p]
	}
}

func TestArgsort_Empty(t *testing.T) {
	require.Empty(t, kernel.For(kernel.CPU).Argsort(nil))
}

func TestCumSum_Exclusive(t *testing.T) {
	out := kernel.For(kernel.CPU).CumSum([]int64{2, 0, 3})
	require.Equal(t, []int64{0, 2, 2, 5}, out)
}

func TestCumSum_Empty(t *testing.T) {
	require.Equal(t, []int64{0}, kernel.For(kernel.CPU).CumSum(nil))
}

func TestScatterCount(t *testing.T) {
	out := kernel.For(kernel.CPU).ScatterCount([]int64{1, 0, 1, 3}, 4)
	require.Equal(t, []int64{1, 2, 0, 1}, out)
}

func TestRowptr_TwoRows(t *testing.T) {
	// Rows [0,0,1] over 2 rows compress to offsets [0,2,3].
	out := kernel.For(kernel.CPU).Rowptr([]int64{0, 0, 1}, 2)
	require.Equal(t, []int64{0, 2, 3}, out)
}

func TestRowptr_EmptyRowsInMiddle(t *testing.T) {
	out := kernel.For(kernel.CPU).Rowptr([]int64{0, 3, 3}, 5)
	require.Equal(t, []int64{0, 1, 1, 1, 3, 3}, out)
}

func TestSegmentReduce_Operators(t *testing.T) {
	groupID := []int64{0, 0, 1, 2, 2, 2}
	values := []float64{1, 2, 5, 2, 8, 2}
	be := kernel.For(kernel.CPU)

	require.Equal(t, []float64{3, 5, 12}, be.SegmentReduce(groupID, values, 3, kernel.Sum))
	require.Equal(t, []float64{1, 5, 2}, be.SegmentReduce(groupID, values, 3, kernel.Min))
	require.Equal(t, []float64{2, 5, 8}, be.SegmentReduce(groupID, values, 3, kernel.Max))
	require.Equal(t, []float64{2, 5, 32}, be.SegmentReduce(groupID, values, 3, kernel.Mul))
	require.Equal(t, []float64{1.5, 5, 4}, be.SegmentReduce(groupID, values, 3, kernel.Mean))
}

func TestSegmentReduce_EmptyGroupKeepsNeutral(t *testing.T) {
	// Group 1 never appears: Sum leaves 0, Mul leaves 1.
	groupID := []int64{0, 2}
	values := []float64{4, 9}
	be := kernel.For(kernel.CPU)

	require.Equal(t, []float64{4, 0, 9}, be.SegmentReduce(groupID, values, 3, kernel.Sum))
	require.Equal(t, []float64{4, 1, 9}, be.SegmentReduce(groupID, values, 3, kernel.Mul))
}

func TestParseReduce_RoundTrip(t *testing.T) {
	for _, op := range []kernel.Reduce{kernel.Sum, kernel.Min, kernel.Max, kernel.Mul, kernel.Mean} {
		got, err := kernel.ParseReduce(op.String())
		require.NoError(t, err)
		require.Equal(t, op, got)
	}

	_, err := kernel.ParseReduce("median")
	require.ErrorIs(t, err, kernel.ErrUnknownReduce)
}

func TestFor_UnregisteredAccelFallsBackToCPU(t *testing.T) {
	be := kernel.For(kernel.Accel)
	require.NotNil(t, be)
	require.Equal(t, []int64{0, 1, 2}, be.CumSum([]int64{1, 1}))
}

func TestCounting_TracksInvocations(t *testing.T) {
	c := &kernel.Counting{}

	c.Argsort([]int64{1, 0})
	c.Rowptr([]int64{0, 1}, 2)
	c.Rowptr([]int64{0, 1}, 2)

	require.Equal(t, 1, c.Argsorts)
	require.Equal(t, 2, c.Rowptrs)
	require.Equal(t, 3, c.Total())

	c.Reset()
	require.Zero(t, c.Total())
}
