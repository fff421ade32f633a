package tolerance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/tolerance"
)

type capacity float64

func TestDefaultEpsilon(t *testing.T) {
	require.Equal(t, 1e-10, tolerance.Default[float64]().Epsilon())
	require.Equal(t, float32(1e-4), tolerance.Default[float32]().Epsilon())
	require.Equal(t, 0, tolerance.Default[int]().Epsilon())
	require.Equal(t, uint8(0), tolerance.Default[uint8]().Epsilon())

	// Named types follow their underlying kind.
	require.Equal(t, capacity(1e-10), tolerance.Default[capacity]().Epsilon())
	require.True(t, tolerance.IsFloat[capacity]())
	require.False(t, tolerance.IsFloat[int64]())
}

func TestInfinity(t *testing.T) {
	require.True(t, math.IsInf(tolerance.Infinity[float64](), 1))
	require.Equal(t, math.MaxInt32, int(tolerance.Infinity[int32]()))
	require.Equal(t, int64(math.MaxInt64), tolerance.Infinity[int64]())
	require.Equal(t, uint16(math.MaxUint16), tolerance.Infinity[uint16]())
	require.Equal(t, uint64(math.MaxUint64), tolerance.Infinity[uint64]())
}

func TestComparisons_Float(t *testing.T) {
	tol := tolerance.Default[float64]()

	require.False(t, tol.Positive(1e-11))
	require.True(t, tol.Positive(1e-9))
	require.False(t, tol.Negative(-1e-11))
	require.True(t, tol.Negative(-1e-9))
	require.False(t, tol.NonZero(5e-11))
	require.True(t, tol.NonZero(-1))

	require.True(t, tol.Less(1, 2))
	require.False(t, tol.Less(1, 1+1e-11))
	require.False(t, tol.Different(1, 1+1e-11))
	require.True(t, tol.Different(1, 1.5))
}

func TestComparisons_Integer(t *testing.T) {
	tol := tolerance.Default[int]()

	require.True(t, tol.Positive(1))
	require.False(t, tol.Positive(0))
	require.True(t, tol.Negative(-1))
	require.True(t, tol.Less(1, 2))
	require.False(t, tol.Less(2, 2))

	u := tolerance.Default[uint]()
	require.False(t, u.Negative(0))
	require.False(t, u.Negative(7))
}

func TestCustomEpsilon(t *testing.T) {
	tol := tolerance.New[float64](0.5)
	require.False(t, tol.Positive(0.4))
	require.True(t, tol.Positive(0.6))

	// Negative epsilons collapse to exact comparison.
	require.Equal(t, 0.0, tolerance.New[float64](-1).Epsilon())
}

func TestSaturatingArithmetic(t *testing.T) {
	ti := tolerance.Default[int32]()
	inf := ti.Infinity()

	require.Equal(t, inf, ti.Add(inf, 5))
	require.Equal(t, inf, ti.Add(inf-1, 5))
	require.Equal(t, int32(7), ti.Add(3, 4))
	require.Equal(t, inf, ti.Sub(inf, 100))
	require.True(t, ti.Positive(ti.Sub(inf, 100)))
	require.False(t, ti.Less(inf, inf))

	tf := tolerance.Default[float64]()
	require.True(t, tf.IsInfinite(tf.Add(math.Inf(1), 1)))
	require.True(t, tf.Positive(tf.Sub(math.Inf(1), math.MaxFloat64)))
	require.False(t, tf.IsInfinite(math.MaxFloat64))
	require.Equal(t, 2.0, tf.Min(2, 3))
}

func TestDebitFloor(t *testing.T) {
	ti := tolerance.Default[int64]()
	inf := ti.Infinity()
	require.Equal(t, -inf, ti.Floor())

	require.Equal(t, int64(-5), ti.Debit(0, 5))
	require.Equal(t, -inf, ti.Debit(0, inf))
	require.Equal(t, -inf, ti.Debit(-inf, 1))
	require.Equal(t, -inf, ti.Debit(-inf+1, 2))
	// The floor is sticky under Add, even against Infinity.
	require.Equal(t, -inf, ti.Add(-inf, 10))
	require.Equal(t, -inf, ti.Add(-inf, inf))
	require.Equal(t, -inf, ti.Add(-inf+1, -5))
	require.Equal(t, int64(2), ti.Add(-3, 5))

	tu := tolerance.Default[uint16]()
	require.Equal(t, uint16(0), tu.Floor())
	require.Equal(t, uint16(0), tu.Debit(3, 5))
	require.Equal(t, uint16(2), tu.Debit(5, 3))
	require.Equal(t, uint16(7), tu.Add(0, 7))

	tf := tolerance.Default[float64]()
	require.True(t, math.IsInf(tf.Floor(), -1))
	require.True(t, math.IsInf(tf.Debit(1, math.Inf(1)), -1))
	require.True(t, math.IsInf(tf.Add(math.Inf(-1), math.Inf(1)), -1))
	require.Equal(t, -1.5, tf.Debit(1, 2.5))
}
