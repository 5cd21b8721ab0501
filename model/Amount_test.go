package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	t.Run("small values fit", func(t *testing.T) {
		v, ok := AmountOf(400).Add(-500).Int64()
		require.True(t, ok)
		assert.Equal(t, int64(-100), v)
	})

	t.Run("sum beyond max int64", func(t *testing.T) {
		a := AmountOf(math.MaxInt64).Add(1)

		_, ok := a.Int64()
		assert.False(t, ok)
		assert.Equal(t, 1, a.Cmp(AmountOf(math.MaxInt64)))
		assert.Equal(t, -1, AmountOf(1_000).Cmp(a))
		assert.InDelta(t, math.Exp2(63), a.Float64(), 1)
	})

	t.Run("sum below min int64", func(t *testing.T) {
		a := AmountOf(math.MinInt64).Add(-1)

		_, ok := a.Int64()
		assert.False(t, ok)
		assert.Equal(t, -1, a.Cmp(AmountOf(math.MinInt64)))
		assert.Equal(t, -1, a.Cmp(AmountOf(0)))
	})

	t.Run("sub", func(t *testing.T) {
		in := AmountOf(math.MaxInt64).Add(math.MaxInt64)
		out := AmountOf(math.MaxInt64).Add(math.MaxInt64 - 10)

		fee, ok := in.Sub(out).Int64()
		require.True(t, ok)
		assert.Equal(t, int64(10), fee)

		assert.Equal(t, AmountOf(-10), out.Sub(in))
		assert.Equal(t, in, out.Plus(AmountOf(10)))
	})

	t.Run("zero value", func(t *testing.T) {
		assert.Equal(t, 0, Amount{}.Cmp(AmountOf(0)))
		assert.Equal(t, AmountOf(5), Amount{}.Add(5))
	})
}
