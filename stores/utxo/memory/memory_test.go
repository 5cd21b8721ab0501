package memory

import (
	"testing"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/stores/utxo"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	t.Run("insert and contains", func(t *testing.T) {
		db := New(ulogger.TestLogger{})

		assert.False(t, db.Contains(1))

		db.Insert(1)
		db.Insert(2)
		db.Insert(2)

		assert.True(t, db.Contains(1))
		assert.True(t, db.Contains(2))
		assert.Equal(t, 2, db.Len())
	})

	t.Run("remove", func(t *testing.T) {
		db := New(ulogger.TestLogger{})
		db.Insert(7)

		require.NoError(t, db.Remove(7))
		assert.False(t, db.Contains(7))
		assert.Equal(t, 0, db.Len())
	})

	t.Run("remove missing is an invariant violation", func(t *testing.T) {
		db := New(ulogger.TestLogger{})

		err := db.Remove(42)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvariantViolation))
		assert.True(t, errors.Is(err, utxo.ErrNotFound))
		assert.True(t, errors.IsFatal(err))
	})

	t.Run("snapshot is sorted and stable", func(t *testing.T) {
		db := New(ulogger.TestLogger{})

		for _, id := range []int64{50, -3, 7, 1000, 0} {
			db.Insert(id)
		}

		first := db.Snapshot()
		assert.Equal(t, []int64{-3, 0, 7, 50, 1000}, first)
		assert.Equal(t, first, db.Snapshot())

		require.NoError(t, db.Remove(7))
		assert.Equal(t, []int64{-3, 0, 50, 1000}, db.Snapshot())
	})

	t.Run("empty snapshot", func(t *testing.T) {
		db := New(ulogger.TestLogger{})
		assert.Empty(t, db.Snapshot())
	})
}
