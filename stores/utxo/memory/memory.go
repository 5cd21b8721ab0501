package memory

import (
	"sync"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/stores/utxo"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

const initialCapacity = 1024 * 1024

type Memory struct {
	logger ulogger.Logger
	mu     sync.RWMutex
	// the swiss map uses a lot less memory than the standard map
	m *swiss.Map[int64, struct{}]
}

var _ utxo.Store = (*Memory)(nil)

func New(logger ulogger.Logger) *Memory {
	return &Memory{
		logger: logger,
		m:      swiss.NewMap[int64, struct{}](initialCapacity),
	}
}

func (m *Memory) Contains(outputID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.m.Has(outputID)
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.m.Count()
}

func (m *Memory) Insert(outputID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.m.Put(outputID, struct{}{})
}

func (m *Memory) Remove(outputID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.m.Delete(outputID) {
		m.logger.Errorf("[Memory][Remove] utxo %d is not in the set", outputID)
		return errors.NewInvariantViolationError("[Memory][Remove] utxo %d is not in the set", outputID, utxo.ErrNotFound)
	}

	return nil
}

func (m *Memory) Snapshot() []int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, m.m.Count())

	m.m.Iter(func(k int64, _ struct{}) (stop bool) {
		ids = append(ids, k)
		return false
	})

	slices.Sort(ids)

	return ids
}
