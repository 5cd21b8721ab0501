// Package logger decorates a UTXO store with debug logging of every mutation.
package logger

import (
	"github.com/bsv-blockchain/ledger-validator/stores/utxo"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
)

type Store struct {
	logger ulogger.Logger
	store  utxo.Store
}

func New(logger ulogger.Logger, store utxo.Store) utxo.Store {
	return &Store{
		logger: logger,
		store:  store,
	}
}

func (s *Store) Contains(outputID int64) bool {
	return s.store.Contains(outputID)
}

func (s *Store) Len() int {
	return s.store.Len()
}

func (s *Store) Insert(outputID int64) {
	s.store.Insert(outputID)
	s.logger.Debugf("[UTXOStore][Insert] %d, size %d", outputID, s.store.Len())
}

func (s *Store) Remove(outputID int64) error {
	err := s.store.Remove(outputID)
	s.logger.Debugf("[UTXOStore][Remove] %d, size %d, err %v", outputID, s.store.Len(), err)

	return err
}

func (s *Store) Snapshot() []int64 {
	ids := s.store.Snapshot()
	s.logger.Debugf("[UTXOStore][Snapshot] %d ids", len(ids))

	return ids
}
