// Package factory creates UTXO store implementations from a store URL.
//
// Supported schemes:
//   - memory: "memory:///" swiss-map backed set
//
// Logging of every mutation can be enabled by adding logging=true to the URL:
//
//	memory:///?logging=true
package factory

import (
	"net/url"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/stores/utxo"
	utxologger "github.com/bsv-blockchain/ledger-validator/stores/utxo/logger"
	"github.com/bsv-blockchain/ledger-validator/stores/utxo/memory"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
)

var availableDatabases = map[string]func(logger ulogger.Logger, storeURL *url.URL) (utxo.Store, error){
	"memory": func(logger ulogger.Logger, _ *url.URL) (utxo.Store, error) {
		return memory.New(logger), nil
	},
}

func NewStore(logger ulogger.Logger, storeURL *url.URL) (utxo.Store, error) {
	if storeURL == nil {
		return nil, errors.NewConfigurationError("[UTXOStoreFactory] no utxo store url configured")
	}

	dbInit, ok := availableDatabases[storeURL.Scheme]
	if !ok {
		return nil, errors.NewConfigurationError("[UTXOStoreFactory] unknown utxo store scheme: %s", storeURL.Scheme)
	}

	logger.Infof("[UTXOStoreFactory] connecting to %s utxo store", storeURL.Scheme)

	store, err := dbInit(logger, storeURL)
	if err != nil {
		return nil, err
	}

	if storeURL.Query().Get("logging") == "true" {
		logger.Infof("[UTXOStoreFactory] enabling utxo store logging")
		store = utxologger.New(logger, store)
	}

	return store, nil
}
