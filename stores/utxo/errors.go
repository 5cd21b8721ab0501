package utxo

import "github.com/bsv-blockchain/ledger-validator/errors"

var (
	ErrNotFound = errors.New(errors.ERR_UTXO_NOT_FOUND, "utxo not found")
)
