package validator

import (
	"github.com/bsv-blockchain/ledger-validator/model"
)

// InvalidCoinbases returns, in ascending order, the ids of the transactions whose first input is
// signed by the coinbase key and whose outputs sum to less than subsidy. A transaction with no
// outputs sums to zero.
func InvalidCoinbases(relations Ledger, subsidy int64) []int64 {
	invalid := make([]int64, 0)

	for _, txID := range relations.TransactionIDs() {
		inputs := relations.Inputs(txID)
		if len(inputs) == 0 || !inputs[0].HasCoinbaseSigner() {
			continue
		}

		if model.SumValues(relations.Outputs(txID)).Cmp(model.AmountOf(subsidy)) < 0 {
			invalid = append(invalid, txID)
		}
	}

	return invalid
}
