package validator

import (
	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/bsv-blockchain/ledger-validator/stores/utxo"
)

// OutputLookup resolves an output row by its id.
type OutputLookup interface {
	Output(outputID int64) (model.Output, bool)
}

// Classify decides whether a transfer transaction can be accepted given the current UTXO set.
// It returns model.ReasonNone on accept, otherwise the first rule that failed:
//
//  1. every spent output is in the UTXO set (notInUtxo)
//  2. every signer owns the output it spends (invalidPk)
//  3. every output of this transaction has a valid recipient (negDestPk)
//  4. no output is spent twice by this transaction (notInUtxo)
//  5. no output has a negative value (negOutput)
//  6. inputs cover outputs (notEnoughValue)
//
// Sums are exact, so outputs whose int64 total would overflow still fail rule 6.
// Rules 1 to 3 are checked input by input. An error is only returned when a UTXO cannot be
// resolved to its output row, which means the ledger and the UTXO set disagree.
func Classify(inputs []model.Input, outputs []model.Output, lookup OutputLookup, utxos utxo.Reader) (model.Reason, error) {
	var totalIn model.Amount

	for _, in := range inputs {
		if !utxos.Contains(in.SpentOutputID) {
			return model.ReasonNotInUtxo, nil
		}

		spent, ok := lookup.Output(in.SpentOutputID)
		if !ok {
			return model.ReasonNone, errors.NewInvariantViolationError("[Classify] utxo %d has no output row", in.SpentOutputID)
		}

		if in.SignerKeyID != spent.RecipientKeyID {
			return model.ReasonInvalidPk, nil
		}

		for _, out := range outputs {
			if !out.HasValidRecipient() {
				return model.ReasonNegDestPk, nil
			}
		}

		totalIn = totalIn.Add(spent.Value)
	}

	if hasDuplicateSpend(inputs) {
		return model.ReasonNotInUtxo, nil
	}

	var totalOut model.Amount

	for _, out := range outputs {
		if out.Value < 0 {
			return model.ReasonNegOutput, nil
		}

		totalOut = totalOut.Add(out.Value)
	}

	if totalIn.Cmp(totalOut) < 0 {
		return model.ReasonNotEnoughValue, nil
	}

	return model.ReasonNone, nil
}

func hasDuplicateSpend(inputs []model.Input) bool {
	seen := make(map[int64]struct{}, len(inputs))

	for _, in := range inputs {
		if _, ok := seen[in.SpentOutputID]; ok {
			return true
		}

		seen[in.SpentOutputID] = struct{}{}
	}

	return false
}
