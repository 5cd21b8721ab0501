package analytics

import (
	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
)

type TxFee struct {
	TxID       int64   `json:"txId"`
	Inputs     int     `json:"inputs"`
	TotalInput float64 `json:"totalInput"`
	Fee        float64 `json:"fee"`
}

type Fees struct {
	Total          float64              `json:"total"`
	PerTransaction []TxFee              `json:"perTransaction"`
	Distribution   []Frequency[float64] `json:"distribution"`
}

// fees covers every transfer, in transaction id order. Coinbase transactions pay no fee.
func (a *Analyzer) fees(relations Relations) (Fees, error) {
	fees := Fees{
		PerTransaction: make([]TxFee, 0),
	}

	var (
		total  model.Amount
		values []float64
	)

	for _, txID := range relations.TransactionIDs() {
		inputs := relations.Inputs(txID)
		if len(inputs) == 0 || model.IsCoinbaseTx(inputs) {
			continue
		}

		var totalIn model.Amount

		for _, in := range inputs {
			spent, ok := relations.Output(in.SpentOutputID)
			if !ok {
				return Fees{}, errors.NewLedgerMalformedError("[Analyzer] tx %d spends unknown output %d", txID, in.SpentOutputID)
			}

			totalIn = totalIn.Add(spent.Value)
		}

		fee := totalIn.Sub(model.SumValues(relations.Outputs(txID)))
		total = total.Plus(fee)

		fees.PerTransaction = append(fees.PerTransaction, TxFee{
			TxID:       txID,
			Inputs:     len(inputs),
			TotalInput: a.coinsOf(totalIn),
			Fee:        a.coinsOf(fee),
		})

		values = append(values, a.coinsOf(fee))
	}

	fees.Total = a.coinsOf(total)
	fees.Distribution = distribution(values)

	return fees, nil
}
