package analytics

import (
	"github.com/bsv-blockchain/ledger-validator/model"
)

type KeyTotal struct {
	KeyID int64   `json:"keyId"`
	Coins float64 `json:"coins"`
}

type ReceivedCoins struct {
	PerKey       []KeyTotal           `json:"perKey"`
	Distribution []Frequency[float64] `json:"distribution"`
}

// receivedCoins totals everything received by the keys that were paid by at least one coinbase.
func (a *Analyzer) receivedCoins(relations Relations) ReceivedCoins {
	txIDs := relations.TransactionIDs()

	miners := make(map[int64]struct{})

	for _, txID := range txIDs {
		if !model.IsCoinbaseTx(relations.Inputs(txID)) {
			continue
		}

		for _, out := range relations.Outputs(txID) {
			miners[out.RecipientKeyID] = struct{}{}
		}
	}

	totals := make(map[int64]model.Amount, len(miners))

	for _, txID := range txIDs {
		for _, out := range relations.Outputs(txID) {
			if _, ok := miners[out.RecipientKeyID]; ok {
				totals[out.RecipientKeyID] = totals[out.RecipientKeyID].Add(out.Value)
			}
		}
	}

	keys := sortedKeys(totals)

	received := ReceivedCoins{
		PerKey: make([]KeyTotal, 0, len(keys)),
	}

	values := make([]float64, 0, len(keys))

	for _, key := range keys {
		coins := a.coinsOf(totals[key])
		received.PerKey = append(received.PerKey, KeyTotal{KeyID: key, Coins: coins})
		values = append(values, coins)
	}

	received.Distribution = distribution(values)

	return received
}
