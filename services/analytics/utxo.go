package analytics

import (
	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
)

type MaxUTXO struct {
	TxID           int64   `json:"txId"`
	BlockID        int64   `json:"blockId"`
	OutputID       int64   `json:"outputId"`
	RecipientKeyID int64   `json:"recipientKeyId"`
	Value          float64 `json:"value"`
}

type UTXOSummary struct {
	Count      int      `json:"count"`
	TotalValue float64  `json:"totalValue"`
	Max        *MaxUTXO `json:"max,omitempty"`
}

// utxoSummary resolves every listed id. On equal values the id listed first is the maximum.
func (a *Analyzer) utxoSummary(relations Relations, utxos []int64) (UTXOSummary, error) {
	var (
		summary UTXOSummary
		total   model.Amount
		maxSats int64
	)

	for _, id := range utxos {
		out, ok := relations.Output(id)
		if !ok {
			return UTXOSummary{}, errors.NewUtxoNotFoundError("[Analyzer] utxo %d is not an output of the ledger", id)
		}

		total = total.Add(out.Value)
		summary.Count++

		if summary.Max != nil && out.Value <= maxSats {
			continue
		}

		tx, ok := relations.Transaction(out.TxID)
		if !ok {
			return UTXOSummary{}, errors.NewTxNotFoundError("[Analyzer] utxo %d belongs to unknown tx %d", id, out.TxID)
		}

		maxSats = out.Value
		summary.Max = &MaxUTXO{
			TxID:           out.TxID,
			BlockID:        tx.BlockID,
			OutputID:       out.ID,
			RecipientKeyID: out.RecipientKeyID,
			Value:          a.coins(out.Value),
		}
	}

	summary.TotalValue = a.coinsOf(total)

	return summary, nil
}
