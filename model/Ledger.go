// Package model defines the rows of the ledger relations and the protocol constants
// shared by the validator, the stores and the reporting services.
//
// CSV column names follow the historical dataset layout (id, block_id, tx_id, sig_id,
// out_id, pk_id, value) so that validated files can replace the raw ones as input to
// downstream tooling.
package model

const (
	// BlockSubsidy is the minimum sum of outputs a coinbase transaction must create, in satoshis.
	BlockSubsidy int64 = 5_000_000_000

	// SatoshisPerCoin is the smallest-unit ratio. Only reporting uses it.
	SatoshisPerCoin int64 = 100_000_000

	// CoinbaseSignerKeyID marks the signer of a coinbase input.
	CoinbaseSignerKeyID int64 = 0

	// NoSpentOutputID is the spent output reference of a coinbase input.
	NoSpentOutputID int64 = -1

	// NonStandardKeyID is the recipient of an output whose destination script could not be parsed.
	NonStandardKeyID int64 = -1
)

// Transaction is one row of the transactions relation.
type Transaction struct {
	ID      int64 `csv:"id" json:"id" db:"id"`
	BlockID int64 `csv:"block_id" json:"blockId" db:"block_id"`
}

// Input is one spend reference. Record order within a transaction matters for the
// coinbase check, which only looks at the first input.
type Input struct {
	TxID          int64 `csv:"tx_id" json:"transactionId" db:"tx_id"`
	SignerKeyID   int64 `csv:"sig_id" json:"signerKeyId" db:"sig_id"`
	SpentOutputID int64 `csv:"out_id" json:"spentOutputId" db:"out_id"`
}

// IsCoinbase reports whether the input creates coins instead of spending an output.
func (i Input) IsCoinbase() bool {
	return i.SignerKeyID == CoinbaseSignerKeyID && i.SpentOutputID == NoSpentOutputID
}

// HasCoinbaseSigner reports whether the input is signed by the coinbase key, whatever it spends.
func (i Input) HasCoinbaseSigner() bool {
	return i.SignerKeyID == CoinbaseSignerKeyID
}

// Output is one row of the outputs relation. Value is in satoshis.
type Output struct {
	ID             int64 `csv:"id" json:"id" db:"id"`
	TxID           int64 `csv:"tx_id" json:"transactionId" db:"tx_id"`
	RecipientKeyID int64 `csv:"pk_id" json:"recipientKeyId" db:"pk_id"`
	Value          int64 `csv:"value" json:"value" db:"value"`
}

// HasValidRecipient reports whether the recipient is a real key or the non-standard sentinel.
func (o Output) HasValidRecipient() bool {
	return o.RecipientKeyID > 0 || o.RecipientKeyID == NonStandardKeyID
}

// IsCoinbaseTx reports whether inputs describe a coinbase transaction:
// the first input is signed by the coinbase key and spends nothing.
func IsCoinbaseTx(inputs []Input) bool {
	return len(inputs) > 0 && inputs[0].IsCoinbase()
}

// SumValues returns the exact total value of the outputs.
func SumValues(outputs []Output) Amount {
	var total Amount
	for _, o := range outputs {
		total = total.Add(o.Value)
	}

	return total
}
