package validator

import (
	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
)

// Bucket holds the rejections of one category, in rejection order.
type Bucket struct {
	Total int     `json:"total"`
	TxIDs []int64 `json:"txIds"`
}

// Report enumerates every rejected transaction with its category.
type Report struct {
	TotalInvalid    int    `json:"totalInvalid"`
	NotInUtxo       Bucket `json:"notInUtxo"`
	NegDestPk       Bucket `json:"negDestPk"`
	InvalidPk       Bucket `json:"invalidPk"`
	NegOutput       Bucket `json:"negOutput"`
	NotEnoughValue  Bucket `json:"notEnoughValue"`
	InvalidCoinbase Bucket `json:"invalidCoinbase"`

	index map[int64]model.Reason
}

func NewReport() *Report {
	r := &Report{
		index: make(map[int64]model.Reason),
	}

	for _, reason := range model.Reasons {
		r.Bucket(reason).TxIDs = make([]int64, 0)
	}

	return r
}

// Bucket returns the bucket of a rejection category, or nil for model.ReasonNone.
func (r *Report) Bucket(reason model.Reason) *Bucket {
	switch reason {
	case model.ReasonNotInUtxo:
		return &r.NotInUtxo
	case model.ReasonNegDestPk:
		return &r.NegDestPk
	case model.ReasonInvalidPk:
		return &r.InvalidPk
	case model.ReasonNegOutput:
		return &r.NegOutput
	case model.ReasonNotEnoughValue:
		return &r.NotEnoughValue
	case model.ReasonInvalidCoinbase:
		return &r.InvalidCoinbase
	default:
		return nil
	}
}

func (r *Report) Record(reason model.Reason, txID int64) error {
	bucket := r.Bucket(reason)
	if bucket == nil {
		return errors.NewInvalidArgumentError("[Report][Record] tx %d: %s is not a rejection reason", txID, reason)
	}

	bucket.Total++
	bucket.TxIDs = append(bucket.TxIDs, txID)
	r.TotalInvalid++

	if r.index != nil {
		r.index[txID] = reason
	}

	return nil
}

// Contains returns the category a transaction was rejected with.
func (r *Report) Contains(txID int64) (model.Reason, bool) {
	reason, ok := r.lookup()[txID]
	if !ok {
		return model.ReasonNone, false
	}

	return reason, true
}

// lookup returns the tx id index, rebuilding it when the buckets were filled without Record,
// as happens when a report is decoded from json.
func (r *Report) lookup() map[int64]model.Reason {
	n := 0
	for _, reason := range model.Reasons {
		n += len(r.Bucket(reason).TxIDs)
	}

	if r.index != nil && len(r.index) == n {
		return r.index
	}

	r.index = r.Rejections()

	return r.index
}

// Rejections returns every rejected transaction id mapped to its category.
func (r *Report) Rejections() map[int64]model.Reason {
	rejections := make(map[int64]model.Reason, r.TotalInvalid)

	for _, reason := range model.Reasons {
		for _, id := range r.Bucket(reason).TxIDs {
			rejections[id] = reason
		}
	}

	return rejections
}

// Err returns the rejection of a transaction as an error carrying errors.TxRejectedErrData,
// or nil when the transaction was not rejected.
func (r *Report) Err(txID int64) error {
	reason, ok := r.Contains(txID)
	if !ok {
		return nil
	}

	return errors.NewTxRejectedErr(txID, reason.String())
}
