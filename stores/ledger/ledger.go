// Package ledger holds the three ledger relations (transactions, inputs, outputs) as an
// arena of rows. Rows are never updated in place: deleting a transaction tombstones its
// row together with all of its input and output rows, and Compact drops tombstoned rows.
//
// Relations is owned by a single goroutine while it is being mutated. Concurrent readers
// are fine once the owner stops mutating it.
package ledger

import (
	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

type Relations struct {
	txs     []model.Transaction
	inputs  []model.Input
	outputs []model.Output

	// tombstones, one per row
	txRemoved     []bool
	inputRemoved  []bool
	outputRemoved []bool

	txRow     map[int64]int
	txInputs  map[int64][]int
	txOutputs map[int64][]int
	outputRows *swiss.Map[int64, []int]
}

// New builds the arena. Rows keep their record order. When a transaction id appears more
// than once only the last row is kept.
func New(txs []model.Transaction, inputs []model.Input, outputs []model.Output) *Relations {
	r := &Relations{
		txs:           txs,
		inputs:        inputs,
		outputs:       outputs,
		txRemoved:     make([]bool, len(txs)),
		inputRemoved:  make([]bool, len(inputs)),
		outputRemoved: make([]bool, len(outputs)),
	}

	r.index()

	return r
}

func (r *Relations) index() {
	r.txRow = make(map[int64]int, len(r.txs))
	r.txInputs = make(map[int64][]int, len(r.txs))
	r.txOutputs = make(map[int64][]int, len(r.txs))
	//nolint:gosec // row counts fit in uint32
	r.outputRows = swiss.NewMap[int64, []int](uint32(len(r.outputs) + 1))

	for row, tx := range r.txs {
		if r.txRemoved[row] {
			continue
		}

		if prev, ok := r.txRow[tx.ID]; ok {
			r.txRemoved[prev] = true
		}

		r.txRow[tx.ID] = row
	}

	for row, in := range r.inputs {
		if r.inputRemoved[row] {
			continue
		}

		r.txInputs[in.TxID] = append(r.txInputs[in.TxID], row)
	}

	for row, out := range r.outputs {
		if r.outputRemoved[row] {
			continue
		}

		r.txOutputs[out.TxID] = append(r.txOutputs[out.TxID], row)

		rows, _ := r.outputRows.Get(out.ID)
		r.outputRows.Put(out.ID, append(rows, row))
	}
}

// Len returns the number of live transactions.
func (r *Relations) Len() int {
	return len(r.txRow)
}

// TransactionIDs returns the ids of all live transactions in ascending order.
func (r *Relations) TransactionIDs() []int64 {
	ids := make([]int64, 0, len(r.txRow))
	for id := range r.txRow {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

func (r *Relations) Transaction(txID int64) (model.Transaction, bool) {
	row, ok := r.txRow[txID]
	if !ok {
		return model.Transaction{}, false
	}

	return r.txs[row], true
}

// Inputs returns the live inputs of a transaction in record order.
func (r *Relations) Inputs(txID int64) []model.Input {
	rows := r.txInputs[txID]

	inputs := make([]model.Input, 0, len(rows))
	for _, row := range rows {
		inputs = append(inputs, r.inputs[row])
	}

	return inputs
}

// Outputs returns the live outputs produced by a transaction in record order.
func (r *Relations) Outputs(txID int64) []model.Output {
	rows := r.txOutputs[txID]

	outputs := make([]model.Output, 0, len(rows))
	for _, row := range rows {
		outputs = append(outputs, r.outputs[row])
	}

	return outputs
}

// Output resolves a live output by its id. If the id is duplicated the first live row wins.
func (r *Relations) Output(outputID int64) (model.Output, bool) {
	rows, _ := r.outputRows.Get(outputID)

	for _, row := range rows {
		if !r.outputRemoved[row] {
			return r.outputs[row], true
		}
	}

	return model.Output{}, false
}

// Delete tombstones a transaction and all of its inputs and outputs in one step.
func (r *Relations) Delete(txID int64) error {
	row, ok := r.txRow[txID]
	if !ok {
		return errors.NewTxNotFoundError("[Relations][Delete] tx %d is not a live transaction", txID)
	}

	r.txRemoved[row] = true
	delete(r.txRow, txID)

	for _, inRow := range r.txInputs[txID] {
		r.inputRemoved[inRow] = true
	}

	delete(r.txInputs, txID)

	for _, outRow := range r.txOutputs[txID] {
		r.outputRemoved[outRow] = true
	}

	delete(r.txOutputs, txID)

	return nil
}

// Compact drops every tombstoned row and rebuilds the indexes. It returns the number of
// rows dropped across the three relations.
func (r *Relations) Compact() int {
	before := len(r.txs) + len(r.inputs) + len(r.outputs)

	r.txs = compact(r.txs, r.txRemoved)
	r.inputs = compact(r.inputs, r.inputRemoved)
	r.outputs = compact(r.outputs, r.outputRemoved)

	r.txRemoved = make([]bool, len(r.txs))
	r.inputRemoved = make([]bool, len(r.inputs))
	r.outputRemoved = make([]bool, len(r.outputs))

	r.index()

	return before - (len(r.txs) + len(r.inputs) + len(r.outputs))
}

func compact[T any](rows []T, removed []bool) []T {
	live := make([]T, 0, len(rows))

	for i, row := range rows {
		if !removed[i] {
			live = append(live, row)
		}
	}

	return live
}

// Transactions returns the live transaction rows in record order.
func (r *Relations) Transactions() []model.Transaction {
	return compact(r.txs, r.txRemoved)
}

// InputRows returns the live input rows in record order.
func (r *Relations) InputRows() []model.Input {
	return compact(r.inputs, r.inputRemoved)
}

// OutputRows returns the live output rows in record order.
func (r *Relations) OutputRows() []model.Output {
	return compact(r.outputs, r.outputRemoved)
}

// Orphans returns, in ascending order, the transaction ids referenced by live input or
// output rows that have no live transaction row.
func (r *Relations) Orphans() []int64 {
	seen := make(map[int64]struct{})

	for txID := range r.txInputs {
		if _, ok := r.txRow[txID]; !ok {
			seen[txID] = struct{}{}
		}
	}

	for txID := range r.txOutputs {
		if _, ok := r.txRow[txID]; !ok {
			seen[txID] = struct{}{}
		}
	}

	orphans := make([]int64, 0, len(seen))
	for txID := range seen {
		orphans = append(orphans, txID)
	}

	slices.Sort(orphans)

	return orphans
}
