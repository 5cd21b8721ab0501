// Package utxo defines the contract of the UTXO set: the ids of outputs that were
// produced by an accepted transaction and not yet consumed by a later one.
package utxo

// Reader is the read side of the UTXO set, all the classifier needs.
type Reader interface {
	Contains(outputID int64) bool
	Len() int
}

// Store is the UTXO set owned by the validation engine. Mutations happen only from the
// engine's ordered pass.
type Store interface {
	Reader

	// Insert adds an output id. Inserting an id that is already present is a no-op.
	Insert(outputID int64)

	// Remove deletes an output id. Removing an id that is not present is an invariant
	// violation and returns an error wrapping ErrNotFound.
	Remove(outputID int64) error

	// Snapshot returns the current ids in ascending order.
	Snapshot() []int64
}
