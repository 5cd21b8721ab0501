package errors

// IsFatal reports whether err indicates a broken engine invariant or a ledger the
// engine cannot process at all, as opposed to a data-validity rejection.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		switch tErr.Code() {
		case ERR_INVARIANT_VIOLATION,
			ERR_LEDGER_MALFORMED,
			ERR_UTXO_NOT_FOUND:
			return true
		}
	}

	return false
}

// IsRejection reports whether err carries a transaction rejection.
func IsRejection(err error) bool {
	if err == nil {
		return false
	}

	var data *TxRejectedErrData

	return AsData(err, &data)
}
