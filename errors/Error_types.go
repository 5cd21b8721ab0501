package errors

var (
	ErrUnknown            = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument    = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrNotFound           = New(ERR_NOT_FOUND, "not found")
	ErrProcessing         = New(ERR_PROCESSING, "error processing")
	ErrConfiguration      = New(ERR_CONFIGURATION, "configuration error")
	ErrError              = New(ERR_ERROR, "generic error")
	ErrTxInvalid          = New(ERR_TX_INVALID, "tx invalid")
	ErrTxNotFound         = New(ERR_TX_NOT_FOUND, "tx not found")
	ErrLedgerMalformed    = New(ERR_LEDGER_MALFORMED, "ledger malformed")
	ErrInvariantViolation = New(ERR_INVARIANT_VIOLATION, "invariant violation")
	ErrUtxoNotFound       = New(ERR_UTXO_NOT_FOUND, "utxo not found")
	ErrStateTransition    = New(ERR_STATE_TRANSITION, "invalid state transition")
	ErrStorageError       = New(ERR_STORAGE_ERROR, "storage error")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}
func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewNotFoundError(message string, params ...interface{}) error {
	return New(ERR_NOT_FOUND, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewError(message string, params ...interface{}) error {
	return New(ERR_ERROR, message, params...)
}
func NewTxInvalidError(message string, params ...interface{}) error {
	return New(ERR_TX_INVALID, message, params...)
}
func NewTxNotFoundError(message string, params ...interface{}) error {
	return New(ERR_TX_NOT_FOUND, message, params...)
}
func NewLedgerMalformedError(message string, params ...interface{}) error {
	return New(ERR_LEDGER_MALFORMED, message, params...)
}
func NewInvariantViolationError(message string, params ...interface{}) error {
	return New(ERR_INVARIANT_VIOLATION, message, params...)
}
func NewUtxoNotFoundError(message string, params ...interface{}) error {
	return New(ERR_UTXO_NOT_FOUND, message, params...)
}
func NewStateTransitionError(message string, params ...interface{}) error {
	return New(ERR_STATE_TRANSITION, message, params...)
}
func NewStorageError(message string, params ...interface{}) error {
	return New(ERR_STORAGE_ERROR, message, params...)
}
