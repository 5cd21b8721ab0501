package errors

import "strconv"

// ERR is the error code carried by every *Error.
type ERR int32

//nolint:revive,stylecheck // names mirror the wire enum
const (
	ERR_UNKNOWN             ERR = 0
	ERR_INVALID_ARGUMENT    ERR = 1
	ERR_NOT_FOUND           ERR = 3
	ERR_PROCESSING          ERR = 4
	ERR_CONFIGURATION       ERR = 5
	ERR_ERROR               ERR = 9
	ERR_TX_INVALID          ERR = 30
	ERR_TX_NOT_FOUND        ERR = 31
	ERR_LEDGER_MALFORMED    ERR = 40
	ERR_INVARIANT_VIOLATION ERR = 41
	ERR_UTXO_NOT_FOUND      ERR = 42
	ERR_STATE_TRANSITION    ERR = 50
	ERR_STORAGE_ERROR       ERR = 69
)

var (
	ERR_name = map[int32]string{
		0:  "UNKNOWN",
		1:  "INVALID_ARGUMENT",
		3:  "NOT_FOUND",
		4:  "PROCESSING",
		5:  "CONFIGURATION",
		9:  "ERROR",
		30: "TX_INVALID",
		31: "TX_NOT_FOUND",
		40: "LEDGER_MALFORMED",
		41: "INVARIANT_VIOLATION",
		42: "UTXO_NOT_FOUND",
		50: "STATE_TRANSITION",
		69: "STORAGE_ERROR",
	}

	ERR_value = func() map[string]int32 {
		m := make(map[string]int32, len(ERR_name))
		for k, v := range ERR_name {
			m[v] = k
		}

		return m
	}()
)

func (x ERR) Enum() *ERR {
	p := new(ERR)
	*p = x

	return p
}

func (x ERR) String() string {
	if name, ok := ERR_name[int32(x)]; ok {
		return name
	}

	return strconv.Itoa(int(x))
}
