package model

// Reason is the single category assigned to a rejected transaction.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotInUtxo
	ReasonNegDestPk
	ReasonInvalidPk
	ReasonNegOutput
	ReasonNotEnoughValue
	ReasonInvalidCoinbase
)

// Reasons lists every rejection category in report order.
var Reasons = []Reason{
	ReasonNotInUtxo,
	ReasonNegDestPk,
	ReasonInvalidPk,
	ReasonNegOutput,
	ReasonNotEnoughValue,
	ReasonInvalidCoinbase,
}

var reasonNames = map[Reason]string{
	ReasonNone:            "none",
	ReasonNotInUtxo:       "notInUtxo",
	ReasonNegDestPk:       "negDestPk",
	ReasonInvalidPk:       "invalidPk",
	ReasonNegOutput:       "negOutput",
	ReasonNotEnoughValue:  "notEnoughValue",
	ReasonInvalidCoinbase: "invalidCoinbase",
}

// String returns the report key of the reason.
func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}

	return "unknown"
}

// ParseReason is the inverse of String.
func ParseReason(s string) (Reason, bool) {
	for r, name := range reasonNames {
		if name == s {
			return r, true
		}
	}

	return ReasonNone, false
}

// Rejected reports whether r is a rejection category.
func (r Reason) Rejected() bool {
	return r != ReasonNone
}
