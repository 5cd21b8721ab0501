package errors

import "fmt"

// TxRejectedErrData describes a transaction excised from the ledger.
type TxRejectedErrData struct {
	TxID   int64  `json:"txId"`
	Reason string `json:"reason"`
}

func (e *TxRejectedErrData) Error() string {
	return fmt.Sprintf("tx %d rejected: %s", e.TxID, e.Reason)
}

func (e *TxRejectedErrData) EncodeErrorData() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return []byte{}
	}

	return data
}

func (e *TxRejectedErrData) GetData(key string) interface{} {
	switch key {
	case "txId":
		return e.TxID
	case "reason":
		return e.Reason
	}

	return nil
}

func (e *TxRejectedErrData) SetData(key string, value interface{}) {
	switch key {
	case "txId":
		if v, ok := value.(int64); ok {
			e.TxID = v
		}
	case "reason":
		if v, ok := value.(string); ok {
			e.Reason = v
		}
	}
}

func NewTxRejectedErr(txID int64, reason string) error {
	data := &TxRejectedErrData{
		TxID:   txID,
		Reason: reason,
	}

	err := New(ERR_TX_INVALID, data.Error())
	err.data = data

	return err
}
