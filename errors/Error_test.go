package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewCustomError(t *testing.T) {
	err := New(ERR_NOT_FOUND, "resource not found")
	require.NotNil(t, err)
	require.Equal(t, ERR_NOT_FOUND, err.Code())
	require.Equal(t, "resource not found", err.Message())

	secondErr := New(ERR_INVALID_ARGUMENT, "[Engine][%s] failed to replay: ", "_test_string_", err)
	thirdErr := New(ERR_INVARIANT_VIOLATION, "[Engine][%s] failed to remove utxo: ", "_test_string_", secondErr)
	anotherErr := New(ERR_INVARIANT_VIOLATION, "another invariant violation")
	fourthErr := New(ERR_PROCESSING, "older error: ", thirdErr)
	fifthErr := New(ERR_LEDGER_MALFORMED, "ledger malformed", fourthErr)

	require.True(t, anotherErr.Is(thirdErr))
	require.True(t, fourthErr.Is(New(ERR_INVARIANT_VIOLATION, "")))
	require.True(t, fourthErr.Is(ErrInvariantViolation))

	require.True(t, fourthErr.Is(err))
	require.True(t, fifthErr.Is(thirdErr))
	require.True(t, fifthErr.Is(err))

	require.False(t, anotherErr.Is(fourthErr))
	require.False(t, fifthErr.Is(ErrTxNotFound))
}

func Test_FmtErrorCustomError(t *testing.T) {
	err := New(ERR_NOT_FOUND, "resource not found")

	fmtError := fmt.Errorf("error: %w", err)
	require.NotNil(t, fmtError)

	secondErr := New(ERR_INVALID_ARGUMENT, "[Loader][%s] failed: ", "_test_string_", fmtError)
	require.NotNil(t, secondErr)

	// If we FMT Err, then they won't be recognized as equal
	require.False(t, secondErr.Is(err))

	altErr := New(ERR_INVALID_ARGUMENT, "invalid argument", err)
	require.True(t, secondErr.Is(altErr))
}

func Test_ErrorIs(t *testing.T) {
	codes := []ERR{
		ERR_NOT_FOUND,
		ERR_TX_INVALID,
		ERR_INVARIANT_VIOLATION,
		ERR_LEDGER_MALFORMED,
		ERR_UTXO_NOT_FOUND,
		ERR_UNKNOWN,
		ERR_INVALID_ARGUMENT,
	}

	for _, code := range codes {
		t.Run(code.String(), func(t *testing.T) {
			err := New(code, "some message")
			require.True(t, errors.Is(err, New(code, "")))
		})
	}
}

func Test_ErrorWrapWithAdditionalContext(t *testing.T) {
	originalErr := New(ERR_UTXO_NOT_FOUND, "original error")
	wrappedErr := New(ERR_INVARIANT_VIOLATION, "Some more additional context", originalErr)

	require.True(t, errors.Is(wrappedErr, originalErr))
	require.True(t, errors.Is(wrappedErr, ErrUtxoNotFound))
	require.Contains(t, wrappedErr.Error(), "Some more additional context")
}

func Test_ErrorEquality(t *testing.T) {
	err1 := New(ERR_NOT_FOUND, "resource not found")
	err2 := New(ERR_NOT_FOUND, "resource not found")
	require.True(t, err1.Is(err2))

	err2 = New(ERR_NOT_FOUND, "invalid argument")
	require.True(t, err1.Is(err2))

	err2 = New(ERR_INVALID_ARGUMENT, "resource not found")
	require.False(t, err1.Is(err2))
}

func Test_UnwrapChain(t *testing.T) {
	baseErr := New(ERR_INVARIANT_VIOLATION, "base error")
	wrappedOnce := fmt.Errorf("error wrapped once: %w", baseErr)
	wrappedTwice := fmt.Errorf("error wrapped twice: %w", wrappedOnce)

	require.True(t, errors.Is(wrappedTwice, baseErr))
	require.True(t, errors.Is(wrappedTwice, wrappedOnce))
}

func Test_InvalidCode(t *testing.T) {
	err := New(ERR(1234), "whatever")
	require.Equal(t, "invalid error code", err.Message())
	require.Equal(t, "1234", ERR(1234).String())
}

func Test_TxRejectedError(t *testing.T) {
	rejected := NewTxRejectedErr(42, "notInUtxo")
	require.True(t, Is(rejected, ErrTxInvalid))
	require.True(t, IsRejection(rejected))
	require.False(t, IsFatal(rejected))

	var data *TxRejectedErrData
	require.True(t, AsData(rejected, &data))
	assert.Equal(t, int64(42), data.TxID)
	assert.Equal(t, "notInUtxo", data.Reason)

	wrapped := New(ERR_PROCESSING, "wrapping", rejected)
	require.True(t, AsData(wrapped, &data))
	require.True(t, wrapped.As(&data))

	other := New(ERR_INVARIANT_VIOLATION, "not a rejection")
	require.False(t, IsRejection(other))
	require.True(t, IsFatal(other))
}

func Test_ErrorData(t *testing.T) {
	err := New(ERR_PROCESSING, "with data")
	err.SetData("tx", 7)
	require.Equal(t, 7, err.GetData("tx"))

	data, dataErr := GetErrorData(ERR_TX_INVALID, (&TxRejectedErrData{TxID: 3, Reason: "negOutput"}).EncodeErrorData())
	require.NoError(t, dataErr)
	require.Equal(t, int64(3), data.GetData("txId"))
	require.Equal(t, "negOutput", data.GetData("reason"))
}

func Test_JoinWithMultipleErrs(t *testing.T) {
	err1 := New(ERR_NOT_FOUND, "not found")
	err2 := New(ERR_TX_NOT_FOUND, "tx not found")

	joinedErr := Join(err1, nil, err2)
	require.NotNil(t, joinedErr)
	require.Equal(t, "Error: NOT_FOUND (error code: 3), Message: not found, Error: TX_NOT_FOUND (error code: 31), Message: tx not found", joinedErr.Error())

	require.Nil(t, Join(nil, nil))
}

func TestErrorString(t *testing.T) {
	err := errors.New("some error")

	thisErr := NewStorageError("failed to export rows [%s:%d]", "outputs", 10, err)

	assert.Equal(t, "Error: STORAGE_ERROR (error code: 69), Message: failed to export rows [outputs:10], Wrapped err: Error: UNKNOWN (error code: 0), Message: some error", thisErr.Error())
}
