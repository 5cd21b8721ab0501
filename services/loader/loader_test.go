package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	transactionsCSV = "id,block_id\n1,0\n2,1\n1,5\n"
	inputsCSV       = "id,tx_id,sig_id,out_id\n1,1,0,-1\n2,2,5,10\n"
	outputsCSV      = "id,tx_id,pk_id,value\n10,1,5,5000000000\n20,2,7,100\n"
)

func TestLoadFrom(t *testing.T) {
	l := New(ulogger.TestLogger{}, &settings.Settings{})

	relations, err := l.LoadFrom(strings.NewReader(transactionsCSV), strings.NewReader(inputsCSV), strings.NewReader(outputsCSV))
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, relations.TransactionIDs())

	// last occurrence wins
	tx, ok := relations.Transaction(1)
	require.True(t, ok)
	assert.Equal(t, int64(5), tx.BlockID)

	assert.Equal(t, []model.Input{{TxID: 2, SignerKeyID: 5, SpentOutputID: 10}}, relations.Inputs(2))

	out, ok := relations.Output(10)
	require.True(t, ok)
	assert.Equal(t, model.Output{ID: 10, TxID: 1, RecipientKeyID: 5, Value: 5_000_000_000}, out)
}

func TestLoadFromColumnOrder(t *testing.T) {
	l := New(ulogger.TestLogger{}, &settings.Settings{})

	relations, err := l.LoadFrom(
		strings.NewReader("block_id,id\n3,9\n"),
		strings.NewReader("out_id,sig_id,tx_id\n-1,0,9\n"),
		strings.NewReader("value,pk_id,tx_id,id\n7,1,9,90\n"),
	)
	require.NoError(t, err)

	tx, ok := relations.Transaction(9)
	require.True(t, ok)
	assert.Equal(t, int64(3), tx.BlockID)
	assert.True(t, model.IsCoinbaseTx(relations.Inputs(9)))
	assert.Equal(t, model.AmountOf(7), model.SumValues(relations.Outputs(9)))
}

func TestLoadFromInvalid(t *testing.T) {
	l := New(ulogger.TestLogger{}, &settings.Settings{})

	_, err := l.LoadFrom(strings.NewReader("id,block_id\nx,1\n"), strings.NewReader(inputsCSV), strings.NewReader(outputsCSV))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte(transactionsCSV), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inputs.csv"), []byte(inputsCSV), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "outputs.csv"), []byte(outputsCSV), 0o600))

	tSettings := &settings.Settings{
		Ledger: settings.LedgerSettings{
			TransactionsFile: filepath.Join(dir, "transactions.csv"),
			InputsFile:       filepath.Join(dir, "inputs.csv"),
			OutputsFile:      filepath.Join(dir, "outputs.csv"),
		},
	}

	relations, err := New(ulogger.TestLogger{}, tSettings).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, relations.Len())

	tSettings.Ledger.InputsFile = filepath.Join(dir, "missing.csv")

	_, err = New(ulogger.TestLogger{}, tSettings).Load(context.Background())
	require.Error(t, err)
}

func TestDedupeTransactions(t *testing.T) {
	txs, dropped := DedupeTransactions([]model.Transaction{{ID: 1, BlockID: 1}, {ID: 2, BlockID: 1}, {ID: 1, BlockID: 2}, {ID: 1, BlockID: 3}})
	assert.Equal(t, 2, dropped)
	assert.Equal(t, []model.Transaction{{ID: 2, BlockID: 1}, {ID: 1, BlockID: 3}}, txs)

	txs, dropped = DedupeTransactions([]model.Transaction{{ID: 1}, {ID: 2}})
	assert.Equal(t, 0, dropped)
	assert.Len(t, txs, 2)
}

func TestReadUTXOs(t *testing.T) {
	ids, err := ReadUTXOs(strings.NewReader("3\n\n1\n 2 \n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)

	_, err = ReadUTXOs(strings.NewReader("1\nabc\n"))
	require.Error(t, err)

	ids, err = ReadUTXOs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReadReport(t *testing.T) {
	report, err := ReadReport(strings.NewReader(`{
		"totalInvalid": 3,
		"notInUtxo": {"total": 2, "txIds": [4, 7]},
		"invalidCoinbase": {"total": 1, "txIds": [2]},
		"negOutput": {"total": 0, "txIds": null}
	}`))
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalInvalid)
	assert.Equal(t, []int64{4, 7}, report.NotInUtxo.TxIDs)
	assert.NotNil(t, report.NegOutput.TxIDs)
	assert.NotNil(t, report.NegDestPk.TxIDs)

	reason, ok := report.Contains(2)
	require.True(t, ok)
	assert.Equal(t, model.ReasonInvalidCoinbase, reason)

	_, err = ReadReport(strings.NewReader("{"))
	require.Error(t, err)
}
