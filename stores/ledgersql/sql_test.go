package ledgersql

import (
	"context"
	"net/url"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/bsv-blockchain/ledger-validator/services/validator"
	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/bsv-blockchain/ledger-validator/stores/ledger"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/bsv-blockchain/ledger-validator/util"
	"github.com/bsv-blockchain/ledger-validator/util/usql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRelations() *ledger.Relations {
	return ledger.New(
		[]model.Transaction{{ID: 1, BlockID: 0}, {ID: 2, BlockID: 1}},
		[]model.Input{{TxID: 1, SignerKeyID: 0, SpentOutputID: -1}, {TxID: 2, SignerKeyID: 5, SpentOutputID: 10}},
		[]model.Output{{ID: 10, TxID: 1, RecipientKeyID: 5, Value: 5_000_000_000}, {ID: 20, TxID: 2, RecipientKeyID: 7, Value: 60}, {ID: 21, TxID: 2, RecipientKeyID: 8, Value: 30}},
	)
}

func testReport(t *testing.T) *validator.Report {
	report := validator.NewReport()
	require.NoError(t, report.Record(model.ReasonNotEnoughValue, 4))
	require.NoError(t, report.Record(model.ReasonNotInUtxo, 3))

	return report
}

func TestInsertStatement(t *testing.T) {
	assert.Equal(t, "INSERT INTO utxos (output_id) VALUES ($1)", insertStatement("utxos", []string{"output_id"}, 1))
	assert.Equal(t, "INSERT INTO rejections (tx_id, reason) VALUES ($1, $2), ($3, $4)", insertStatement("rejections", []string{"tx_id", "reason"}, 2))
}

func TestExportMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	s := NewWithDB(ulogger.TestLogger{}, &usql.DB{DB: db}, util.Postgres, 2)

	mock.ExpectBegin()

	for _, table := range []string{"rejections", "utxos", "outputs", "inputs", "transactions"} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions (id, block_id) VALUES ($1, $2), ($3, $4)")).
		WithArgs(int64(1), int64(0), int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inputs (tx_id, sig_id, out_id) VALUES ($1, $2, $3), ($4, $5, $6)")).
		WithArgs(int64(1), int64(0), int64(-1), int64(2), int64(5), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outputs (id, tx_id, pk_id, value) VALUES ($1, $2, $3, $4), ($5, $6, $7, $8)")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outputs (id, tx_id, pk_id, value) VALUES ($1, $2, $3, $4)")).
		WithArgs(int64(21), int64(2), int64(8), int64(30)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO utxos (output_id) VALUES ($1), ($2)")).
		WithArgs(int64(20), int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rejections (tx_id, reason) VALUES ($1, $2), ($3, $4)")).
		WithArgs(int64(3), "notInUtxo", int64(4), "notEnoughValue").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err = s.Export(context.Background(), testRelations(), testReport(t), []int64{20, 21})
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportMockRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	s := NewWithDB(ulogger.TestLogger{}, &usql.DB{DB: db}, util.Postgres, 0)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rejections")).WillReturnError(errors.NewStorageError("disk full"))
	mock.ExpectRollback()

	err = s.Export(context.Background(), testRelations(), validator.NewReport(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrStorageError))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountRowsUnknownTable(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	s := NewWithDB(ulogger.TestLogger{}, &usql.DB{DB: db}, util.Postgres, 0)

	_, err = s.CountRows(context.Background(), "users; DROP TABLE outputs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

func TestExportSqliteMemory(t *testing.T) {
	storeURL, err := url.Parse("sqlitememory:///ledger")
	require.NoError(t, err)

	tSettings := &settings.Settings{
		DataFolder: t.TempDir(),
		Export: settings.ExportSettings{
			BatchSize: 2,
		},
	}

	s, err := New(ulogger.TestLogger{}, storeURL, tSettings)
	require.NoError(t, err)

	defer s.Close()

	ctx := context.Background()

	// exporting twice replaces the previous content
	for i := 0; i < 2; i++ {
		require.NoError(t, s.Export(ctx, testRelations(), testReport(t), []int64{20, 21}))
	}

	for table, expected := range map[string]int{"transactions": 2, "inputs": 2, "outputs": 3, "utxos": 2, "rejections": 2} {
		count, err := s.CountRows(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, expected, count, table)
	}

	rejections, err := s.Rejections(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]model.Reason{3: model.ReasonNotInUtxo, 4: model.ReasonNotEnoughValue}, rejections)
}

func TestNewUnknownScheme(t *testing.T) {
	storeURL, err := url.Parse("mysql://localhost/ledger")
	require.NoError(t, err)

	_, err = New(ulogger.TestLogger{}, storeURL, &settings.Settings{})
	require.Error(t, err)
}
