// Package ledgersql exports a validated ledger to postgres or sqlite so it can be queried with
// plain SQL: the three relations, the final UTXO set and the rejected transactions.
package ledgersql

import (
	"context"
	"net/url"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/bsv-blockchain/ledger-validator/util"
	"github.com/bsv-blockchain/ledger-validator/util/usql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const defaultBatchSize = 500

var tables = []string{"transactions", "inputs", "outputs", "utxos", "rejections"}

// Relations is the read side of the ledger relations that gets exported.
type Relations interface {
	Transactions() []model.Transaction
	InputRows() []model.Input
	OutputRows() []model.Output
}

type SQL struct {
	logger    ulogger.Logger
	db        *usql.DB
	engine    util.SQLEngine
	batchSize int
}

func New(logger ulogger.Logger, storeURL *url.URL, tSettings *settings.Settings) (*SQL, error) {
	if storeURL == nil {
		return nil, errors.NewConfigurationError("[LedgerSQL] no export store url configured")
	}

	db, err := util.InitSQLDB(logger, storeURL, tSettings)
	if err != nil {
		return nil, errors.NewStorageError("[LedgerSQL] failed to init sql db", err)
	}

	engine := util.SQLEngine(storeURL.Scheme)

	switch engine {
	case util.Postgres:
		err = createPostgresSchema(db)
	case util.Sqlite, util.SqliteMemory:
		err = createSqliteSchema(db)
	default:
		err = errors.NewConfigurationError("[LedgerSQL] unknown database engine: %s", storeURL.Scheme)
	}

	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewWithDB(logger, db, engine, tSettings.Export.BatchSize), nil
}

// NewWithDB uses an already opened database whose schema exists.
func NewWithDB(logger ulogger.Logger, db *usql.DB, engine util.SQLEngine, batchSize int) *SQL {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &SQL{
		logger:    logger,
		db:        db,
		engine:    engine,
		batchSize: batchSize,
	}
}

func (s *SQL) GetDB() *usql.DB {
	return s.db
}

func (s *SQL) GetDBEngine() util.SQLEngine {
	return s.engine
}

func (s *SQL) Close() error {
	return s.db.Close()
}

// CountRows returns the number of rows of one of the exported tables.
func (s *SQL) CountRows(ctx context.Context, table string) (int, error) {
	if !isTable(table) {
		return 0, errors.NewInvalidArgumentError("[LedgerSQL] unknown table %s", table)
	}

	var count int

	//nolint:gosec // table is checked against the fixed list above
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return 0, errors.NewStorageError("[LedgerSQL] failed to count %s", table, err)
	}

	return count, nil
}

// Rejections reads back the exported rejections.
func (s *SQL) Rejections(ctx context.Context) (map[int64]model.Reason, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT tx_id, reason FROM rejections ORDER BY tx_id")
	if err != nil {
		return nil, errors.NewStorageError("[LedgerSQL] failed to query rejections", err)
	}

	defer rows.Close()

	rejections := make(map[int64]model.Reason)

	for rows.Next() {
		var (
			txID   int64
			reason string
		)

		if err = rows.Scan(&txID, &reason); err != nil {
			return nil, errors.NewStorageError("[LedgerSQL] failed to scan rejection", err)
		}

		parsed, ok := model.ParseReason(reason)
		if !ok {
			return nil, errors.NewProcessingError("[LedgerSQL] tx %d has unknown reason %q", txID, reason)
		}

		rejections[txID] = parsed
	}

	if err = rows.Err(); err != nil {
		return nil, errors.NewStorageError("[LedgerSQL] failed to read rejections", err)
	}

	return rejections, nil
}

func isTable(table string) bool {
	for _, t := range tables {
		if t == table {
			return true
		}
	}

	return false
}

func createPostgresSchema(db *usql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			 id       BIGINT PRIMARY KEY
			,block_id BIGINT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_block_id ON transactions (block_id);`,
		`CREATE TABLE IF NOT EXISTS inputs (
			 tx_id  BIGINT NOT NULL
			,sig_id BIGINT NOT NULL
			,out_id BIGINT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_inputs_tx_id ON inputs (tx_id);`,
		`CREATE TABLE IF NOT EXISTS outputs (
			 id    BIGINT NOT NULL
			,tx_id BIGINT NOT NULL
			,pk_id BIGINT NOT NULL
			,value BIGINT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_outputs_id ON outputs (id);`,
		`CREATE INDEX IF NOT EXISTS idx_outputs_tx_id ON outputs (tx_id);`,
		`CREATE TABLE IF NOT EXISTS utxos (
			 output_id BIGINT PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS rejections (
			 tx_id  BIGINT PRIMARY KEY
			,reason VARCHAR(32) NOT NULL
		);`,
	}

	return execSchema(db, statements)
}

func createSqliteSchema(db *usql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			 id       INTEGER PRIMARY KEY
			,block_id INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_block_id ON transactions (block_id);`,
		`CREATE TABLE IF NOT EXISTS inputs (
			 tx_id  INTEGER NOT NULL
			,sig_id INTEGER NOT NULL
			,out_id INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_inputs_tx_id ON inputs (tx_id);`,
		`CREATE TABLE IF NOT EXISTS outputs (
			 id    INTEGER NOT NULL
			,tx_id INTEGER NOT NULL
			,pk_id INTEGER NOT NULL
			,value INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_outputs_id ON outputs (id);`,
		`CREATE INDEX IF NOT EXISTS idx_outputs_tx_id ON outputs (tx_id);`,
		`CREATE TABLE IF NOT EXISTS utxos (
			 output_id INTEGER PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS rejections (
			 tx_id  INTEGER PRIMARY KEY
			,reason TEXT NOT NULL
		);`,
	}

	return execSchema(db, statements)
}

func execSchema(db *usql.DB, statements []string) error {
	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return errors.NewStorageError("[LedgerSQL] could not create schema", err)
		}
	}

	return nil
}
