package ledgersql

import (
	"context"
	"strconv"
	"strings"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/bsv-blockchain/ledger-validator/services/validator"
	"github.com/bsv-blockchain/ledger-validator/util/usql"
)

type rejection struct {
	txID   int64
	reason model.Reason
}

// Export replaces the content of every table inside a single transaction. Rows are inserted in
// batches of batchSize rows per statement.
func (s *SQL) Export(ctx context.Context, relations Relations, report *validator.Report, utxos []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStorageError("[LedgerSQL][Export] failed to begin transaction", err)
	}

	if err = s.export(ctx, tx, relations, report, utxos); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.NewStorageError("[LedgerSQL][Export] failed to commit", err)
	}

	s.logger.Infof("[LedgerSQL][Export] exported %d transactions, %d utxos and %d rejections", len(relations.Transactions()), len(utxos), report.TotalInvalid)

	return nil
}

func (s *SQL) export(ctx context.Context, tx *usql.Tx, relations Relations, report *validator.Report, utxos []int64) error {
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+tables[i]); err != nil {
			return errors.NewStorageError("[LedgerSQL][Export] failed to clear %s", tables[i], err)
		}
	}

	if err := insertBatched(ctx, tx, s.batchSize, "transactions", []string{"id", "block_id"}, relations.Transactions(),
		func(t model.Transaction) []interface{} {
			return []interface{}{t.ID, t.BlockID}
		}); err != nil {
		return err
	}

	if err := insertBatched(ctx, tx, s.batchSize, "inputs", []string{"tx_id", "sig_id", "out_id"}, relations.InputRows(),
		func(in model.Input) []interface{} {
			return []interface{}{in.TxID, in.SignerKeyID, in.SpentOutputID}
		}); err != nil {
		return err
	}

	if err := insertBatched(ctx, tx, s.batchSize, "outputs", []string{"id", "tx_id", "pk_id", "value"}, relations.OutputRows(),
		func(out model.Output) []interface{} {
			return []interface{}{out.ID, out.TxID, out.RecipientKeyID, out.Value}
		}); err != nil {
		return err
	}

	if err := insertBatched(ctx, tx, s.batchSize, "utxos", []string{"output_id"}, utxos,
		func(id int64) []interface{} {
			return []interface{}{id}
		}); err != nil {
		return err
	}

	return insertBatched(ctx, tx, s.batchSize, "rejections", []string{"tx_id", "reason"}, rejections(report),
		func(r rejection) []interface{} {
			return []interface{}{r.txID, r.reason.String()}
		})
}

// rejections lists the report in category order, then rejection order.
func rejections(report *validator.Report) []rejection {
	rows := make([]rejection, 0, report.TotalInvalid)

	for _, reason := range model.Reasons {
		for _, txID := range report.Bucket(reason).TxIDs {
			rows = append(rows, rejection{txID: txID, reason: reason})
		}
	}

	return rows
}

func insertBatched[T any](ctx context.Context, tx *usql.Tx, batchSize int, table string, columns []string, rows []T, values func(T) []interface{}) error {
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		batch := rows[start:end]
		args := make([]interface{}, 0, len(batch)*len(columns))

		for _, row := range batch {
			args = append(args, values(row)...)
		}

		if _, err := tx.ExecContext(ctx, insertStatement(table, columns, len(batch)), args...); err != nil {
			return errors.NewStorageError("[LedgerSQL][Export] failed to insert %d rows into %s", len(batch), table, err)
		}
	}

	return nil
}

// insertStatement builds a multi-row insert with numbered placeholders, which both postgres
// and sqlite accept.
func insertStatement(table string, columns []string, rows int) string {
	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(") VALUES ")

	n := 1

	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString("(")

		for c := range columns {
			if c > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(n))
			n++
		}

		sb.WriteString(")")
	}

	return sb.String()
}
