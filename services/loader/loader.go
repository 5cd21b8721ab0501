// Package loader reads the three ledger relations from CSV files.
//
// Headers name the columns, so their order does not matter and unknown columns (the row id of
// raw input files, for example) are ignored.
package loader

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/bsv-blockchain/ledger-validator/services/validator"
	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/bsv-blockchain/ledger-validator/stores/ledger"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	"github.com/ordishs/gocore"
	"golang.org/x/sync/errgroup"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary
	stat = gocore.NewStat("loader")
)

type Loader struct {
	logger   ulogger.Logger
	settings *settings.Settings
}

func New(logger ulogger.Logger, tSettings *settings.Settings) *Loader {
	return &Loader{
		logger:   logger,
		settings: tSettings,
	}
}

// Load reads the raw ledger files named in the settings.
func (l *Loader) Load(ctx context.Context) (*ledger.Relations, error) {
	return l.LoadFiles(ctx, l.settings.Ledger.TransactionsFile, l.settings.Ledger.InputsFile, l.settings.Ledger.OutputsFile)
}

// LoadValidated reads the files written by a previous validation run.
func (l *Loader) LoadValidated(ctx context.Context) (*ledger.Relations, error) {
	return l.LoadFiles(ctx,
		l.settings.Ledger.Path(l.settings.Ledger.ValidatedTransactionsFile),
		l.settings.Ledger.Path(l.settings.Ledger.ValidatedInputsFile),
		l.settings.Ledger.Path(l.settings.Ledger.ValidatedOutputsFile),
	)
}

// LoadFiles parses the three files concurrently and builds the relations.
func (l *Loader) LoadFiles(ctx context.Context, txFile, inputFile, outputFile string) (*ledger.Relations, error) {
	start := gocore.CurrentTime()
	defer stat.NewStat("LoadFiles").AddTime(start)

	var (
		txs     []model.Transaction
		inputs  []model.Input
		outputs []model.Output
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		return readFile(txFile, &txs)
	})

	g.Go(func() error {
		return readFile(inputFile, &inputs)
	})

	g.Go(func() error {
		return readFile(outputFile, &outputs)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return l.build(txs, inputs, outputs), nil
}

// LoadFrom parses the relations from already opened streams.
func (l *Loader) LoadFrom(txReader, inputReader, outputReader io.Reader) (*ledger.Relations, error) {
	var (
		txs     []model.Transaction
		inputs  []model.Input
		outputs []model.Output
	)

	if err := gocsv.Unmarshal(txReader, &txs); err != nil {
		return nil, errors.NewProcessingError("[Loader] failed to parse transactions", err)
	}

	if err := gocsv.Unmarshal(inputReader, &inputs); err != nil {
		return nil, errors.NewProcessingError("[Loader] failed to parse inputs", err)
	}

	if err := gocsv.Unmarshal(outputReader, &outputs); err != nil {
		return nil, errors.NewProcessingError("[Loader] failed to parse outputs", err)
	}

	return l.build(txs, inputs, outputs), nil
}

func (l *Loader) build(txs []model.Transaction, inputs []model.Input, outputs []model.Output) *ledger.Relations {
	txs, dropped := DedupeTransactions(txs)
	if dropped > 0 {
		l.logger.Infof("[Loader] dropped %d duplicate transaction rows", dropped)
	}

	relations := ledger.New(txs, inputs, outputs)

	if orphans := relations.Orphans(); len(orphans) > 0 {
		l.logger.Warnf("[Loader] %d transaction ids have input or output rows but no transaction row, they will not be validated", len(orphans))
	}

	l.logger.Infof("[Loader] loaded %d transactions, %d inputs, %d outputs", len(txs), len(inputs), len(outputs))

	return relations
}

func readFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.NewProcessingError("[Loader] failed to open %s", path, err)
	}

	defer f.Close()

	if err = gocsv.Unmarshal(bufio.NewReader(f), out); err != nil {
		return errors.NewProcessingError("[Loader] failed to parse %s", path, err)
	}

	return nil
}

// DedupeTransactions keeps the last row of every transaction id, in record order, and returns
// the number of rows dropped.
func DedupeTransactions(txs []model.Transaction) ([]model.Transaction, int) {
	last := make(map[int64]int, len(txs))
	for i, tx := range txs {
		last[tx.ID] = i
	}

	if len(last) == len(txs) {
		return txs, 0
	}

	deduped := make([]model.Transaction, 0, len(last))

	for i, tx := range txs {
		if last[tx.ID] == i {
			deduped = append(deduped, tx)
		}
	}

	return deduped, len(txs) - len(deduped)
}

// ReadUTXOs parses a UTXO listing, one output id per line. Blank lines are skipped.
func ReadUTXOs(r io.Reader) ([]int64, error) {
	ids := make([]int64, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, errors.NewProcessingError("[Loader] invalid utxo id %q", line, err)
		}

		ids = append(ids, id)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewProcessingError("[Loader] failed to read utxo listing", err)
	}

	return ids, nil
}

// ReadUTXOFile parses the UTXO listing written by a previous validation run.
func (l *Loader) ReadUTXOFile() ([]int64, error) {
	path := l.settings.Ledger.Path(l.settings.Ledger.UtxoFile)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewProcessingError("[Loader] failed to open %s", path, err)
	}

	defer f.Close()

	return ReadUTXOs(f)
}

// ReadReport decodes a validation report. Categories missing from the document are left empty.
func ReadReport(r io.Reader) (*validator.Report, error) {
	report := validator.NewReport()

	if err := json.NewDecoder(r).Decode(report); err != nil {
		return nil, errors.NewProcessingError("[Loader] failed to decode validation report", err)
	}

	for _, reason := range model.Reasons {
		bucket := report.Bucket(reason)
		if bucket.TxIDs == nil {
			bucket.TxIDs = make([]int64, 0)
		}
	}

	return report, nil
}

// ReadReportFile decodes the report written by a previous validation run.
func (l *Loader) ReadReportFile() (*validator.Report, error) {
	path := l.settings.Ledger.Path(l.settings.Ledger.ReportFile)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewProcessingError("[Loader] failed to open %s", path, err)
	}

	defer f.Close()

	return ReadReport(f)
}
