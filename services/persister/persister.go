// Package persister writes the outcome of a validation run: the cleaned relations as CSV, the
// validation report as JSON and the UTXO listing as one output id per line.
package persister

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/bsv-blockchain/ledger-validator/services/validator"
	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	"github.com/ordishs/gocore"
	"golang.org/x/sync/errgroup"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary
	stat = gocore.NewStat("persister")
)

// Relations is the read side of the ledger relations needed to write them out.
type Relations interface {
	Transactions() []model.Transaction
	InputRows() []model.Input
	OutputRows() []model.Output
}

type Persister struct {
	logger   ulogger.Logger
	settings *settings.Settings
}

func New(logger ulogger.Logger, tSettings *settings.Settings) *Persister {
	return &Persister{
		logger:   logger,
		settings: tSettings,
	}
}

// Write persists every artefact of a run concurrently. utxos must already be in the order they
// should be listed in.
func (p *Persister) Write(ctx context.Context, relations Relations, report *validator.Report, utxos []int64) error {
	start := gocore.CurrentTime()
	defer stat.NewStat("Write").AddTime(start)

	ledgerSettings := p.settings.Ledger

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		return p.writeFile(ledgerSettings.Path(ledgerSettings.ValidatedTransactionsFile), func(w io.Writer) error {
			return gocsv.Marshal(relations.Transactions(), w)
		})
	})

	g.Go(func() error {
		return p.writeFile(ledgerSettings.Path(ledgerSettings.ValidatedInputsFile), func(w io.Writer) error {
			return gocsv.Marshal(relations.InputRows(), w)
		})
	})

	g.Go(func() error {
		return p.writeFile(ledgerSettings.Path(ledgerSettings.ValidatedOutputsFile), func(w io.Writer) error {
			return gocsv.Marshal(relations.OutputRows(), w)
		})
	})

	g.Go(func() error {
		return p.writeFile(ledgerSettings.Path(ledgerSettings.ReportFile), func(w io.Writer) error {
			return WriteJSON(w, report)
		})
	})

	g.Go(func() error {
		return p.writeFile(ledgerSettings.Path(ledgerSettings.UtxoFile), func(w io.Writer) error {
			return WriteUTXOs(w, utxos)
		})
	})

	if err := g.Wait(); err != nil {
		return err
	}

	p.logger.Infof("[Persister] wrote validated ledger and %d utxos to %s", len(utxos), ledgerSettings.OutputFolder)

	return nil
}

func (p *Persister) writeFile(path string, write func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewStorageError("[Persister] failed to create folder for %s", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("[Persister] failed to create %s", path, err)
	}

	bw := bufio.NewWriter(f)

	if err = write(bw); err != nil {
		_ = f.Close()
		return errors.NewStorageError("[Persister] failed to write %s", path, err)
	}

	if err = bw.Flush(); err != nil {
		_ = f.Close()
		return errors.NewStorageError("[Persister] failed to flush %s", path, err)
	}

	if err = f.Close(); err != nil {
		return errors.NewStorageError("[Persister] failed to close %s", path, err)
	}

	p.logger.Debugf("[Persister] wrote %s", path)

	return nil
}

// WriteJSON encodes v indented by four spaces, followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}

	if _, err = w.Write(b); err != nil {
		return err
	}

	_, err = w.Write([]byte("\n"))

	return err
}

// WriteUTXOs writes one id per line.
func WriteUTXOs(w io.Writer, utxos []int64) error {
	buf := make([]byte, 0, 24)

	for _, id := range utxos {
		buf = strconv.AppendInt(buf[:0], id, 10)
		buf = append(buf, '\n')

		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}
