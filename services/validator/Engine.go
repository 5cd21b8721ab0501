// Package validator replays a ledger in transaction id order, rejecting every transaction that
// breaks the UTXO rules and rebuilding the set of unspent outputs as of the last transaction.
//
// The replay is a sequential fold: whether transaction n is accepted depends on the outcome of
// every transaction before it, so an Engine never runs work concurrently.
package validator

import (
	"context"
	"time"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/bsv-blockchain/ledger-validator/stores/utxo"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/looplab/fsm"
	"github.com/ordishs/gocore"
)

// Ledger is the view of the ledger relations the engine replays and prunes.
type Ledger interface {
	OutputLookup
	TransactionIDs() []int64
	Inputs(txID int64) []model.Input
	Outputs(txID int64) []model.Output
	Delete(txID int64) error
	Compact() int
}

type Stats struct {
	Processed         int `json:"processed"`
	CoinbaseAccepted  int `json:"coinbaseAccepted"`
	TransfersAccepted int `json:"transfersAccepted"`
	Rejected          int `json:"rejected"`
	UtxosInserted     int `json:"utxosInserted"`
	UtxosRemoved      int `json:"utxosRemoved"`
	RowsCompacted     int `json:"rowsCompacted"`
}

// Engine owns the UTXO set and the relations for the duration of a single run.
type Engine struct {
	logger       ulogger.Logger
	settings     *settings.Settings
	relations    Ledger
	utxos        utxo.Store
	report       *Report
	stats        Stats
	stateMachine *fsm.FSM
	stat         *gocore.Stat
}

func New(logger ulogger.Logger, tSettings *settings.Settings, relations Ledger, utxos utxo.Store) *Engine {
	initPrometheusMetrics()

	e := &Engine{
		logger:    logger,
		settings:  tSettings,
		relations: relations,
		utxos:     utxos,
		report:    NewReport(),
		stat:      gocore.NewStat("validator"),
	}

	e.stateMachine = newRunStateMachine(fsm.Callbacks{
		"enter_state": func(_ context.Context, event *fsm.Event) {
			e.logger.Debugf("[Engine] %s: %s -> %s", event.Event, event.Src, event.Dst)
		},
	})

	return e
}

// State returns the current run state.
func (e *Engine) State() string {
	return e.stateMachine.Current()
}

func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) Report() *Report {
	return e.report
}

// Validate runs the coinbase pre-pass, the ordered replay and the final compaction. It can only
// be called once per Engine. Rejections are collected in the returned report; an error means the
// ledger could not be processed at all and the relations must not be used.
func (e *Engine) Validate(ctx context.Context) (*Report, error) {
	if current := e.stateMachine.Current(); current != StateIdle {
		return nil, errors.NewStateTransitionError("[Engine][Validate] cannot start a run in state %s", current)
	}

	start := gocore.CurrentTime()
	defer func() {
		prometheusValidate.Observe(time.Since(start).Seconds())
	}()

	if err := e.event(ctx, EventCheckCoinbase); err != nil {
		return nil, err
	}

	if err := e.phase("CoinbaseCheck", e.checkCoinbase); err != nil {
		return nil, e.fail(ctx, err)
	}

	if err := e.event(ctx, EventReplay); err != nil {
		return nil, err
	}

	if err := e.phase("Replay", e.replay); err != nil {
		return nil, e.fail(ctx, err)
	}

	if err := e.event(ctx, EventCompact); err != nil {
		return nil, err
	}

	if err := e.phase("Compact", e.compact); err != nil {
		return nil, e.fail(ctx, err)
	}

	if err := e.event(ctx, EventFinish); err != nil {
		return nil, err
	}

	e.logger.Infof("[Engine][Validate] processed %d transactions in %s: %d coinbase, %d transfers accepted, %d rejected, %d utxos",
		e.stats.Processed, time.Since(start), e.stats.CoinbaseAccepted, e.stats.TransfersAccepted, e.report.TotalInvalid, e.utxos.Len())

	return e.report, nil
}

func (e *Engine) phase(name string, fn func() error) error {
	start := gocore.CurrentTime()
	defer func() {
		e.stat.NewStat(name).AddTime(start)
		prometheusValidatePhase.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	return fn()
}

func (e *Engine) event(ctx context.Context, event string) error {
	if err := e.stateMachine.Event(ctx, event); err != nil {
		return errors.NewStateTransitionError("[Engine] %s from %s", event, e.stateMachine.Current(), err)
	}

	return nil
}

func (e *Engine) fail(ctx context.Context, err error) error {
	e.logger.Errorf("[Engine][Validate] run failed in state %s: %v", e.stateMachine.Current(), err)

	if fsmErr := e.stateMachine.Event(ctx, EventFail); fsmErr != nil {
		e.logger.Warnf("[Engine][Validate] could not move to %s: %v", StateFailed, fsmErr)
	}

	return err
}

func (e *Engine) checkCoinbase() error {
	invalid := InvalidCoinbases(e.relations, e.settings.Validator.BlockSubsidy)

	for _, txID := range invalid {
		if err := e.reject(txID, model.ReasonInvalidCoinbase); err != nil {
			return err
		}
	}

	e.logger.Infof("[Engine][CoinbaseCheck] rejected %d coinbase transactions below %d satoshis", len(invalid), e.settings.Validator.BlockSubsidy)

	return nil
}

func (e *Engine) replay() error {
	txIDs := e.relations.TransactionIDs()
	progressInterval := e.settings.Validator.ProgressInterval

	for i, txID := range txIDs {
		if err := e.process(txID); err != nil {
			return err
		}

		if progressInterval > 0 && (i+1)%progressInterval == 0 {
			e.logger.Infof("[Engine][Replay] %d/%d transactions, %d utxos", i+1, len(txIDs), e.utxos.Len())
		}
	}

	prometheusUtxoSetSize.Set(float64(e.utxos.Len()))

	return nil
}

func (e *Engine) process(txID int64) error {
	inputs := e.relations.Inputs(txID)
	if len(inputs) == 0 {
		return errors.NewLedgerMalformedError("[Engine][Replay] tx %d has no inputs", txID)
	}

	outputs := e.relations.Outputs(txID)

	e.stats.Processed++
	prometheusTransactionsProcessed.Inc()

	if model.IsCoinbaseTx(inputs) {
		e.insertOutputs(outputs)
		e.stats.CoinbaseAccepted++
		prometheusTransactionsAccepted.WithLabelValues("coinbase").Inc()

		return nil
	}

	reason, err := Classify(inputs, outputs, e.relations, e.utxos)
	if err != nil {
		return errors.NewInvariantViolationError("[Engine][Replay] tx %d", txID, err)
	}

	if reason.Rejected() {
		return e.reject(txID, reason)
	}

	for _, in := range inputs {
		if err = e.utxos.Remove(in.SpentOutputID); err != nil {
			return errors.NewInvariantViolationError("[Engine][Replay] tx %d spending %d", txID, in.SpentOutputID, err)
		}

		e.stats.UtxosRemoved++
	}

	e.insertOutputs(outputs)
	e.stats.TransfersAccepted++
	prometheusTransactionsAccepted.WithLabelValues("transfer").Inc()

	return nil
}

// compact drops the rows of rejected transactions, then checks that every utxo still resolves
// to an output row.
func (e *Engine) compact() error {
	e.stats.RowsCompacted = e.relations.Compact()

	for _, id := range e.utxos.Snapshot() {
		if _, ok := e.relations.Output(id); !ok {
			return errors.NewInvariantViolationError("[Engine][Compact] utxo %d has no output row", id)
		}
	}

	return nil
}

func (e *Engine) insertOutputs(outputs []model.Output) {
	for _, out := range outputs {
		e.utxos.Insert(out.ID)
		e.stats.UtxosInserted++
	}
}

func (e *Engine) reject(txID int64, reason model.Reason) error {
	if err := e.report.Record(reason, txID); err != nil {
		return err
	}

	if err := e.relations.Delete(txID); err != nil {
		return errors.NewInvariantViolationError("[Engine] rejected tx %d could not be deleted", txID, err)
	}

	e.stats.Rejected++
	prometheusTransactionsRejected.WithLabelValues(reason.String()).Inc()

	if rejection := e.report.Err(txID); errors.IsRejection(rejection) {
		e.logger.Debugf("[Engine] %v", rejection)
	}

	return nil
}
