// Package analytics computes descriptive statistics over a validated ledger: the UTXO set as of
// the last block, block occupancy, coins received by mining keys and transaction fees.
//
// Values are reported in whole coins.
package analytics

import (
	"os"
	"path/filepath"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/bsv-blockchain/ledger-validator/model"
	"github.com/bsv-blockchain/ledger-validator/services/persister"
	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/ordishs/gocore"
)

var stat = gocore.NewStat("analytics")

// Relations is the read side of a validated ledger.
type Relations interface {
	TransactionIDs() []int64
	Transaction(txID int64) (model.Transaction, bool)
	Transactions() []model.Transaction
	Inputs(txID int64) []model.Input
	Outputs(txID int64) []model.Output
	Output(outputID int64) (model.Output, bool)
}

type Analytics struct {
	UTXO           UTXOSummary    `json:"utxo"`
	BlockOccupancy BlockOccupancy `json:"blockOccupancy"`
	ReceivedCoins  ReceivedCoins  `json:"receivedCoins"`
	Fees           Fees           `json:"fees"`
}

type Analyzer struct {
	logger          ulogger.Logger
	satoshisPerCoin int64
	blocksPerMonth  int64
}

func New(logger ulogger.Logger, tSettings *settings.Settings) *Analyzer {
	a := &Analyzer{
		logger:          logger,
		satoshisPerCoin: tSettings.Analytics.SatoshisPerCoin,
		blocksPerMonth:  tSettings.Analytics.BlocksPerMonth,
	}

	if a.satoshisPerCoin <= 0 {
		a.satoshisPerCoin = model.SatoshisPerCoin
	}

	if a.blocksPerMonth <= 0 {
		a.blocksPerMonth = settings.DefaultBlocksPerMonth
	}

	return a
}

// Analyse computes every statistic. utxos is the listing produced by the validation run.
func (a *Analyzer) Analyse(relations Relations, utxos []int64) (*Analytics, error) {
	start := gocore.CurrentTime()
	defer stat.NewStat("Analyse").AddTime(start)

	utxo, err := a.utxoSummary(relations, utxos)
	if err != nil {
		return nil, err
	}

	fees, err := a.fees(relations)
	if err != nil {
		return nil, err
	}

	analytics := &Analytics{
		UTXO:           utxo,
		BlockOccupancy: a.blockOccupancy(relations),
		ReceivedCoins:  a.receivedCoins(relations),
		Fees:           fees,
	}

	a.logger.Infof("[Analyzer] %d utxos worth %.8f coins, %d blocks, %d mining keys, %d transfers",
		utxo.Count, utxo.TotalValue, len(analytics.BlockOccupancy.PerBlock), len(analytics.ReceivedCoins.PerKey), len(fees.PerTransaction))

	return analytics, nil
}

// WriteFile writes analytics as indented JSON, creating the folder if needed.
func (a *Analyzer) WriteFile(path string, analytics *Analytics) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewStorageError("[Analyzer] failed to create folder for %s", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("[Analyzer] failed to create %s", path, err)
	}

	if err = persister.WriteJSON(f, analytics); err != nil {
		_ = f.Close()
		return errors.NewStorageError("[Analyzer] failed to write %s", path, err)
	}

	if err = f.Close(); err != nil {
		return errors.NewStorageError("[Analyzer] failed to close %s", path, err)
	}

	a.logger.Infof("[Analyzer] wrote %s", path)

	return nil
}

func (a *Analyzer) coins(satoshis int64) float64 {
	return a.coinsOf(model.AmountOf(satoshis))
}

func (a *Analyzer) coinsOf(satoshis model.Amount) float64 {
	return satoshis.Float64() / float64(a.satoshisPerCoin)
}
