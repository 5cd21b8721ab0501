package settings

import (
	"net/url"
	"path/filepath"
)

type LedgerSettings struct {
	TransactionsFile          string
	InputsFile                string
	OutputsFile               string
	OutputFolder              string
	ValidatedTransactionsFile string
	ValidatedInputsFile       string
	ValidatedOutputsFile      string
	ReportFile                string
	UtxoFile                  string
}

// Path resolves a file name against the output folder.
func (l LedgerSettings) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(l.OutputFolder, name)
}

type ValidatorSettings struct {
	BlockSubsidy     int64
	ProgressInterval int
	UtxoStore        *url.URL
}

type AnalyticsSettings struct {
	Enabled         bool
	File            string
	SatoshisPerCoin int64
	BlocksPerMonth  int64
}

type ExportSettings struct {
	StoreURL             *url.URL
	BatchSize            int
	PostgresMaxIdleConns int
	PostgresMaxOpenConns int
}

type Settings struct {
	ClientName              string
	DataFolder              string
	LogLevel                string
	LoggerType              string
	ProfilerAddr            string
	PrometheusEndpoint      string
	PrometheusListenAddress string
	ConfigFile              string
	Ledger                  LedgerSettings
	Validator               ValidatorSettings
	Analytics               AnalyticsSettings
	Export                  ExportSettings
}
