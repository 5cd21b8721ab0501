package settings

import (
	"net/url"
	"strconv"
)

// Values returns the effective value of every key understood by ApplyConfigFile. Passwords in
// store URLs are redacted.
func (s *Settings) Values() map[string]string {
	return map[string]string{
		KeyLogLevel:                s.LogLevel,
		KeyLoggerType:              s.LoggerType,
		KeyDataFolder:              s.DataFolder,
		KeyPrometheusListenAddress: s.PrometheusListenAddress,

		KeyLedgerTransactions: s.Ledger.TransactionsFile,
		KeyLedgerInputs:       s.Ledger.InputsFile,
		KeyLedgerOutputs:      s.Ledger.OutputsFile,
		KeyLedgerOutputFolder: s.Ledger.OutputFolder,
		KeyLedgerReportFile:   s.Ledger.ReportFile,
		KeyLedgerUtxoFile:     s.Ledger.UtxoFile,

		KeyValidatorBlockSubsidy:     strconv.FormatInt(s.Validator.BlockSubsidy, 10),
		KeyValidatorProgressInterval: strconv.Itoa(s.Validator.ProgressInterval),
		KeyValidatorUtxoStore:        redacted(s.Validator.UtxoStore),

		KeyAnalyticsEnabled:        strconv.FormatBool(s.Analytics.Enabled),
		KeyAnalyticsFile:           s.Analytics.File,
		KeyAnalyticsBlocksPerMonth: strconv.FormatInt(s.Analytics.BlocksPerMonth, 10),

		KeyExportStoreURL:  redacted(s.Export.StoreURL),
		KeyExportBatchSize: strconv.Itoa(s.Export.BatchSize),
	}
}

func redacted(u *url.URL) string {
	if u == nil {
		return ""
	}

	return u.Redacted()
}
