package settings

const (
	// DefaultBlockSubsidy is the minimum total output value of a coinbase transaction, in satoshis.
	DefaultBlockSubsidy int64 = 5_000_000_000

	// DefaultSatoshisPerCoin converts satoshis to whole coins for reporting.
	DefaultSatoshisPerCoin int64 = 100_000_000

	// DefaultBlocksPerMonth assumes one block every 10 minutes: ((365 * 24 * 60) / 12) / 10.
	DefaultBlocksPerMonth int64 = 4380
)

func NewSettings() *Settings {
	return &Settings{
		ClientName:              getString("clientName", "ledger-validator"),
		DataFolder:              getString("dataFolder", "data"),
		LogLevel:                getString("logLevel", "INFO"),
		LoggerType:              getString("logger_type", "zerolog"),
		ProfilerAddr:            getString("profilerAddr", ""),
		PrometheusEndpoint:      getString("prometheusEndpoint", "/metrics"),
		PrometheusListenAddress: getString("prometheusListenAddress", ""),
		Ledger: LedgerSettings{
			TransactionsFile:          getString("ledger_transactionsFile", "data/transactions.csv"),
			InputsFile:                getString("ledger_inputsFile", "data/inputs.csv"),
			OutputsFile:               getString("ledger_outputsFile", "data/outputs.csv"),
			OutputFolder:              getString("ledger_outputFolder", "data"),
			ValidatedTransactionsFile: getString("ledger_validatedTransactionsFile", "validated_transactions.csv"),
			ValidatedInputsFile:       getString("ledger_validatedInputsFile", "validated_inputs.csv"),
			ValidatedOutputsFile:      getString("ledger_validatedOutputsFile", "validated_outputs.csv"),
			ReportFile:                getString("ledger_reportFile", "analytics/validation_analytics.json"),
			UtxoFile:                  getString("ledger_utxoFile", "analytics/utxo_ids.txt"),
		},
		Validator: ValidatorSettings{
			BlockSubsidy:     getInt64("validator_blockSubsidy", DefaultBlockSubsidy),
			ProgressInterval: getInt("validator_progressInterval", 100_000),
			UtxoStore:        getURL("validator_utxoStore", "memory:///"),
		},
		Analytics: AnalyticsSettings{
			Enabled:         getBool("analytics_enabled", false),
			File:            getString("analytics_file", "analytics/ledger_analytics.json"),
			SatoshisPerCoin: getInt64("analytics_satoshisPerCoin", DefaultSatoshisPerCoin),
			BlocksPerMonth:  getInt64("analytics_blocksPerMonth", DefaultBlocksPerMonth),
		},
		Export: ExportSettings{
			StoreURL:             getURL("export_storeURL", "sqlite:///ledger"),
			BatchSize:            getInt("export_batchSize", 500),
			PostgresMaxIdleConns: getInt("export_postgresMaxIdleConns", 2),
			PostgresMaxOpenConns: getInt("export_postgresMaxOpenConns", 10),
		},
	}
}
