package settings

// Keys understood by ApplyConfigFile, in viper format.
//
//	key ledger.transactions is equivalent to LEDGER_TRANSACTIONS in the environment or a .env file
const (
	KeyLogLevel                = "log.level"
	KeyLoggerType              = "log.type"
	KeyDataFolder              = "data.folder"
	KeyPrometheusListenAddress = "prometheus.listenaddress"

	KeyLedgerTransactions = "ledger.transactions"
	KeyLedgerInputs       = "ledger.inputs"
	KeyLedgerOutputs      = "ledger.outputs"
	KeyLedgerOutputFolder = "ledger.outputfolder"
	KeyLedgerReportFile   = "ledger.reportfile"
	KeyLedgerUtxoFile     = "ledger.utxofile"

	KeyValidatorBlockSubsidy     = "validator.blocksubsidy"
	KeyValidatorProgressInterval = "validator.progressinterval"
	KeyValidatorUtxoStore        = "validator.utxostore"

	KeyAnalyticsEnabled        = "analytics.enabled"
	KeyAnalyticsFile           = "analytics.file"
	KeyAnalyticsBlocksPerMonth = "analytics.blockspermonth"

	KeyExportStoreURL  = "export.storeurl"
	KeyExportBatchSize = "export.batchsize"
)
