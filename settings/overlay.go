package settings

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/bsv-blockchain/ledger-validator/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ApplyConfigFile overrides s with the values found in the given file and in the environment.
// A .env file is loaded into the environment through godotenv, since viper only maps
// my.key to MY_KEY for environment variables. Any other extension is read by viper.
// Environment variables that are already set keep priority over the .env file.
func ApplyConfigFile(s *Settings, path string) error {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		if isEnvFile(path) {
			if err := godotenv.Load(path); err != nil {
				return errors.NewConfigurationError("[ApplyConfigFile] failed to load env file %s", path, err)
			}
		} else {
			v.SetConfigFile(path)

			if err := v.ReadInConfig(); err != nil {
				return errors.NewConfigurationError("[ApplyConfigFile] failed to read config file %s", path, err)
			}
		}

		s.ConfigFile = path
	}

	return apply(v, s)
}

func apply(v *viper.Viper, s *Settings) error {
	setString(v, KeyLogLevel, &s.LogLevel)
	setString(v, KeyLoggerType, &s.LoggerType)
	setString(v, KeyDataFolder, &s.DataFolder)
	setString(v, KeyPrometheusListenAddress, &s.PrometheusListenAddress)

	setString(v, KeyLedgerTransactions, &s.Ledger.TransactionsFile)
	setString(v, KeyLedgerInputs, &s.Ledger.InputsFile)
	setString(v, KeyLedgerOutputs, &s.Ledger.OutputsFile)
	setString(v, KeyLedgerOutputFolder, &s.Ledger.OutputFolder)
	setString(v, KeyLedgerReportFile, &s.Ledger.ReportFile)
	setString(v, KeyLedgerUtxoFile, &s.Ledger.UtxoFile)

	if v.IsSet(KeyValidatorBlockSubsidy) {
		s.Validator.BlockSubsidy = v.GetInt64(KeyValidatorBlockSubsidy)
	}

	if v.IsSet(KeyValidatorProgressInterval) {
		s.Validator.ProgressInterval = v.GetInt(KeyValidatorProgressInterval)
	}

	if v.IsSet(KeyValidatorUtxoStore) {
		utxoStoreURL, err := url.Parse(v.GetString(KeyValidatorUtxoStore))
		if err != nil {
			return errors.NewConfigurationError("[ApplyConfigFile] invalid %s", KeyValidatorUtxoStore, err)
		}

		s.Validator.UtxoStore = utxoStoreURL
	}

	if v.IsSet(KeyAnalyticsEnabled) {
		s.Analytics.Enabled = v.GetBool(KeyAnalyticsEnabled)
	}

	setString(v, KeyAnalyticsFile, &s.Analytics.File)

	if v.IsSet(KeyAnalyticsBlocksPerMonth) {
		s.Analytics.BlocksPerMonth = v.GetInt64(KeyAnalyticsBlocksPerMonth)
	}

	if v.IsSet(KeyExportBatchSize) {
		s.Export.BatchSize = v.GetInt(KeyExportBatchSize)
	}

	if v.IsSet(KeyExportStoreURL) {
		storeURL, err := url.Parse(v.GetString(KeyExportStoreURL))
		if err != nil {
			return errors.NewConfigurationError("[ApplyConfigFile] invalid %s", KeyExportStoreURL, err)
		}

		s.Export.StoreURL = storeURL
	}

	if s.Validator.BlockSubsidy < 0 {
		return errors.NewConfigurationError("[ApplyConfigFile] %s must not be negative, got %d", KeyValidatorBlockSubsidy, s.Validator.BlockSubsidy)
	}

	if s.Export.BatchSize <= 0 {
		return errors.NewConfigurationError("[ApplyConfigFile] %s must be positive, got %d", KeyExportBatchSize, s.Export.BatchSize)
	}

	return nil
}

func setString(v *viper.Viper, key string, target *string) {
	if v.IsSet(key) {
		*target = v.GetString(key)
	}
}

// isEnvFile checks if the file is .env
func isEnvFile(f string) bool {
	ext := filepath.Ext(f)
	if len(ext) > 1 {
		return ext[1:] == "env"
	}

	return false
}
