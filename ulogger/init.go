package ulogger

import (
	"github.com/bsv-blockchain/ledger-validator/settings"
)

// InitLogger creates the process logger described by the settings.
func InitLogger(service string, tSettings *settings.Settings) Logger {
	return New(service,
		WithLevel(tSettings.LogLevel),
		WithLoggerType(tSettings.LoggerType),
	)
}
