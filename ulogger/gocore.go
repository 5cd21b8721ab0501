package ulogger

import (
	"github.com/ordishs/gocore"
)

// GoCoreLogger logs through gocore, which also feeds the gocore stats and config tooling.
type GoCoreLogger struct {
	*gocore.Logger
}

func NewGoCoreLogger(service string, options ...Option) *GoCoreLogger {
	if service == "" {
		service = "ledger"
	}

	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	return &GoCoreLogger{gocore.Log(service, gocore.NewLogLevelFromString(opts.logLevel))}
}

func (g *GoCoreLogger) New(service string, _ ...Option) Logger {
	return &GoCoreLogger{gocore.Log(service, g.Logger.GetLogLevel())}
}

// SetLogLevel is a no-op: gocore fixes the level when the logger is created.
func (g *GoCoreLogger) SetLogLevel(_ string) {}
