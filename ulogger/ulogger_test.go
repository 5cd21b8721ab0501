package ulogger_test

import (
	"bytes"
	"testing"

	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/ordishs/gocore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroLoggerWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}

	logger := ulogger.New("validator", ulogger.WithWriter(buf), ulogger.WithLevel("INFO"))
	logger.Infof("[Engine] processed %d transactions", 3)

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, "[Engine] processed 3 transactions")
	assert.Equal(t, int(gocore.INFO), logger.LogLevel())
}

func TestZeroLoggerLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantInfo  bool
		wantWarn  bool
		wantError bool
	}{
		{level: "DEBUG", wantInfo: true, wantWarn: true, wantError: true},
		{level: "INFO", wantInfo: true, wantWarn: true, wantError: true},
		{level: "WARN", wantInfo: false, wantWarn: true, wantError: true},
		{level: "ERROR", wantInfo: false, wantWarn: false, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := ulogger.New("levels", ulogger.WithWriter(buf), ulogger.WithLevel(tt.level))

			logger.Infof("info-line")
			logger.Warnf("warn-line")
			logger.Errorf("error-line")

			out := buf.String()
			assert.Equal(t, tt.wantInfo, bytes.Contains([]byte(out), []byte("info-line")))
			assert.Equal(t, tt.wantWarn, bytes.Contains([]byte(out), []byte("warn-line")))
			assert.Equal(t, tt.wantError, bytes.Contains([]byte(out), []byte("error-line")))
		})
	}
}

func TestZeroLoggerNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := ulogger.New("ledger", ulogger.WithWriter(buf), ulogger.WithLevel("WARN"))

	child := logger.New("loader")
	child.Infof("should-not-appear")
	child.Warnf("child-warns")

	out := buf.String()
	assert.NotContains(t, out, "should-not-appear")
	assert.Contains(t, out, "child-warns")
	assert.Contains(t, out, `"service":"loader"`)
	assert.Equal(t, int(gocore.WARN), child.LogLevel())

	other := &bytes.Buffer{}
	redirected := logger.New("persister", ulogger.WithWriter(other))
	redirected.Warnf("redirected-line")
	assert.Contains(t, other.String(), "redirected-line")
}

func TestGoCoreLogger(t *testing.T) {
	logger := ulogger.NewGoCoreLogger("gocore-test", ulogger.WithLevel("WARN"))
	require.NotNil(t, logger)
	assert.Equal(t, int(gocore.WARN), logger.LogLevel())

	var iface ulogger.Logger = logger
	assert.NotPanics(t, func() {
		iface.Infof("suppressed %s", "line")
		iface.New("child").Warnf("child %d", 1)
	})
}

func TestInitLogger(t *testing.T) {
	tSettings := &settings.Settings{LogLevel: "DEBUG", LoggerType: "gocore"}

	logger := ulogger.InitLogger("init-test", tSettings)
	_, ok := logger.(*ulogger.GoCoreLogger)
	assert.True(t, ok)
	assert.Equal(t, int(gocore.DEBUG), logger.LogLevel())
}

func TestTestLoggers(t *testing.T) {
	var loggers = []ulogger.Logger{
		ulogger.TestLogger{},
		ulogger.NewVerboseTestLogger(t),
		ulogger.NewErrorTestLogger(t),
	}

	for _, logger := range loggers {
		assert.NotPanics(t, func() {
			logger.Debugf("debug %d", 1)
			logger.Infof("info %d", 2)
			logger.Warnf("warn %d", 3)
			logger.New("child").Infof("child")
		})
	}
}

type recordingT struct {
	errors int
	logs   int
	failed bool
}

func (r *recordingT) Errorf(format string, args ...interface{}) { r.errors++ }
func (r *recordingT) FailNow()                                  { r.failed = true }
func (r *recordingT) Logf(format string, args ...any)           { r.logs++ }

func TestErrorTestLogger(t *testing.T) {
	rt := &recordingT{}
	logger := ulogger.NewErrorTestLogger(rt)

	logger.Infof("ignored")
	logger.Errorf("boom %d", 1)
	assert.Equal(t, 1, rt.errors)
	assert.Equal(t, 1, logger.Errors())

	rt = &recordingT{}
	logger = ulogger.NewErrorTestLogger(rt).AllowErrors()

	logger.Errorf("expected")
	assert.Equal(t, 0, rt.errors)
	assert.Equal(t, 1, rt.logs)

	logger.Fatalf("stop")
	assert.True(t, rt.failed)
}
