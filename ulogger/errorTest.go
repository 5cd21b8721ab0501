package ulogger

import (
	"fmt"
	"sync/atomic"
)

type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
	Logf(format string, args ...any)
}

type tHelper = interface {
	Helper()
}

// ErrorTestLogger discards debug, info and warn messages and fails the test on the first
// Errorf, unless AllowErrors was called. Fatalf always stops the test.
type ErrorTestLogger struct {
	t           TestingT
	allowErrors atomic.Bool
	errors      atomic.Int64
}

func NewErrorTestLogger(t TestingT) *ErrorTestLogger {
	return &ErrorTestLogger{t: t}
}

// AllowErrors logs Errorf messages instead of failing the test.
func (l *ErrorTestLogger) AllowErrors() *ErrorTestLogger {
	l.allowErrors.Store(true)
	return l
}

// Errors returns how many messages were logged at error level.
func (l *ErrorTestLogger) Errors() int {
	return int(l.errors.Load())
}

func (l *ErrorTestLogger) LogLevel() int {
	return 0
}

func (l *ErrorTestLogger) SetLogLevel(level string) {}

func (l *ErrorTestLogger) New(service string, options ...Option) Logger {
	return l
}

func (l *ErrorTestLogger) Debugf(format string, args ...interface{}) {}
func (l *ErrorTestLogger) Infof(format string, args ...interface{})  {}
func (l *ErrorTestLogger) Warnf(format string, args ...interface{})  {}

func (l *ErrorTestLogger) Errorf(format string, args ...interface{}) {
	if h, ok := l.t.(tHelper); ok {
		h.Helper()
	}

	l.errors.Add(1)

	if l.allowErrors.Load() {
		l.t.Logf("[ERROR] "+format, args...)
		return
	}

	l.t.Errorf("unexpected error log: %s", fmt.Sprintf(format, args...))
}

func (l *ErrorTestLogger) Fatalf(format string, args ...interface{}) {
	if h, ok := l.t.(tHelper); ok {
		h.Helper()
	}

	l.t.Errorf("[FATAL] "+format, args...)
	l.t.FailNow()
}
