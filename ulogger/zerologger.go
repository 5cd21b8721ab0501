package ulogger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ordishs/gocore"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// ZLoggerWrapper writes JSON lines, or aligned console lines when PRETTY_LOGS is set and the
// output is stdout.
type ZLoggerWrapper struct {
	zerolog.Logger
	service string
	w       io.Writer
}

func NewZeroLogger(service string, options ...Option) *ZLoggerWrapper {
	if service == "" {
		service = "ledger"
	}

	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	out := opts.writer
	if gocore.Config().GetBool("PRETTY_LOGS", true) && opts.writer == os.Stdout {
		out = consoleWriter(service)
	}

	z := &ZLoggerWrapper{
		Logger:  zerolog.New(out).With().Timestamp().Str("service", service).Logger(),
		service: service,
		w:       opts.writer,
	}

	z.SetLogLevel(opts.logLevel)

	return z
}

func consoleWriter(service string) zerolog.ConsoleWriter {
	noColor := !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != ""

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		NoColor:    noColor,
		TimeFormat: "15:04:05",
	}

	output.FormatLevel = func(i interface{}) string {
		level := strings.ToUpper(fmt.Sprintf("%-6s", i))
		if noColor {
			return "| " + level + "|"
		}

		color := colorWhite

		switch i {
		case "debug":
			color = colorBlue
		case "info":
			color = colorGreen
		case "warn":
			color = colorYellow
		case "error", "fatal", "panic":
			color = colorRed
		}

		return fmt.Sprintf("| \x1b[%dm%s\x1b[0m|", color, level)
	}

	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("| %-10s| %s", service, i)
	}

	output.FieldsExclude = []string{"service"}

	return output
}

// New returns a logger for a sub-component writing to the same output at the same level.
func (z *ZLoggerWrapper) New(service string, options ...Option) Logger {
	o := []Option{
		WithWriter(z.w),
		WithLoggerType("zerolog"),
		WithLevel(z.Logger.GetLevel().String()),
	}

	return NewZeroLogger(service, append(o, options...)...)
}

func (z *ZLoggerWrapper) SetLogLevel(logLevel string) {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		z.Logger = z.Logger.Level(zerolog.DebugLevel)
	case "WARN":
		z.Logger = z.Logger.Level(zerolog.WarnLevel)
	case "ERROR":
		z.Logger = z.Logger.Level(zerolog.ErrorLevel)
	case "FATAL":
		z.Logger = z.Logger.Level(zerolog.FatalLevel)
	default:
		z.Logger = z.Logger.Level(zerolog.InfoLevel)
	}
}

func (z *ZLoggerWrapper) LogLevel() int {
	switch z.Logger.GetLevel() {
	case zerolog.DebugLevel:
		return int(gocore.DEBUG)
	case zerolog.WarnLevel:
		return int(gocore.WARN)
	case zerolog.ErrorLevel:
		return int(gocore.ERROR)
	case zerolog.FatalLevel:
		return int(gocore.FATAL)
	default:
		return int(gocore.INFO)
	}
}

func (z *ZLoggerWrapper) Debugf(format string, args ...interface{}) {
	z.Logger.Debug().Msgf(format, args...)
}

func (z *ZLoggerWrapper) Infof(format string, args ...interface{}) {
	z.Logger.Info().Msgf(format, args...)
}

func (z *ZLoggerWrapper) Warnf(format string, args ...interface{}) {
	z.Logger.Warn().Msgf(format, args...)
}

func (z *ZLoggerWrapper) Errorf(format string, args ...interface{}) {
	z.Logger.Error().Msgf(format, args...)
}

func (z *ZLoggerWrapper) Fatalf(format string, args ...interface{}) {
	z.Logger.Fatal().Msgf(format, args...)
}
