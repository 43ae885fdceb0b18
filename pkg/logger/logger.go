package logger

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the logging interface shared by every quill tool. It is satisfied by
// go.uber.org/zap.SugaredLogger.
//
// Loggers should be injected (and usually Named as well): e.g. logger.Named(lggr, "forge")
//
// Tests
//   - Tests should use a [Test] logger, with [New] being reserved for actual runtime and limited direct testing.
//
// Levels
//   - Fatal: Logs and then calls os.Exit(1). Be careful about using this since it does NOT unwind the stack and may exit uncleanly.
//   - Error: A command could not complete. Example: forge exited with a non-zero status.
//   - Warn: Something unexpected that did not stop the command. Example: a snapshot owner has no balance for a branch.
//   - Info: High level progress. Example: running a forge script, writing a report file.
//   - Debug: Forensic detail. Example: the full forge argument vector, resolved configuration values.
//
// Report output is never written through a Logger; commands print it to their output stream.
type Logger interface {
	// Name returns the fully qualified name of the logger.
	Name() string

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Panic(args ...any)
	// Fatal logs and then calls os.Exit(1)
	// Be careful about using this since it does NOT unwind the stack and may exit uncleanly
	Fatal(args ...any)

	Debugf(format string, values ...any)
	Infof(format string, values ...any)
	Warnf(format string, values ...any)
	Errorf(format string, values ...any)
	Panicf(format string, values ...any)
	Fatalf(format string, values ...any)

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Panicw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	// Some insignificant errors are suppressed.
	Sync() error
}

// Config configures a CLI logger.
type Config struct {
	Level zapcore.Level
	// JSON switches the encoder from the human readable console format to JSON.
	JSON bool
}

var defaultConfig Config

// New returns a new Logger with the default configuration.
func New() (Logger, error) { return defaultConfig.New() }

// New returns a new Logger for Config.
func (c *Config) New() (Logger, error) {
	return NewWith(func(cfg *zap.Config) {
		cfg.Level.SetLevel(c.Level)
		if c.JSON {
			cfg.Encoding = "json"
			cfg.EncoderConfig = zap.NewProductionEncoderConfig()
		}
	})
}

// NewWith returns a new Logger from a modified [zap.Config].
//
// The base configuration writes console encoded entries to stderr so that
// stdout stays reserved for reports.
func NewWith(cfgFn func(*zap.Config)) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	cfgFn(&cfg)
	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &logger{core.Sugar()}, nil
}

// NewLeveled returns a console Logger whose level follows lvl, so that it can
// be adjusted once command flags are parsed.
func NewLeveled(lvl zap.AtomicLevel) (Logger, error) {
	return NewWith(func(cfg *zap.Config) {
		cfg.Level = lvl
	})
}

// ParseLevel parses a level name such as "debug" or "WARN". An empty name
// yields [zapcore.InfoLevel].
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return zapcore.InfoLevel, nil
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}

	return lvl, nil
}

// Named returns a child of lggr with name appended to its name. Loggers not
// created by this package are returned unchanged.
func Named(lggr Logger, name string) Logger {
	l, ok := lggr.(*logger)
	if !ok {
		return lggr
	}

	return &logger{l.SugaredLogger.Named(name)}
}

// Test returns a new test Logger for tb.
func Test(tb testing.TB) Logger {
	tb.Helper()
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000000")
	lggr := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zaptest.NewTestingWriter(tb),
			zapcore.DebugLevel,
		),
	)

	return &logger{lggr.Sugar()}
}

// TestObserved returns a new test Logger for tb and ObservedLogs at the given Level.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	tb.Helper()
	sl, logs := testObserved(tb, lvl)

	return &logger{sl}, logs
}

func testObserved(tb testing.TB, lvl zapcore.Level) (*zap.SugaredLogger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return zaptest.NewLogger(tb, zaptest.WrapOptions(observe, zap.AddCaller())).Sugar(), logs
}

// Nop returns a no-op Logger.
func Nop() Logger {
	return &logger{zap.New(zapcore.NewNopCore()).Sugar()}
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Name() string {
	return l.Desugar().Name()
}
