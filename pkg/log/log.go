package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InfoLogger records non-error messages at a fixed verbosity.
type InfoLogger interface {
	// Info logs a message with the given structured fields.
	Info(msg string, fields ...Field)
	// Infof logs a message formatted like fmt.Printf.
	Infof(format string, v ...interface{})
	// Infow logs a message with alternating keys and values.
	//   logger.Infow("config loaded", "path", "/etc/tidy.conf")
	Infow(msg string, keysAndValues ...interface{})
	// Enabled reports whether this InfoLogger writes anything.
	Enabled() bool
}

// Logger records error and non-error messages.
type Logger interface {
	InfoLogger

	Debug(msg string, fields ...Field)
	Debugf(format string, v ...interface{})
	Debugw(msg string, keysAndValues ...interface{})

	Warn(msg string, fields ...Field)
	Warnf(format string, v ...interface{})
	Warnw(msg string, keysAndValues ...interface{})

	Error(msg string, fields ...Field)
	Errorf(format string, v ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// V returns an InfoLogger for the given level, or a disabled one when
	// the level is filtered out.
	V(level Level) InfoLogger

	// WithValues returns a child logger carrying the key/value pairs.
	WithValues(keysAndValues ...interface{}) Logger

	// WithName appends a segment to the logger name.
	WithName(name string) Logger

	// Flush syncs buffered entries. Call before exiting.
	Flush()
}

var _ Logger = &zapLogger{}

type infoLogger struct {
	level zapcore.Level
	log   *zap.Logger
}

func (l *infoLogger) Enabled() bool { return true }

func (l *infoLogger) Info(msg string, fields ...Field) {
	if checkedEntry := l.log.Check(l.level, msg); checkedEntry != nil {
		checkedEntry.Write(fields...)
	}
}

func (l *infoLogger) Infof(format string, args ...interface{}) {
	if checkedEntry := l.log.Check(l.level, fmt.Sprintf(format, args...)); checkedEntry != nil {
		checkedEntry.Write()
	}
}

func (l *infoLogger) Infow(msg string, keysAndValues ...interface{}) {
	if checkedEntry := l.log.Check(l.level, msg); checkedEntry != nil {
		checkedEntry.Write(handleFields(l.log, keysAndValues)...)
	}
}

// handleFields converts alternating key/value arguments into zap fields.
func handleFields(l *zap.Logger, args []interface{}, additional ...zap.Field) []zap.Field {
	if len(args) == 0 {
		return additional
	}

	fields := make([]zap.Field, 0, len(args)/2+len(additional))
	for i := 0; i < len(args); {
		if _, ok := args[i].(zap.Field); ok {
			l.DPanic("strongly-typed Zap Field passed to logr", zap.Any("zap field", args[i]))

			break
		}

		if i == len(args)-1 {
			l.DPanic("odd number of arguments passed as key-value pairs for logging", zap.Any("ignored key", args[i]))

			break
		}

		key, val := args[i], args[i+1]
		keyStr, isString := key.(string)
		if !isString {
			l.DPanic(
				"non-string key argument passed to logging, ignoring all later arguments",
				zap.Any("invalid key", key),
			)

			break
		}

		fields = append(fields, zap.Any(keyStr, val))
		i += 2
	}

	return append(fields, additional...)
}

var (
	std = New(NewOptions())
	mu  sync.Mutex
)

// Init replaces the package logger with one built from opts.
func Init(opts *Options) {
	mu.Lock()
	defer mu.Unlock()
	std = New(opts)
}

// New creates a logger from opts. Invalid levels fall back to warn.
func New(opts *Options) *zapLogger {
	if opts == nil {
		opts = NewOptions()
	}

	zc := opts.zapConfig()
	l, err := zc.Build(zap.AddStacktrace(zapcore.PanicLevel), zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &zapLogger{
		zapLogger: l.Named(opts.Name),
		infoLogger: infoLogger{
			log:   l,
			level: zap.InfoLevel,
		},
	}
}

// NewLogger wraps an existing zap logger.
func NewLogger(l *zap.Logger) Logger {
	return &zapLogger{
		zapLogger: l,
		infoLogger: infoLogger{
			log:   l,
			level: zap.InfoLevel,
		},
	}
}

type zapLogger struct {
	zapLogger *zap.Logger
	infoLogger
}

// V return a leveled InfoLogger.
func V(level Level) InfoLogger { return std.V(level) }

func (l *zapLogger) V(level Level) InfoLogger {
	if l.zapLogger.Core().Enabled(level) {
		return &infoLogger{
			level: level,
			log:   l.zapLogger,
		}
	}

	return disabledInfoLogger
}

// WithValues creates a child logger with the key/value pairs attached.
func WithValues(keysAndValues ...interface{}) Logger { return std.WithValues(keysAndValues...) }

func (l *zapLogger) WithValues(keysAndValues ...interface{}) Logger {
	return NewLogger(l.zapLogger.With(handleFields(l.zapLogger, keysAndValues)...))
}

// WithName adds a path segment to the logger's name.
func WithName(s string) Logger { return std.WithName(s) }

func (l *zapLogger) WithName(name string) Logger {
	return NewLogger(l.zapLogger.Named(name))
}

// Flush calls the underlying Core's Sync method.
func Flush() { std.Flush() }

func (l *zapLogger) Flush() {
	_ = l.zapLogger.Sync()
}

// ZapLogger returns the package zap logger.
func ZapLogger() *zap.Logger {
	return std.zapLogger
}

func Debug(msg string, fields ...Field) { std.zapLogger.Debug(msg, fields...) }

func (l *zapLogger) Debug(msg string, fields ...Field) { l.zapLogger.Debug(msg, fields...) }

func Debugf(format string, v ...interface{}) { std.zapLogger.Sugar().Debugf(format, v...) }

func (l *zapLogger) Debugf(format string, v ...interface{}) {
	l.zapLogger.Sugar().Debugf(format, v...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	std.zapLogger.Sugar().Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Debugw(msg, keysAndValues...)
}

func Info(msg string, fields ...Field) { std.zapLogger.Info(msg, fields...) }

func (l *zapLogger) Info(msg string, fields ...Field) { l.zapLogger.Info(msg, fields...) }

func Infof(format string, v ...interface{}) { std.zapLogger.Sugar().Infof(format, v...) }

func (l *zapLogger) Infof(format string, v ...interface{}) {
	l.zapLogger.Sugar().Infof(format, v...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	std.zapLogger.Sugar().Infow(msg, keysAndValues...)
}

func (l *zapLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Infow(msg, keysAndValues...)
}

func Warn(msg string, fields ...Field) { std.zapLogger.Warn(msg, fields...) }

func (l *zapLogger) Warn(msg string, fields ...Field) { l.zapLogger.Warn(msg, fields...) }

func Warnf(format string, v ...interface{}) { std.zapLogger.Sugar().Warnf(format, v...) }

func (l *zapLogger) Warnf(format string, v ...interface{}) {
	l.zapLogger.Sugar().Warnf(format, v...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	std.zapLogger.Sugar().Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Warnw(msg, keysAndValues...)
}

func Error(msg string, fields ...Field) { std.zapLogger.Error(msg, fields...) }

func (l *zapLogger) Error(msg string, fields ...Field) { l.zapLogger.Error(msg, fields...) }

func Errorf(format string, v ...interface{}) { std.zapLogger.Sugar().Errorf(format, v...) }

func (l *zapLogger) Errorf(format string, v ...interface{}) {
	l.zapLogger.Sugar().Errorf(format, v...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	std.zapLogger.Sugar().Errorw(msg, keysAndValues...)
}

func (l *zapLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.zapLogger.Sugar().Errorw(msg, keysAndValues...)
}

var disabledInfoLogger = &noopInfoLogger{}

// noopInfoLogger is an InfoLogger that is always disabled.
type noopInfoLogger struct{}

func (l *noopInfoLogger) Enabled() bool                    { return false }
func (l *noopInfoLogger) Info(_ string, _ ...Field)        {}
func (l *noopInfoLogger) Infof(_ string, _ ...interface{}) {}
func (l *noopInfoLogger) Infow(_ string, _ ...interface{}) {}
