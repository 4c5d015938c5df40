package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	SetLogLevel(level string)

	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	Debug(msg string, fields ...Field)

	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Debugf(format string, args ...interface{})

	SweetenFields(args []interface{}) []Field
}

type ZapLogger struct {
	level  zap.AtomicLevel
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger builds a console logger on stderr tagged with the service name.
func NewZapLogger(service string, level string) *ZapLogger {
	atom := zap.NewAtomicLevelAt(parseLevel(level))

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	cfg := zap.Config{
		Level:            atom,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	logger = logger.With(zap.String("service", service))
	return &ZapLogger{level: atom, logger: logger, sugar: logger.Sugar()}
}

// NewZapLoggerWith wraps an existing zap logger, e.g. zaptest or an observer core.
func NewZapLoggerWith(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{level: zap.NewAtomicLevelAt(zapcore.DebugLevel), logger: logger, sugar: logger.Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *ZapLogger) SetLogLevel(level string) {
	l.level.SetLevel(parseLevel(level))
}

func (l *ZapLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, l.fmtFields(fields...)...)
}

func (l *ZapLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, l.fmtFields(fields...)...)
}

func (l *ZapLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, l.fmtFields(fields...)...)
}

func (l *ZapLogger) Fatal(msg string, fields ...Field) {
	l.logger.Fatal(msg, l.fmtFields(fields...)...)
}

func (l *ZapLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, l.fmtFields(fields...)...)
}

func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func (l *ZapLogger) SweetenFields(args []interface{}) []Field {
	if len(args) == 0 {
		return []Field{}
	}

	var (
		fields    = make([]Field, 0, len(args))
		seenError bool
	)

	for i := 0; i < len(args); {
		if f, ok := args[i].(Field); ok {
			fields = append(fields, f)
			i++
			continue
		}

		if err, ok := args[i].(error); ok {
			if !seenError {
				seenError = true
				fields = append(fields, WithField("error", err))
			}
			i++
			continue
		}
		if i == len(args)-1 {
			break
		}

		key, val := args[i], args[i+1]
		if keyStr, ok := key.(string); ok {
			fields = append(fields, WithField(keyStr, val))
		}
		i += 2
	}
	return fields
}

func (l *ZapLogger) fmtFields(fields ...Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if err, ok := field.Val.(error); ok {
			zapFields = append(zapFields, zap.NamedError(field.Key, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(field.Key, field.Val))
	}
	return zapFields
}

var (
	nopLogger     Logger
	nopLoggerOnce sync.Once
)

// NewNopLogger discards everything. It is the default of every component taking a Logger.
func NewNopLogger() Logger {
	nopLoggerOnce.Do(func() {
		nopLogger = NewZapLoggerWith(zap.NewNop())
	})
	return nopLogger
}
