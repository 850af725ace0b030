package fashiontools

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logOff sits above every level zap emits, so nothing gets through
const logOff = zapcore.FatalLevel + 1

var (
	// level doubles as the on/off switch, so changes apply to loggers already handed out
	level     = zap.NewAtomicLevelAt(logOff)
	onLevel   = zapcore.InfoLevel
	logOutput = []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	logger    *zap.Logger
)

func initLogging() {
	level.SetLevel(logOff)
	buildLogger()
}

func buildLogger() {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	})

	logger = zap.New(zapcore.NewCore(enc, zap.CombineWriteSyncers(logOutput...), level)).
		Named("fashiontools")
}

// EnableLogging turns logging on at the configured level, or off entirely
func EnableLogging(enable bool) {
	if enable {
		level.SetLevel(onLevel)
	} else {
		level.SetLevel(logOff)
	}
}

// SetLogLevel sets the lowest level logged once logging is enabled,
// one of debug, info, warn or error
func SetLogLevel(name string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return errors.Wrapf(err, "log level %q", name)
	}

	onLevel = l
	if level.Level() != logOff {
		level.SetLevel(l)
	}
	return nil
}

// AddLogWriter adds w to the targets logs are written to
func AddLogWriter(w io.Writer) {
	logOutput = append(logOutput, zapcore.AddSync(w))
	buildLogger()
}

// SetLogWriters replaces every log target with writers
func SetLogWriters(writers ...io.Writer) {
	logOutput = logOutput[:0:0]
	for _, w := range writers {
		logOutput = append(logOutput, zapcore.AddSync(w))
	}
	buildLogger()
}
