// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encodings accepted by New.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// ErrEncoding is returned for an encoding other than console or json.
var ErrEncoding = errors.New("unknown log encoding")

// ParseLevel maps a level name such as "debug" or "WARN" to a zap level.
// The empty string means info.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return l, errors.Wrapf(err, "log level %q", level)
	}
	return l, nil
}

// CheckEncoding validates an encoding name; empty means console.
func CheckEncoding(encoding string) error {
	switch encoding {
	case "", EncodingConsole, EncodingJSON:
		return nil
	}
	return errors.Wrapf(ErrEncoding, "%q", encoding)
}

// New builds a production-style logger writing to stderr.
func New(level, encoding string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if err := CheckEncoding(encoding); err != nil {
		return nil, err
	}
	if encoding == "" {
		encoding = EncodingConsole
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == EncodingConsole {
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    enc,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}
