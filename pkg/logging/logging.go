// Package logging builds the zap logger used by semver.
//
// Logs go to stderr in zap's console encoding so that stdout carries only
// version values. The default level is warn: normal runs print nothing but
// their result, --log-level=debug shows which file was located and written.
//
//	logger, err := logging.New("debug", os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//	logger.Info("version bumped", zap.String("old", "1.2.3"), zap.String("new", "1.2.4"))
package logging

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel converts a level name to a zap level. Matching is
// case-insensitive and "warning" is accepted for warn; an empty name means
// warn.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "", "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.WarnLevel, errors.Newf("unknown log level %q (want debug, info, warn or error)", name)
}

// New returns a console logger writing to w at the given level.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("semver"), nil
}
