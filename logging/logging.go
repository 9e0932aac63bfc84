// Package logging builds the zap logger shared by every command. Logs always go to stderr so
// stdout stays free for the catalog document.
package logging

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"

	InvalidLevelErrorFormat  = "Invalid log level %q"
	InvalidFormatErrorFormat = "Invalid log format %q. Valid options: auto, console, json"
	BuildLoggerErrorMessage  = "Failed to build logger"

	stderrPath = "stderr"
)

// New creates a logger at level ("debug", "info", "warn", "error") in the given format.
// The auto format uses the console encoder when stderr is a terminal.
func New(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, errors.Wrapf(err, InvalidLevelErrorFormat, level)
	}

	encoding, err := resolveFormat(format, stderrIsTerminal())
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{stderrPath}
	config.ErrorOutputPaths = []string{stderrPath}
	config.Encoding = encoding
	if encoding == FormatConsole {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.DisableStacktrace = true
	}
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, BuildLoggerErrorMessage)
	}
	return logger, nil
}

func resolveFormat(format string, terminal bool) (string, error) {
	switch strings.ToLower(format) {
	case "", FormatAuto:
		if terminal {
			return FormatConsole, nil
		}
		return FormatJSON, nil
	case FormatConsole:
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", errors.Errorf(InvalidFormatErrorFormat, format)
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
