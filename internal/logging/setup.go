package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/krimeano/upl/internal/config"
)

// Setup builds the process logger. Logs go to stderr so that a report
// written to stdout stays clean.
func Setup(cfg config.LogConfig, serviceName string) (*logrus.Entry, error) {
	return setup(cfg, serviceName, os.Stderr)
}

func setup(cfg config.LogConfig, serviceName string, out io.Writer) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case config.FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger.WithField("service", serviceName), nil
}
