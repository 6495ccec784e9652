package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logfmt-style logger writing to out. An empty level means "warn",
// so interactive sessions stay quiet unless asked otherwise.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)

	return logger, nil
}
