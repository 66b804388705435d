package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ConsoleLogger returns a logrus logger writing human-readable output to
// stderr at the given level.
func ConsoleLogger(level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return log
}
