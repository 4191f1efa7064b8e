package telemetry

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger   *logrus.Logger
	initOnce sync.Once
)

// Init configures the process-wide logger
func Init(level logrus.Level) {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger = l
}

// L returns the process logger, initialising it at info level on first use
func L() *logrus.Logger {
	initOnce.Do(func() {
		if logger == nil {
			Init(logrus.InfoLevel)
		}
	})
	return logger
}

// Component returns a log entry tagged with the given component name
func Component(name string) *logrus.Entry {
	return L().WithField("component", name)
}

// ParseLevel converts a level name to a logrus level, defaulting to info
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
