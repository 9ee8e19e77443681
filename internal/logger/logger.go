package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults so packages and tests never see a nil logger.
var Log = logrus.New()

// Init configures Log. LOG_LEVEL and LOG_FORMAT override the given values.
func Init(level, format string) {
	InitWithOutput(level, format, os.Stdout)
}

// InitWithOutput is Init writing to out.
func InitWithOutput(level, format string, out io.Writer) {
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = env
	}
	if env, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = env
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}
