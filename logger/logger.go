package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults, which keeps package tests quiet enough.
var Log = logrus.New()

// Init configures Log. Call it once from main, after the configuration is
// loaded.
//
// level is any logrus level name ("debug", "info", ...); unknown names fall
// back to info. format "json" selects the JSON formatter, anything else the
// text one.
func Init(level, format string) {
	Log = New(os.Stdout, level, format)
}

// New builds a logger writing to out.
func New(out io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
	return l
}
