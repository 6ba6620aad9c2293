package logger

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var L = &logrus.Logger{
	Out:   os.Stderr,
	Level: logrus.InfoLevel,
	Hooks: make(logrus.LevelHooks),
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
}

// For returns an entry tagged with the component name, rendered as the
// line prefix by the formatter.
func For(component string) *logrus.Entry {
	return L.WithField("prefix", component)
}

// SetLevel accepts logrus level names as well as the upper case names used
// in the user configuration (DEBUG, INFO, WARNING, ERROR, CRITICAL).
func SetLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return nil
	case "critical":
		L.SetLevel(logrus.FatalLevel)
		return nil
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	L.SetLevel(lvl)
	return nil
}
