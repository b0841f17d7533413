package observability

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// Log formats accepted by NewLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrLogFormat is returned by NewLogger for a format other than text or json.
var ErrLogFormat = errors.New("observability: unknown log format")

// NewLogger returns a Logger writing to out at level ("debug", "info", ...)
// in format FormatText or FormatJSON.
func NewLogger(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "observability: log level %q", level)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	switch strings.ToLower(format) {
	case FormatText, "":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Wrapf(ErrLogFormat, "%q", format)
	}

	return l, nil
}

// Discard returns an Entry whose output is dropped.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return logrus.NewEntry(l)
}
