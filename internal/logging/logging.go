// Package logging builds the JSON line logger shared by the server, the
// migration runner and the tracing setup.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// locationFormatter renders entry timestamps in a fixed location before
// delegating to the JSON formatter.
type locationFormatter struct {
	loc  *time.Location
	next logrus.Formatter
}

func (f *locationFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.In(f.loc)
	return f.next.Format(e)
}

// New returns a logger writing one JSON object per line to w.
// Timestamps are emitted under "ts" in loc; an unknown level falls back to info.
func New(w io.Writer, loc *time.Location, level string) *logrus.Logger {
	if w == nil {
		w = os.Stdout
	}
	if loc == nil {
		loc = time.UTC
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&locationFormatter{
		loc: loc,
		next: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
			},
		},
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}
