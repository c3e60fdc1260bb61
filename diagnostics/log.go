// Package diagnostics is cirbo's logging facade over logrus, implementing
// a five-level scheme (DEBUG, INFO, WARNING, ERROR, SILENT).
package diagnostics

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level is cirbo's five-value logging level, mapped onto logrus's levels
// plus Silent, which logrus doesn't model directly (it's an output-gate,
// not a severity).
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
	Silent
)

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case Debug:
		return logrus.DebugLevel
	case Info:
		return logrus.InfoLevel
	case Warning:
		return logrus.WarnLevel
	case Error:
		return logrus.ErrorLevel
	default:
		return logrus.PanicLevel
	}
}

// New returns a *logrus.Logger configured at level. Silent routes output
// to io.Discard rather than relying on a level above Error, since logrus
// has no level that suppresses Error/Fatal/Panic output.
func New(level Level) *logrus.Logger {
	l := logrus.New()
	if level == Silent {
		l.SetOutput(io.Discard)
		return l
	}
	l.SetLevel(level.logrusLevel())
	return l
}

// Discard returns a logger at the Silent level, whose output is thrown
// away.
func Discard() *logrus.Logger {
	return New(Silent)
}

// DebugGate reports whether DEBUG output should be computed at all, so
// callers can skip formatting work when it would be thrown away.
func DebugGate(l *logrus.Logger) bool {
	return l != nil && l.IsLevelEnabled(logrus.DebugLevel)
}
