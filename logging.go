package ber

/*
logging.go contains this package's structured-logging hook. It is
modeled on the teacher corpus's convention of gating diagnostic output
behind a single package-level, swappable handle rather than calling
into a global logger directly from every file: callers may redirect or
silence diagnostics with SetLogger, and the package default is a quiet
no-op so importing this package never produces unsolicited output.
*/

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(slog.NewTextHandler(nopWriter{}, nil)))
}

// SetLogger installs l as the destination for this package's
// diagnostic output (decode failures and lazy-realization events,
// both logged at Debug level). Passing nil restores the default quiet
// no-op logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(nopWriter{}, nil))
	}
	pkgLogger.Store(l)
}

func logger() *slog.Logger { return pkgLogger.Load() }

func logDecodeFailure(err error, offset int) {
	logger().Debug("ber: decode failed", "offset", offset, "error", err)
}

func logLazyRealization(childCount int) {
	logger().Debug("ber: lazy record realized", "children", childCount)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
