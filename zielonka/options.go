package zielonka

import (
	"errors"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// ErrGameNil is returned when a nil game is passed to a solver.
var ErrGameNil = errors.New("zielonka: game is nil")

// Option configures a solver call.
type Option func(*options)

type options struct {
	log     logrus.FieldLogger
	debug   bool
	workers int
}

func defaultOptions() options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return options{log: discard, workers: runtime.GOMAXPROCS(0)}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes solver diagnostics to l. Recursion steps are logged at
// debug level; region sizes are only computed when debug is enabled.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l == nil {
			return
		}
		o.log = l
		switch v := l.(type) {
		case *logrus.Logger:
			o.debug = v.IsLevelEnabled(logrus.DebugLevel)
		case *logrus.Entry:
			o.debug = v.Logger.IsLevelEnabled(logrus.DebugLevel)
		}
	}
}

// WithWorkers bounds the number of concurrent concrete solves in
// SolveProduct. Panics on n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("zielonka: WithWorkers(n<=0)")
	}
	return func(o *options) { o.workers = n }
}
