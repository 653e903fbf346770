// Package sigctx ties a context to process termination signals.
package sigctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var TerminationSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// NotifyContext returns a context canceled on the first termination signal.
func NotifyContext() (context.Context, context.CancelFunc) {
	return WithTermination(context.Background())
}

func WithTermination(
	parent context.Context,
) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, TerminationSignals...)
}
