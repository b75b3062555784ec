// Package signal ties wizard sessions to terminal interrupts.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	clog "github.com/xrsl/cvb/pkg/log"
)

// Interrupts are the signals that end a wizard session.
var Interrupts = []os.Signal{os.Interrupt, syscall.SIGTERM}

// WithInterrupt returns a context cancelled on the first interrupt. Forms and
// the navigator watch it so an interrupted session exits without writing.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	return watch(parent, make(chan os.Signal, 1), true)
}

// watch cancels the returned context when sigCh fires. register controls
// whether sigCh is hooked to the process signals.
func watch(parent context.Context, sigCh chan os.Signal, register bool) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	if register {
		signal.Notify(sigCh, Interrupts...)
	}

	go func() {
		defer func() {
			if register {
				signal.Stop(sigCh)
			}
		}()
		select {
		case sig := <-sigCh:
			clog.Debug("session interrupted", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
