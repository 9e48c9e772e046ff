package signal

import (
	"context"
	"os"
	"os/signal"
)

// interruptSignals defines the signals that are handled as an interrupt.
var interruptSignals = []os.Signal{os.Interrupt}

// WithInterrupt returns a copy of parent that is canceled on the first
// interrupt signal (Ctrl+C). Calling the returned cancel function stops
// listening.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	interruptChannel := make(chan os.Signal, 1)
	signal.Notify(interruptChannel, interruptSignals...)

	go func() {
		defer signal.Stop(interruptChannel)
		select {
		case sig := <-interruptChannel:
			log.Infof("Received signal (%s). Aborting...", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
