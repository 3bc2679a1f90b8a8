// Package sigctx provides a context that is canceled by SIGINT or SIGTERM.
package sigctx

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// New returns a context canceled on the first interrupt or terminate
// signal. A second signal exits immediately.
func New() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		log.Println("interrupted; finishing up (interrupt again to exit now)")
		cancel()
		<-sigs
		os.Exit(1)
	}()

	return ctx
}
