package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mayafbx/internal/interfaces/cli"
	"mayafbx/internal/interfaces/di"
)

func main() {
	container, err := di.NewContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 2)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		// First signal lets the running command unwind and put host
		// state back. A second one exits on the spot.
		cancel()

		<-sigChan
		_ = container.Shutdown(context.Background())
		os.Exit(1)
	}()

	cli.Execute(ctx, container)
}
