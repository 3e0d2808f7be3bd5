// Command jobboard runs job board commands read from a line-oriented input and
// writes the result of each command to the output.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		os.Interrupt,
	)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		return err
	}

	return nil
}
