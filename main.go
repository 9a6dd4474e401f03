// guessnum - a console number-guessing game.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"guessnum/cmd"
)

// exitInterrupted is the conventional status for death by SIGINT.
const exitInterrupted = 130

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The loop only sees ctx between reads; a read blocked on the
	// terminal would otherwise outlive the signal.
	stop := context.AfterFunc(ctx, func() {
		fmt.Fprintln(os.Stderr, "\nguessnum: interrupted")
		os.Exit(exitInterrupted)
	})
	defer stop()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "guessnum: %v\n", err)
		os.Exit(1)
	}
}
