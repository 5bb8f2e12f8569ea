package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1 // config, source, fetch or write error
)

func main() {
	// Root context, cancelled on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Performance analysis failed:", err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
