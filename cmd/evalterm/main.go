package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"evalterm/internal/logger"
)

var log = logger.Named("main")

func main() {
	logger.Configure()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
