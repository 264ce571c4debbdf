package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/wordlearner/internal/cli"
)

func main() {
	// Cancel the context on Ctrl+C or SIGTERM so long running commands stop cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
