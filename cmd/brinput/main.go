package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vortex-fintech/brinput/cmd/brinput/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, commands.ErrFailed) {
			fmt.Fprintln(os.Stderr, "brinput:", err)
		}
		os.Exit(1)
	}
}
