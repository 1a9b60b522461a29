package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"adsnap/internal/cli"
	"adsnap/internal/infra"
	"adsnap/internal/providers/bria"
	"adsnap/internal/services"
)

func main() {
	_ = godotenv.Load()

	logger := infra.NewLogger("cli", os.Getenv("LOG_LEVEL")).With().Str("cmd", "studioctl").Logger()
	logger = logger.Output(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, func(opts cli.Options) services.Caller {
		return bria.NewClient(bria.Options{
			BaseURL:        opts.BaseURL,
			Logger:         &logger,
			RequestTimeout: opts.Timeout,
		})
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
