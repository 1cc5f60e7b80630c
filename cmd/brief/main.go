package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/doeshing/brief-go/internal/infrastructure/cli"
)

func main() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cli.Options{Verbose: isVerbose()}

	root, cleanup, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(1)
	}

	err = root.ExecuteContext(ctx)
	cleanup()
	if err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("BRIEF_DEBUG"), "1") || strings.EqualFold(os.Getenv("BRIEF_DEBUG"), "true")
}
