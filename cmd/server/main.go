package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gambling-buddy-service/internal/config"
	"gambling-buddy-service/internal/logging"
	"gambling-buddy-service/internal/server"
)

const appVersion = "dev"

func main() {
	config.LoadEnvFiles()
	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "gambling-buddy-service",
		Version: appVersion,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
