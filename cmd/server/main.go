package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"legalnav-api/internal/config"
	"legalnav-api/internal/logging"
	"legalnav-api/internal/server"
)

const appVersion = "1.0.0"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "legalnav-api",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
