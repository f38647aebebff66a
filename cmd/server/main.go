package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/malanEvans/soccer-mcp-server/internal/config"
	"github.com/malanEvans/soccer-mcp-server/internal/logging"
	"github.com/malanEvans/soccer-mcp-server/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "soccer-mcp-server",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
