package main

import (
	"context"
	"os/signal"
	"syscall"

	"avenks/pricewatch/cmd"
	"avenks/pricewatch/config"
	"avenks/pricewatch/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()

	// Load configuration
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.ExecuteContext(ctx, cfg)
}
