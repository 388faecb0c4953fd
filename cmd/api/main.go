package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "nexus_settlement/docs"
	"nexus_settlement/internal/adapter/http/routes"
	"nexus_settlement/internal/infrastructure/config"
	"nexus_settlement/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Settlement Service API
// @version         1.0
// @description     Funding request ledger and order settlement engine backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting settlement service",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("escrow_account_id", cfg.Settlement.EscrowAccountID),
	)
	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		stop()
		_ = log.Sync()
		os.Exit(1)
	}
}
