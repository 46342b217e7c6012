package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/assetbook/backend/internal/adapter/httpapi"
	"github.com/assetbook/backend/internal/adapter/identity"
	"github.com/assetbook/backend/internal/adapter/repository/postgres"
	"github.com/assetbook/backend/internal/config"
	"github.com/assetbook/backend/internal/logging"
	"github.com/assetbook/backend/internal/usecase/accounts"
	"github.com/assetbook/backend/internal/usecase/catalog"
	"github.com/assetbook/backend/internal/usecase/portfolio"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		panic(err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	// 1. Setup Database
	db, err := postgres.NewDB(cfg.Database.DSN())
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	// 2. Initialize Repositories (Postgres)
	categoryRepo := postgres.NewAssetCategoryRepository(db)
	groupingRepo := postgres.NewGroupingRepository(db)
	holdingRepo := postgres.NewHoldingRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	assetMasterRepo := postgres.NewAssetMasterRepository(db)

	// 3. Initialize Services (Use Cases)
	ids := identity.NewGenerator()
	categoryService := portfolio.NewCategoryService(categoryRepo, ids)
	groupingService := portfolio.NewGroupingService(groupingRepo, ids)
	holdingService := portfolio.NewHoldingService(holdingRepo, ids)
	accountService := accounts.NewAccountService(accountRepo, ids)
	catalogService := catalog.NewAssetMasterService(assetMasterRepo, ids)

	// 4. Start HTTP Server
	server := httpapi.NewServer(logger, accountService, catalogService, categoryService, groupingService, holdingService)
	httpServer := httpapi.NewHTTPServer(server, cfg.Service.Port)

	go func() {
		logger.WithField("port", cfg.Service.Port).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("failed to serve HTTP server")
		}
	}()

	waitForShutdown(httpServer, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully drains the server.
func waitForShutdown(httpServer *http.Server, logger *logrus.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.WithField("signal", sig.String()).Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("shutdown did not complete cleanly")
	}

	logger.Info("HTTP server stopped")
}
