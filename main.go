package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/koldo-a/backend-2/config"
	"github.com/koldo-a/backend-2/controllers"
	"github.com/koldo-a/backend-2/database"
	"github.com/koldo-a/backend-2/logger"
	"github.com/koldo-a/backend-2/repository"
	"github.com/koldo-a/backend-2/server"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadEnvVars(); err != nil {
		log.Fatalf("Failed to load environment variables: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger := logger.New(cfg.LogLevel)
	defer zapLogger.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := database.ConnectToDB(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			zapLogger.Fatal("Failed to migrate database", zap.Error(err))
		}
		zapLogger.Info("Database migrated")
	}

	handler := controllers.NewHandler(repository.NewStore(db), zapLogger)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.NewRouter(handler, zapLogger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zapLogger.Info("Starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shut down", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	zapLogger.Info("Server exited properly")
}
