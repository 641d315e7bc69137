package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"galaxy-bites/config"
	"galaxy-bites/database"
	"galaxy-bites/logger"
	"galaxy-bites/middleware"
	"galaxy-bites/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	logger.Debug("configuration loaded",
		"gin_mode", cfg.App.Mode,
		"database_configured", cfg.Database.URL != "",
		"log_output", cfg.Log.Output)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Warn("database unavailable, write routes will fail", "error", err)
	} else {
		logger.Info("database connected", "name", store.Name())
	}
	defer func() {
		if err := store.Disconnect(context.Background()); err != nil {
			logger.Error("database disconnect failed", "error", err)
		}
	}()

	gin.SetMode(cfg.App.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	routes.HealthRoutes(router, store, cfg.Database.URL != "")
	routes.MenuRoutes(router, store)
	routes.OrderRoutes(router, store)
	routes.NotFoundRoute(router)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", "app", cfg.App.Name, "version", cfg.App.Version, "port", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped", "app", cfg.App.Name)
}
