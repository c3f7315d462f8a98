package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"watchlist-screening/internal/api"
	"watchlist-screening/internal/api/handlers"
	"watchlist-screening/internal/config"
	"watchlist-screening/internal/logger"
	"watchlist-screening/internal/scheduler"
	"watchlist-screening/internal/screening"
	"watchlist-screening/internal/store"
	"watchlist-screening/internal/watchlist"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load and validate configuration first (before logger)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Logger)

	logger.Info().
		Str("environment", cfg.Logger.Environment).
		Str("log_level", cfg.Logger.Level).
		Msg("configuration loaded successfully")

	// Watchlist cache: a missing document at startup is not fatal, screening
	// requests report it as a categorized error until the file appears.
	loader := watchlist.NewLoader(cfg.Storage.WatchlistPath)
	if err := loader.Reload(); err != nil {
		logger.Warn().Err(err).Str("path", cfg.Storage.WatchlistPath).Msg("watchlist not loaded at startup")
	} else {
		logger.Info().Int("entries", loader.Size()).Msg("watchlist loaded")
	}

	resultStore := store.New(cfg.Storage.DataDir, cfg.Storage.OutputDir)
	screeningService := screening.NewService(resultStore, loader, cfg.Matching, cfg.Screening.MaxConcurrentRuns)

	refreshScheduler := scheduler.NewScheduler(loader, cfg.Screening.WatchlistReloadSpec)
	if err := refreshScheduler.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer refreshScheduler.Stop()

	screeningHandler := handlers.NewScreeningHandler(screeningService, resultStore)
	systemHandler := handlers.NewSystemHandler(loader, cfg.Matching)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(api.RequestIDMiddleware())
	router.Use(api.LoggingMiddleware())
	router.Use(api.ErrorHandlerMiddleware())

	router.GET("/health", systemHandler.Health)
	router.POST("/process/:userId/:requestId", screeningHandler.Process)
	router.GET("/results/:userId/:requestId", screeningHandler.GetResult)
	router.GET("/system/matching-config", systemHandler.GetMatchingConfig)

	// Use a listener so we can discover the selected port when PORT=0
	addr := cfg.GetBindAddress()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", addr).Msg("failed to bind listener")
	}

	tcpAddr, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		_ = ln.Close()
		logger.Fatal().Msg("failed to determine TCP address")
	}
	selectedPort := tcpAddr.Port

	srv := &http.Server{
		Addr:    ln.Addr().String(),
		Handler: router,
	}

	go func() {
		logger.Info().
			Int("port", selectedPort).
			Str("host", cfg.Server.Host).
			Msg("starting server")
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
