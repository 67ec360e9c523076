// ABOUTME: Main entry point for the Source Trust API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"sourcetrust-api/api"
	"sourcetrust-api/api/handlers"
	"sourcetrust-api/api/middleware"
	"sourcetrust-api/core/interfaces"
	"sourcetrust-api/core/trust"
	stdhttp "sourcetrust-api/infrastructure/http/standard"
	logruslogger "sourcetrust-api/infrastructure/logger/logrus"
	"sourcetrust-api/infrastructure/resolver/netdns"
	"sourcetrust-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger, with rotating file output when configured
	var logOut io.Writer = os.Stdout
	if cfg.Log.File != "" {
		logOut = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	logger := logruslogger.NewLogger(logOut, cfg.Log.Level)

	logger.Info("Starting Source Trust API", map[string]interface{}{
		"port":                  cfg.Server.Port,
		"classifier_configured": cfg.Analysis.Classifier.APIKey != "",
		"search_configured":     cfg.Analysis.Search.APIKey != "",
		"call_timeout_s":        cfg.Analysis.CallTimeout,
	})

	// Outbound HTTP client with outgoing-call logging
	httpClient := stdhttp.NewStandardHTTPClientWithTransport(
		time.Duration(cfg.Analysis.CallTimeout+5)*time.Second,
		&middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		},
	)

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Resolver:   netdns.NewResolver(),
		Logger:     logger,
	}

	trustService := trust.NewService(deps, cfg.Analysis)

	apiConfig := api.APIConfig{
		Logger:    logger,
		RateLimit: 10,
		RateBurst: 20,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	analyzeHandler := handlers.NewAnalyzeHandler(trustService)
	analyzeHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
