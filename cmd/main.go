/*
Package main is the entry point for the Mindful Campus server.

It is responsible for loading configuration, initializing the global logging system,
opening the durable session slot, rehydrating the session store, setting up the HTTP
server, and gracefully handling operating system interrupt signals (SIGINT, SIGTERM)
to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindcampus/internal/app/bridge"
	"mindcampus/internal/app/content"
	"mindcampus/internal/app/session"
	"mindcampus/internal/app/storage"
	"mindcampus/internal/configs"
	"mindcampus/internal/handler"
	"mindcampus/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("chat_api_url", cfg.ChatAPIURL).
		Dur("chat_reply_timeout", cfg.ChatReplyTimeout).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the durable session slot
	slot, err := storage.Open(cfg.DataPath)
	if err != nil {
		logx.Fatal(err, "Failed to open session storage")
	}
	defer func() {
		if err := slot.Close(); err != nil {
			logx.Error(err, "Failed to close session storage")
		}
	}()

	// Rehydrate the session store from the slot before serving any request,
	// so route decisions never observe the loading state in normal operation.
	sessions := session.NewStore(slot)
	sessions.Init(ctx)

	catalog := content.NewCatalog()

	deps := &handler.AppDeps{
		Config:     cfg,
		Sessions:   sessions,
		Bridge:     bridge.NewClient(cfg.ChatAPIURL, cfg.ChatReplyTimeout),
		Transcript: bridge.NewTranscript(catalog.AIResponses.Greeting),
		Catalog:    catalog,
		Board:      content.NewBoard(catalog.SeedForumPosts),
		Moods:      content.NewMoodLog(),
	}

	// Setup HTTP server and routes
	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.ChatReplyTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Mindful Campus Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
