package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agenthands/classmem/internal/config"
	"github.com/agenthands/classmem/internal/core"
	"github.com/agenthands/classmem/internal/driver"
	"github.com/agenthands/classmem/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := driver.NewSource(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize data source: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	store := core.New(src, core.WithLogger(slog.Default()))
	srv := server.NewServer(store)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.SetupRouter(),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s (source: %s)", cfg.Server.Port, src.Name())
		serveErr <- httpSrv.ListenAndServe()
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			exitCode = 1
		}
	case <-ctx.Done():
		log.Println("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
			exitCode = 1
		}
		cancel()
	}

	if err := driver.CloseSource(context.Background(), src); err != nil {
		log.Printf("Failed to close data source: %v", err)
		exitCode = 1
	}
	os.Exit(exitCode)
}
