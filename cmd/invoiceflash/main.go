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
	"golang.org/x/sync/errgroup"

	"invoiceflash/internal/backend"
	"invoiceflash/internal/config"
	apphttp "invoiceflash/internal/http"
	applog "invoiceflash/internal/log"
	"invoiceflash/internal/logo"
	"invoiceflash/internal/services"
	"invoiceflash/internal/worker"
)

func main() {
	// Load .env if present (ignore error if file doesn't exist)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Draft persistence backend
	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateStore(ctx, backend.Config{
		Type:          backend.Type(cfg.DraftBackend),
		SQLiteDBPath:  cfg.SQLiteDBPath,
		DraftFilePath: cfg.DraftFilePath,
		DraftKey:      cfg.DraftKey,
	})
	if err != nil {
		logger.Error("Failed to initialize draft backend", "error", err, "backend", cfg.DraftBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", "error", err)
			}
		}()
	}

	invoices := services.NewInvoiceService(result.Store, logger.WithComponent("invoices"))
	invoices.LoadDraft(ctx)

	logos := logo.NewService(cfg.MaxLogoBytes)

	srv := apphttp.NewServer(":"+cfg.Port, invoices, logos, cfg.MaxLogoBytes)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	autosave := worker.NewAutosave(invoices, cfg.AutosaveInterval, logger.WithComponent("autosave"))

	// Graceful shutdown handling
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting invoiceflash server", "port", cfg.Port, "backend", cfg.DraftBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return autosave.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}
