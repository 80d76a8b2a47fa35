// Command invoiceflash-pdf renders the saved draft to a PDF file without
// starting the web server. Useful for scripted exports and backups.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"invoiceflash/internal/backend"
	"invoiceflash/internal/config"
	"invoiceflash/internal/core"
	applog "invoiceflash/internal/log"
	"invoiceflash/internal/pdf"
)

func main() {
	_ = godotenv.Load()

	output := flag.String("o", "", "output file path (default: derived from the invoice number)")
	flag.Parse()

	logger := applog.New(applog.DefaultConfig()).WithComponent("pdf-export")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

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
	defer func() {
		if result.Cleanup != nil {
			_ = result.Cleanup()
		}
	}()

	raw, found, err := result.Store.Load(ctx)
	if err != nil {
		logger.Error("Failed to load draft", "error", err)
		os.Exit(1)
	}

	inv := core.NewInvoice()
	if found {
		if err := json.Unmarshal(raw, &inv); err != nil {
			logger.Error("Draft is not valid JSON", "error", err)
			os.Exit(1)
		}
		// Recompute totals so a hand-edited draft still exports consistently.
		inv = inv.ApplyEdit(core.Change{})
	} else {
		logger.Warn("No saved draft found, exporting a fresh invoice")
	}

	data, err := pdf.Render(core.Project(inv))
	if err != nil {
		logger.Error("PDF rendering failed", "error", err)
		os.Exit(1)
	}

	path := *output
	if path == "" {
		path = pdf.Filename(inv.InvoiceNumber)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("Failed to write PDF", "error", err, "path", path)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", path, len(data))
}
