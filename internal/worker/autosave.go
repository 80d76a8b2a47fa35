// Package worker runs the periodic draft autosave alongside the server.
// Per-edit saves are best-effort; the autosave pass retries anything a
// transient storage failure dropped.
package worker

import (
	"context"
	"time"

	"invoiceflash/internal/log"
	"invoiceflash/internal/services"
)

type Autosave struct {
	invoices *services.InvoiceService
	interval time.Duration
	logger   *log.Logger
}

func NewAutosave(invoices *services.InvoiceService, interval time.Duration, logger *log.Logger) *Autosave {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Autosave{
		invoices: invoices,
		interval: interval,
		logger:   logger.WithComponent("autosave"),
	}
}

// Run flushes the live draft on every tick until the context is
// cancelled. It always returns nil on shutdown so an errgroup does not
// treat cancellation as a failure.
func (w *Autosave) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Autosave started", "interval", w.interval.String())
	for {
		select {
		case <-ctx.Done():
			// Final flush so a clean shutdown never loses the draft.
			if err := w.invoices.SaveDraft(context.Background()); err != nil {
				w.logger.Warn("Final draft flush failed", "error", err)
			}
			w.logger.Info("Autosave stopped")
			return nil
		case <-ticker.C:
			if err := w.invoices.SaveDraft(ctx); err != nil {
				w.logger.WarnContext(ctx, "Periodic draft save failed", "error", err)
			}
		}
	}
}
