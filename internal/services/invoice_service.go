// Package services orchestrates the live invoice aggregate: edits flow
// through it, persistence happens as a side effect, and the busy-flag
// gates for the async collaborators live here.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"invoiceflash/internal/core"
	"invoiceflash/internal/draft"
	"invoiceflash/internal/log"
)

// InvoiceService owns the single live invoice. The slot is replaced
// wholesale on every edit (copy-on-write), so readers never observe a
// partially applied change.
type InvoiceService struct {
	mu      sync.Mutex
	current core.Invoice
	store   draft.Store
	logger  *log.Logger
}

func NewInvoiceService(store draft.Store, logger *log.Logger) *InvoiceService {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &InvoiceService{
		current: core.NewInvoice(),
		store:   store,
		logger:  logger.WithComponent("invoice-service"),
	}
}

// LoadDraft restores the persisted draft into the live slot. A missing or
// unparsable draft falls back to a fresh invoice; the error is logged and
// swallowed, never surfaced.
func (s *InvoiceService) LoadDraft(ctx context.Context) {
	data, found, err := s.store.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read draft, starting fresh", "error", err)
		return
	}
	if !found {
		s.logger.InfoContext(ctx, "No saved draft, starting fresh")
		return
	}

	var inv core.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		s.logger.WarnContext(ctx, "Saved draft is corrupted, starting fresh", "error", err)
		return
	}

	s.mu.Lock()
	// Totals are recomputed on restore so a hand-edited or stale draft
	// can never smuggle in inconsistent numbers.
	s.current = inv.ApplyEdit(core.Change{})
	s.mu.Unlock()
	s.logger.InfoContext(ctx, "Draft restored", "invoice_number", inv.InvoiceNumber, "items", len(inv.Items))
}

// Snapshot returns a copy of the live invoice.
func (s *InvoiceService) Snapshot() core.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.ApplyEdit(core.Change{})
}

// UpdateInvoice applies a sparse top-level change and persists the result.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, change core.Change) core.Invoice {
	return s.replace(ctx, func(inv core.Invoice) core.Invoice {
		return inv.ApplyEdit(change)
	})
}

// UpdateItem applies a sparse change to one line item and persists.
func (s *InvoiceService) UpdateItem(ctx context.Context, itemID string, change core.ItemChange) core.Invoice {
	return s.replace(ctx, func(inv core.Invoice) core.Invoice {
		return inv.ApplyItemEdit(itemID, change)
	})
}

// AddItem appends a blank line item and persists.
func (s *InvoiceService) AddItem(ctx context.Context) core.Invoice {
	return s.replace(ctx, core.Invoice.AddItem)
}

// RemoveItem drops a line item and persists.
func (s *InvoiceService) RemoveItem(ctx context.Context, itemID string) core.Invoice {
	return s.replace(ctx, func(inv core.Invoice) core.Invoice {
		return inv.RemoveItem(itemID)
	})
}

// Reset replaces the live invoice with a freshly defaulted one and
// persists it.
func (s *InvoiceService) Reset(ctx context.Context) core.Invoice {
	return s.replace(ctx, func(core.Invoice) core.Invoice {
		return core.NewInvoice()
	})
}

// SaveDraft persists the live invoice on demand. Unlike the per-edit
// side-effect saves, the error is returned so the caller can surface it.
func (s *InvoiceService) SaveDraft(ctx context.Context) error {
	s.mu.Lock()
	inv := s.current
	s.mu.Unlock()

	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.store.Save(ctx, data); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// replace swaps the live slot under the lock, then persists outside the
// edit path's critical section. A failed save is logged, not fatal: the
// live invoice stays valid and the autosave worker retries later.
func (s *InvoiceService) replace(ctx context.Context, apply func(core.Invoice) core.Invoice) core.Invoice {
	s.mu.Lock()
	next := apply(s.current)
	s.current = next
	s.mu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist draft after edit", "error", err)
	}
	return next
}

func (s *InvoiceService) persist(ctx context.Context, inv core.Invoice) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return s.store.Save(ctx, data)
}
