package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"invoiceflash/internal/core"
	"invoiceflash/internal/pdf"
)

// handleExportPDF renders the current invoice to PDF and streams it as a
// download. Concurrent exports are rejected rather than queued.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if !s.exportGate.TryBegin() {
		http.Error(w, "Export already in progress", http.StatusConflict)
		return
	}

	inv := s.invoices.Snapshot()
	data, err := pdf.Render(core.Project(inv))
	s.exportGate.Finish(err)
	if err != nil {
		slog.ErrorContext(r.Context(), "PDF export failed", "error", err)
		http.Error(w, "PDF export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename(inv.InvoiceNumber)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	_, _ = w.Write(data)
}
