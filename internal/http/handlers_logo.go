package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"invoiceflash/internal/core"
	"invoiceflash/internal/logo"
)

// handleLogoUpload reads the uploaded file, validates it is an image and
// stores it on the invoice as a data URL.
func (s *Server) handleLogoUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxLogoBytes); err != nil {
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("logo")
	if err != nil {
		http.Error(w, "Missing logo file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxLogoBytes+1))
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	encoded, err := s.logos.EncodeUpload(data)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, logo.ErrTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		slog.WarnContext(r.Context(), "Rejected logo upload", "error", err)
		http.Error(w, err.Error(), status)
		return
	}

	s.invoices.UpdateInvoice(r.Context(), core.Change{Logo: &encoded})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogoRemoveBackground runs background removal on the current logo.
// Only one removal can be in flight at a time.
func (s *Server) handleLogoRemoveBackground(w http.ResponseWriter, r *http.Request) {
	current := s.invoices.Snapshot().Logo
	if current == "" {
		http.Error(w, "No logo to process", http.StatusConflict)
		return
	}

	if !s.removeBgGate.TryBegin() {
		http.Error(w, "Background removal already in progress", http.StatusConflict)
		return
	}

	processed, err := s.logos.RemoveBackground(current)
	s.removeBgGate.Finish(err)
	if err != nil {
		slog.ErrorContext(r.Context(), "Background removal failed", "error", err)
		http.Error(w, "Background removal failed", http.StatusUnprocessableEntity)
		return
	}

	s.invoices.UpdateInvoice(r.Context(), core.Change{Logo: &processed})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogoDelete(w http.ResponseWriter, r *http.Request) {
	empty := ""
	s.invoices.UpdateInvoice(r.Context(), core.Change{Logo: &empty})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
