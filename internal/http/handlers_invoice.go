package http

import (
	"log/slog"
	"net/http"

	"invoiceflash/internal/core"
)

type pageData struct {
	Invoice    core.Invoice
	View       core.InvoiceView
	Currencies []core.Currency
	Themes     []core.Theme
	Saved      bool
}

func (s *Server) pageData(saved bool) pageData {
	inv := s.invoices.Snapshot()
	return pageData{
		Invoice:    inv,
		View:       core.Project(inv),
		Currencies: core.Currencies,
		Themes:     core.Themes,
		Saved:      saved,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r.URL.Query().Get("saved") == "1")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render index", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// renderPreview writes the preview partial for the current invoice. Edit
// handlers respond with it so the client can swap the projection in place.
func (s *Server) renderPreview(w http.ResponseWriter, r *http.Request) {
	view := core.Project(s.invoices.Snapshot())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "preview.html", view); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render preview", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	s.renderPreview(w, r)
}

// handleEditInvoice applies a sparse field edit and returns the refreshed preview.
func (s *Server) handleEditInvoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	change, err := parseInvoiceChange(r.PostForm)
	if err != nil {
		slog.WarnContext(r.Context(), "Rejected invoice edit", "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.invoices.UpdateInvoice(r.Context(), change)
	s.renderPreview(w, r)
}

func (s *Server) handleEditItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		http.Error(w, "Missing item id", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	change, err := parseItemChange(r.PostForm)
	if err != nil {
		slog.WarnContext(r.Context(), "Rejected item edit", "item_id", itemID, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.invoices.UpdateItem(r.Context(), itemID, change)
	s.renderPreview(w, r)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	s.invoices.AddItem(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		http.Error(w, "Missing item id", http.StatusBadRequest)
		return
	}

	s.invoices.RemoveItem(r.Context(), itemID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleNewInvoice discards the working invoice and starts a fresh one.
func (s *Server) handleNewInvoice(w http.ResponseWriter, r *http.Request) {
	s.invoices.Reset(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.invoices.SaveDraft(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Failed to save draft", "error", err)
		http.Error(w, "Failed to save draft", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/?saved=1", http.StatusSeeOther)
}
