// Package pdf renders the invoice view model onto an A4 page with the
// selected theme's colors. Long item lists paginate automatically.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"invoiceflash/internal/core"
)

const (
	pageMargin = 12.0
	rowHeight  = 8.0
)

// Filename picks the download name for an export: the invoice number, or
// a generic fallback when it is blank.
func Filename(invoiceNumber string) string {
	n := strings.TrimSpace(invoiceNumber)
	if n == "" {
		return "invoice.pdf"
	}
	return n + ".pdf"
}

// Render draws the invoice view onto an A4 portrait document and returns
// the PDF bytes. It only consumes the view model; the caller projects the
// invoice first.
func Render(view core.InvoiceView) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	pageWidth, _ := doc.GetPageSize()
	usable := pageWidth - 2*pageMargin

	accentR, accentG, accentB := hexToRGB(view.Styles.AccentColor)
	headerR, headerG, headerB := hexToRGB(view.Styles.HeaderBg)
	mutedR, mutedG, mutedB := hexToRGB(view.Styles.MutedTextColor)
	textR, textG, textB := hexToRGB(view.Styles.TextColor)

	// Header band
	doc.SetFillColor(headerR, headerG, headerB)
	doc.Rect(0, 0, pageWidth, 24, "F")
	doc.SetTextColor(hexToRGB(view.Styles.HeaderText))
	doc.SetFont("Helvetica", "B", 22)
	doc.SetXY(pageMargin, 7)
	doc.CellFormat(usable/2, 10, "INVOICE", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(usable/2, 10, tr(view.InvoiceNumber), "", 1, "R", false, 0, "")
	doc.SetY(30)

	if view.HasLogo {
		drawLogo(doc, view.Logo)
	}

	// Business block (right) and bill-to block (left)
	top := doc.GetY()
	doc.SetTextColor(textR, textG, textB)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(usable/2, 6, "Bill To:", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(usable/2, 5, tr(view.ClientName), "", 1, "L", false, 0, "")
	doc.SetTextColor(mutedR, mutedG, mutedB)
	for _, line := range view.ClientAddressLines {
		doc.CellFormat(usable/2, 5, tr(line), "", 1, "L", false, 0, "")
	}
	if view.ClientEmail != "" {
		doc.CellFormat(usable/2, 5, tr(view.ClientEmail), "", 1, "L", false, 0, "")
	}
	billToBottom := doc.GetY()

	doc.SetXY(pageMargin+usable/2, top)
	doc.SetTextColor(accentR, accentG, accentB)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(usable/2, 6, tr(view.BusinessName), "", 2, "R", false, 0, "")
	doc.SetTextColor(mutedR, mutedG, mutedB)
	doc.SetFont("Helvetica", "", 10)
	for _, line := range view.BusinessAddressLines {
		doc.SetX(pageMargin + usable/2)
		doc.CellFormat(usable/2, 5, tr(line), "", 2, "R", false, 0, "")
	}
	if view.BusinessPhone != "" {
		doc.SetX(pageMargin + usable/2)
		doc.CellFormat(usable/2, 5, tr(view.BusinessPhone), "", 2, "R", false, 0, "")
	}
	if view.BusinessEmail != "" {
		doc.SetX(pageMargin + usable/2)
		doc.CellFormat(usable/2, 5, tr(view.BusinessEmail), "", 2, "R", false, 0, "")
	}
	if doc.GetY() < billToBottom {
		doc.SetY(billToBottom)
	}
	doc.Ln(4)

	// Dates and currency
	doc.SetTextColor(textR, textG, textB)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(usable, 5, tr("Invoice Date: "+view.InvoiceDate), "", 1, "L", false, 0, "")
	doc.CellFormat(usable, 5, tr("Due Date: "+view.DueDate), "", 1, "L", false, 0, "")
	doc.CellFormat(usable, 5, tr("Currency: "+view.CurrencyCode), "", 1, "L", false, 0, "")
	doc.Ln(4)

	// Items table
	colDesc := usable * 0.5
	colQty := usable * 0.14
	colRate := usable * 0.18
	colAmount := usable * 0.18

	doc.SetFillColor(hexToRGB(view.Styles.TableHeaderBg))
	doc.SetTextColor(hexToRGB(view.Styles.TableHeaderText))
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(colDesc, rowHeight, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(colQty, rowHeight, "Quantity", "1", 0, "C", true, 0, "")
	doc.CellFormat(colRate, rowHeight, "Rate", "1", 0, "C", true, 0, "")
	doc.CellFormat(colAmount, rowHeight, "Amount", "1", 1, "R", true, 0, "")

	doc.SetTextColor(textR, textG, textB)
	doc.SetFont("Helvetica", "", 10)
	for _, row := range view.Rows {
		doc.CellFormat(colDesc, rowHeight, tr(row.Description), "1", 0, "L", false, 0, "")
		doc.CellFormat(colQty, rowHeight, tr(row.Quantity), "1", 0, "C", false, 0, "")
		doc.CellFormat(colRate, rowHeight, tr(row.Rate), "1", 0, "C", false, 0, "")
		doc.CellFormat(colAmount, rowHeight, tr(row.Amount), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	// Totals block, right-aligned
	labelW := usable - colAmount - colRate
	doc.SetX(pageMargin + labelW)
	doc.CellFormat(colRate, 6, "Subtotal:", "", 0, "L", false, 0, "")
	doc.CellFormat(colAmount, 6, tr(view.Subtotal), "", 1, "R", false, 0, "")
	if view.ShowTax {
		doc.SetX(pageMargin + labelW)
		doc.CellFormat(colRate, 6, tr(view.TaxLabel+":"), "", 0, "L", false, 0, "")
		doc.CellFormat(colAmount, 6, tr(view.TaxAmount), "", 1, "R", false, 0, "")
	}
	doc.SetX(pageMargin + labelW)
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(hexToRGB(view.Styles.TotalHighlight))
	doc.CellFormat(colRate, 8, "Total:", "T", 0, "L", false, 0, "")
	doc.CellFormat(colAmount, 8, tr(view.Total), "T", 1, "R", false, 0, "")
	doc.Ln(4)

	// Notes and terms
	doc.SetFont("Helvetica", "", 10)
	if view.ShowNotes {
		doc.SetTextColor(accentR, accentG, accentB)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(usable, 6, "Notes:", "", 1, "L", false, 0, "")
		doc.SetTextColor(mutedR, mutedG, mutedB)
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(usable, 5, tr(view.Notes), "", "L", false)
		doc.Ln(2)
	}
	if view.ShowTerms {
		doc.SetTextColor(accentR, accentG, accentB)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(usable, 6, "Terms & Conditions:", "", 1, "L", false, 0, "")
		doc.SetTextColor(mutedR, mutedG, mutedB)
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(usable, 5, tr(view.Terms), "", "L", false)
	}

	doc.Ln(6)
	doc.SetTextColor(mutedR, mutedG, mutedB)
	doc.SetFont("Helvetica", "I", 8)
	doc.CellFormat(usable, 5, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLogo places the data-URL logo near the top left, under the header
// band. Undecodable logos are skipped rather than failing the export.
func drawLogo(doc *gofpdf.Fpdf, dataURL string) {
	idx := strings.Index(dataURL, ";base64,")
	if !strings.HasPrefix(dataURL, "data:image/") || idx < 0 {
		return
	}
	mime := dataURL[len("data:"):idx]
	var imageType string
	switch mime {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg":
		imageType = "JPG"
	case "image/gif":
		imageType = "GIF"
	default:
		return
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	doc.RegisterImageOptionsReader("logo", opts, bytes.NewReader(raw))
	if doc.Err() {
		// Reset so a bad logo does not poison the rest of the document.
		doc.SetError(nil)
		return
	}
	doc.ImageOptions("logo", pageMargin, doc.GetY(), 0, 16, false, opts, 0, "")
	doc.SetY(doc.GetY() + 20)
}

// hexToRGB parses a #rrggbb color. Anything else comes back black, which
// is a safe default on a white page.
func hexToRGB(hexColor string) (int, int, int) {
	s := strings.TrimPrefix(hexColor, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
