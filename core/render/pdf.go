// Package render — PDF renderer.
// Lays the roster out as a printable A4 directory using gofpdf.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/rosterpipe/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the roster as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render writes one block per legislator.
func (r *PDFRenderer) Render(roster []core.Legislator, meta core.RosterMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	// Core fonts are cp1252; this maps accented names correctly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(heading(meta)), "", "L", false)
	pdf.Ln(2)

	// Source URL.
	if meta.URL != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+meta.URL), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("%d members", len(roster)), "", "L", false)
	pdf.Ln(4)

	for _, l := range roster {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, tr(l.Name), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		for _, d := range details(l) {
			pdf.MultiCell(0, 5, tr(d.label+": "+d.value), "", "L", false)
		}

		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(0, 0, 180)
		pdf.MultiCell(0, 4, l.URL, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
