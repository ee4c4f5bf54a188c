package cv

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Filename is the download name for the CV in lang.
func Filename(lang Language) string {
	return fmt.Sprintf("cv_%s.pdf", lang)
}

// WritePDF renders the one-page CV for lang to w.
func WritePDF(w io.Writer, lang Language) error {
	p := ProfileFor(lang)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s - CV", p.Name), true)
	pdf.SetAuthor(p.Name, true)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Core fonts are cp1252; accents in the Spanish copy need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(p.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, tr(p.Title), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(p.Experience), "", "L", false)
	pdf.Ln(3)
	pdf.MultiCell(0, 6, tr(p.Education), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render cv pdf: %w", err)
	}
	return nil
}
