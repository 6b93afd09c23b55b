package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// PDFPath is the PDF written next to a markdown deck.
func PDFPath(markdownPath string) string {
	return strings.TrimSuffix(markdownPath, filepath.Ext(markdownPath)) + ".pdf"
}

// RenderPDF renders a markdown deck into an A4 PDF at pdfPath.
// The built-in PDF fonts cover Latin text only, so kana and kanji are not drawn faithfully.
func RenderPDF(markdown []byte, pdfPath string) error {
	if filepath.Ext(pdfPath) != ".pdf" {
		return fmt.Errorf("output file must have .pdf extension: %s", pdfPath)
	}
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}
