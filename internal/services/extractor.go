package services

import (
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// TextExtractor turns a document on disk into plain text. Every failure is reported as
// models.ErrExtractionFailed or models.ErrUnsupportedFormat, never as a panic.
type TextExtractor interface {
	ExtractText(doc models.Document) (string, error)
}

type textExtractor struct {
	pdfParser  PDFParserService
	docxParser DOCXParserService
}

func NewTextExtractor(pdfParser PDFParserService, docxParser DOCXParserService) TextExtractor {
	return &textExtractor{
		pdfParser:  pdfParser,
		docxParser: docxParser,
	}
}

// ExtractText implements TextExtractor.
func (e *textExtractor) ExtractText(doc models.Document) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %s parser panic: %v", models.ErrExtractionFailed, doc.Format, r)
		}
	}()

	switch doc.Format {
	case models.FormatPDF:
		return e.pdfParser.ExtractText(doc.Path)
	case models.FormatDOCX:
		return e.docxParser.ExtractText(doc.Path)
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedFormat, doc.Path)
	}
}
