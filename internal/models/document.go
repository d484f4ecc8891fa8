package models

import (
	"path/filepath"
	"strings"
)

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// Document is an uploaded résumé living on disk for the duration of one analysis.
type Document struct {
	Path   string
	Format DocumentFormat
}

func NewDocument(path string) Document {
	return Document{
		Path:   path,
		Format: FormatFromPath(path),
	}
}

// FormatFromPath returns the document format for the file extension, or "" when unsupported.
func FormatFromPath(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return ""
	}
}

func (f DocumentFormat) IsSupported() bool {
	return f == FormatPDF || f == FormatDOCX
}
