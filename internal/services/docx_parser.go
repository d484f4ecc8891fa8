package services

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type DOCXParserService interface {
	ExtractText(filePath string) (string, error)
}

type docxParserService struct{}

func NewDOCXParserService() DOCXParserService {
	return &docxParserService{}
}

// ExtractText implements DOCXParserService. Body paragraphs come first, in document
// order, followed by the text of every table cell (table, row, then cell order).
func (d *docxParserService) ExtractText(filePath string) (string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open DOCX: %v", models.ErrExtractionFailed, err)
	}
	defer r.Close()

	text, err := ExtractDocumentXMLText(r.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrExtractionFailed, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content found in DOCX", models.ErrExtractionFailed)
	}

	return text, nil
}

// wordNode is a generic WordprocessingML element. Namespaces are ignored; only the
// local element names matter.
type wordNode struct {
	XMLName  xml.Name
	CharData string     `xml:",chardata"`
	Children []wordNode `xml:",any"`
}

// ExtractDocumentXMLText flattens the content of word/document.xml.
func ExtractDocumentXMLText(documentXML string) (string, error) {
	var root wordNode
	if err := xml.Unmarshal([]byte(documentXML), &root); err != nil {
		return "", fmt.Errorf("failed to parse document.xml: %w", err)
	}

	body := root.child("body")
	if body == nil {
		return "", fmt.Errorf("document.xml has no body")
	}

	var lines []string
	for _, p := range body.children("p") {
		lines = append(lines, p.paragraphText())
	}

	for _, tbl := range body.children("tbl") {
		for _, tr := range tbl.children("tr") {
			for _, tc := range tr.children("tc") {
				var cell []string
				for _, p := range tc.children("p") {
					cell = append(cell, p.paragraphText())
				}
				lines = append(lines, strings.Join(cell, "\n"))
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}

func (n *wordNode) child(local string) *wordNode {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			return &n.Children[i]
		}
	}
	return nil
}

func (n *wordNode) children(local string) []wordNode {
	var out []wordNode
	for _, c := range n.Children {
		if c.XMLName.Local == local {
			out = append(out, c)
		}
	}
	return out
}

func (n *wordNode) paragraphText() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *wordNode) writeText(b *strings.Builder) {
	for _, c := range n.Children {
		switch c.XMLName.Local {
		case "t":
			b.WriteString(c.CharData)
		case "tab":
			b.WriteString("\t")
		case "br", "cr":
			b.WriteString("\n")
		case "delText", "instrText", "pPr", "rPr":
			// deleted revisions, field codes and formatting carry no visible text
		case "AlternateContent", "drawing", "pict", "object", "txbxContent":
			// text boxes and embedded shapes are not part of the paragraph text
		default:
			c.writeText(b)
		}
	}
}
