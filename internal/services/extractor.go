package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"farhan/portfolio-generator/internal/models"
)

// Media types accepted for resume uploads. The filename extension is the
// fallback for clients that send a generic type.
const (
	mediaTypePDF  = "application/pdf"
	mediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mediaTypeDOC  = "application/msword"
)

type TextExtractor interface {
	Extract(doc models.UploadedDocument) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract returns the plain text of a PDF or DOCX resume. An unrecognized
// format or a missing file yields an empty string with no error; the caller
// decides whether that is fatal. Decode failures on a recognized format are
// returned as errors.
func (e *textExtractor) Extract(doc models.UploadedDocument) (string, error) {
	if doc.IsZero() {
		return "", nil
	}

	name := strings.ToLower(doc.Name)

	switch {
	case doc.MediaType == mediaTypePDF || strings.HasSuffix(name, ".pdf"):
		return extractPDF(doc.Data)
	case doc.MediaType == mediaTypeDOCX || doc.MediaType == mediaTypeDOC || strings.HasSuffix(name, ".docx"):
		return extractDOCX(doc.Data)
	}

	return "", nil
}

// extractPDF joins the text of every page with a single newline. A page with
// no extractable text contributes an empty segment so the page count stays
// visible in the output.
func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}

		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// extractDOCX walks word/document.xml and collects paragraph text in document
// order, joined with single newlines. Tabs and soft line breaks inside runs
// are kept as \t and \n.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}

	var document io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			document, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("no word/document.xml in archive")
	}
	defer document.Close()

	decoder := xml.NewDecoder(document)

	var (
		paragraphs  []string
		current     strings.Builder
		inParagraph bool
		inText      bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			case "tab":
				if inParagraph {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if inParagraph {
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
					inParagraph = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
