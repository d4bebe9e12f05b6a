package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farhan/portfolio-generator/internal/models"
)

// buildDocx assembles a minimal DOCX container whose document.xml holds the
// given paragraphs. An empty string becomes a self-closing empty paragraph.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		if p == "" {
			body.WriteString("<w:p/>")
			continue
		}
		body.WriteString("<w:p><w:r><w:t>")
		body.WriteString(p)
		body.WriteString("</w:t></w:r></w:p>")
	}

	document := fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
			`<w:body>%s</w:body></w:document>`,
		body.String(),
	)

	return zipWithDocument(t, "word/document.xml", document)
}

func zipWithDocument(t *testing.T, name, content string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// buildPdf assembles a minimal single-font PDF with one text row per page; an
// empty string yields a page whose content stream shows no text. Object
// offsets in the cross-reference table are computed while writing.
func buildPdf(t *testing.T, pageTexts ...string) []byte {
	t.Helper()

	escape := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

	var buf bytes.Buffer
	offsets := []int{0}

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets)-1, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pageTexts)))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pageTexts {
		writeObj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))

		var content string
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 708 Td (%s) Tj ET", escape.Replace(text))
		}
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF",
		len(offsets), xrefOffset)

	return buf.Bytes()
}

func TestTextExtractor_DocxParagraphJoin(t *testing.T) {
	extractor := NewTextExtractor()

	tests := []struct {
		name       string
		paragraphs []string
		want       string
	}{
		{
			name:       "three paragraphs two separators",
			paragraphs: []string{"First", "Second", "Third"},
			want:       "First\nSecond\nThird",
		},
		{
			name:       "empty paragraph preserved",
			paragraphs: []string{"Intro", "", "Outro"},
			want:       "Intro\n\nOutro",
		},
		{
			name:       "single paragraph no separator",
			paragraphs: []string{"Only line"},
			want:       "Only line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := models.UploadedDocument{
				Name:      "resume.docx",
				MediaType: mediaTypeDOCX,
				Data:      buildDocx(t, tt.paragraphs...),
			}

			got, err := extractor.Extract(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextExtractor_DocxTabsAndBreaks(t *testing.T) {
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` +
		`<w:p><w:r><w:t>Name</w:t><w:tab/><w:t>Title</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	extractor := NewTextExtractor()
	got, err := extractor.Extract(models.UploadedDocument{
		Name:      "resume.docx",
		MediaType: mediaTypeDOCX,
		Data:      zipWithDocument(t, "word/document.xml", document),
	})

	require.NoError(t, err)
	assert.Equal(t, "Name\tTitle\nLine one\nLine two", got)
}

// Paragraphs inside table cells are collected in document order alongside
// body paragraphs, so a resume laid out with tables keeps its text.
func TestTextExtractor_DocxTableCellParagraphs(t *testing.T) {
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:tbl><w:tr>` +
		`<w:tc><w:p><w:r><w:t>Go</w:t></w:r></w:p></w:tc>` +
		`<w:tc><w:p><w:r><w:t>SQL</w:t></w:r></w:p></w:tc>` +
		`</w:tr></w:tbl>` +
		`<w:p><w:r><w:t>Contact</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	extractor := NewTextExtractor()
	got, err := extractor.Extract(models.UploadedDocument{
		Name:      "resume.docx",
		MediaType: mediaTypeDOCX,
		Data:      zipWithDocument(t, "word/document.xml", document),
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo\nSQL\nContact", got)
}

// GetPlainText emits a leading newline before each text row, so a page's own
// text arrives as "\n<row>"; pages are then joined with exactly one "\n"
// each. A document with N pages therefore carries exactly N-1 join
// separators, and a textless page survives as an empty element between two
// of them.
func TestTextExtractor_PdfPageJoin(t *testing.T) {
	extractor := NewTextExtractor()

	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{
			name:  "three pages two separators",
			pages: []string{"Jane Doe", "Engineer", "Go and SQL"},
			want:  "\nJane Doe\n\nEngineer\n\nGo and SQL",
		},
		{
			name:  "textless page preserved",
			pages: []string{"Jane Doe", "", "Engineer"},
			want:  "\nJane Doe\n\n\nEngineer",
		},
		{
			name:  "single page no separator",
			pages: []string{"Only page"},
			want:  "\nOnly page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := models.UploadedDocument{
				Name:      "resume.pdf",
				MediaType: mediaTypePDF,
				Data:      buildPdf(t, tt.pages...),
			}

			got, err := extractor.Extract(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextExtractor_Dispatch(t *testing.T) {
	extractor := NewTextExtractor()
	docxData := buildDocx(t, "Jane Doe", "Software Engineer")

	tests := []struct {
		name      string
		doc       models.UploadedDocument
		want      string
		wantEmpty bool
	}{
		{
			name: "docx by media type with odd filename",
			doc: models.UploadedDocument{
				Name:      "resume.bin",
				MediaType: mediaTypeDOCX,
				Data:      docxData,
			},
			want: "Jane Doe\nSoftware Engineer",
		},
		{
			name: "legacy msword media type",
			doc: models.UploadedDocument{
				Name:      "resume.bin",
				MediaType: mediaTypeDOC,
				Data:      docxData,
			},
			want: "Jane Doe\nSoftware Engineer",
		},
		{
			name: "docx by extension fallback",
			doc: models.UploadedDocument{
				Name:      "resume.docx",
				MediaType: "application/octet-stream",
				Data:      docxData,
			},
			want: "Jane Doe\nSoftware Engineer",
		},
		{
			name: "extension matching is case-insensitive",
			doc: models.UploadedDocument{
				Name:      "Resume.DOCX",
				MediaType: "application/octet-stream",
				Data:      docxData,
			},
			want: "Jane Doe\nSoftware Engineer",
		},
		{
			name: "unsupported format is a legitimate empty outcome",
			doc: models.UploadedDocument{
				Name:      "resume.txt",
				MediaType: "text/plain",
				Data:      []byte("plain text resume"),
			},
			wantEmpty: true,
		},
		{
			name:      "missing file",
			doc:       models.UploadedDocument{},
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(tt.doc)
			require.NoError(t, err)
			if tt.wantEmpty {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTextExtractor_RecognizedButBroken(t *testing.T) {
	extractor := NewTextExtractor()

	tests := []struct {
		name string
		doc  models.UploadedDocument
	}{
		{
			name: "docx that is not a zip",
			doc: models.UploadedDocument{
				Name:      "resume.docx",
				MediaType: mediaTypeDOCX,
				Data:      []byte("definitely not a zip archive"),
			},
		},
		{
			name: "docx zip without document.xml",
			doc: models.UploadedDocument{
				Name:      "resume.docx",
				MediaType: mediaTypeDOCX,
				Data:      zipWithDocument(t, "word/other.xml", "<w:document/>"),
			},
		},
		{
			name: "pdf that is not a pdf",
			doc: models.UploadedDocument{
				Name:      "resume.pdf",
				MediaType: mediaTypePDF,
				Data:      []byte("%PDF-nope"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.Extract(tt.doc)
			require.Error(t, err)
		})
	}
}
