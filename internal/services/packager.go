package services

import (
	"archive/zip"
	"bytes"
	"fmt"

	"farhan/portfolio-generator/internal/models"
)

// Fixed archive layout. Entry names and order are part of the download
// contract.
const (
	ArchiveFilename = "portfolio_website.zip"

	EntryHTML = "index.html"
	EntryCSS  = "style.css"
	EntryJS   = "script.js"
)

type Packager interface {
	Build(bundle models.SiteBundle) ([]byte, error)
}

type zipPackager struct{}

func NewZipPackager() Packager {
	return &zipPackager{}
}

// Build writes the bundle into an in-memory zip. Contents are stored verbatim
// so unzipping reproduces each file byte for byte. Completeness is the
// caller's gate; Build packages whatever it is given.
func (p *zipPackager) Build(bundle models.SiteBundle) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name    string
		content string
	}{
		{EntryHTML, bundle.HTML},
		{EntryCSS, bundle.CSS},
		{EntryJS, bundle.JS},
	}

	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s in archive: %w", entry.name, err)
		}
		if _, err := w.Write([]byte(entry.content)); err != nil {
			return nil, fmt.Errorf("failed to write %s to archive: %w", entry.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), nil
}
