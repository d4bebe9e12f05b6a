package services

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"farhan/portfolio-generator/internal/models"
)

// InspectMarkup pulls light diagnostics out of generated HTML for responses
// and logs. It never blocks the pipeline; unparseable input yields zero
// stats.
func InspectMarkup(html string) models.MarkupStats {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.MarkupStats{}
	}

	return models.MarkupStats{
		Title:        strings.TrimSpace(doc.Find("title").First().Text()),
		AnchorCount:  doc.Find("a").Length(),
		SectionCount: doc.Find("section").Length(),
	}
}
