package services

import (
	"strings"

	"farhan/portfolio-generator/internal/models"
)

// Markers the website prompt instructs the model to emit. Each segment is
// bounded by two occurrences of its marker; occurrences beyond the second are
// ignored. The markers are plain substrings, so a marker appearing inside
// generated code will corrupt that segment's extraction.
const (
	markerHTML = "--html--"
	markerCSS  = "--css--"
	markerJS   = "--js--"
)

const (
	segmentHTML = "html"
	segmentCSS  = "css"
	segmentJS   = "js"
)

// ParseSiteBundle extracts the three delimited code segments from a raw model
// response. Segments are independent: a missing or malformed marker pair
// empties that segment and is explained in the report, the others still
// parse. Parsing never fails.
func ParseSiteBundle(raw string) (models.SiteBundle, models.ParseReport) {
	html, htmlResult := extractSegment(raw, segmentHTML, markerHTML)
	css, cssResult := extractSegment(raw, segmentCSS, markerCSS)
	js, jsResult := extractSegment(raw, segmentJS, markerJS)

	bundle := models.SiteBundle{HTML: html, CSS: css, JS: js}
	report := models.ParseReport{
		Segments: []models.SegmentResult{htmlResult, cssResult, jsResult},
	}

	return bundle, report
}

// extractSegment returns the trimmed text strictly between the first and
// second occurrence of marker.
func extractSegment(raw, name, marker string) (string, models.SegmentResult) {
	open := strings.Index(raw, marker)
	if open < 0 {
		return "", models.SegmentResult{Segment: name, Reason: "opening marker not found"}
	}

	rest := raw[open+len(marker):]
	end := strings.Index(rest, marker)
	if end < 0 {
		return "", models.SegmentResult{Segment: name, Reason: "closing marker not found"}
	}

	content := strings.TrimSpace(rest[:end])
	if content == "" {
		return "", models.SegmentResult{Segment: name, Reason: "segment is empty"}
	}

	return content, models.SegmentResult{Segment: name, Extracted: true}
}
