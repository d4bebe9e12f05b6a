package models

// SiteBundle holds the three source files of a generated portfolio website.
// A field is empty when its segment could not be extracted from the model
// response.
type SiteBundle struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// Complete reports whether every file has content. Archive packaging is gated
// on it; a partial bundle is still previewable when the HTML came through.
func (b SiteBundle) Complete() bool {
	return b.HTML != "" && b.CSS != "" && b.JS != ""
}

// SegmentResult describes the outcome of extracting one delimited segment
// from the raw model response.
type SegmentResult struct {
	Segment   string `json:"segment"`
	Extracted bool   `json:"extracted"`
	Reason    string `json:"reason,omitempty"`
}

// ParseReport collects the per-segment outcomes of one synthesis run.
type ParseReport struct {
	Segments []SegmentResult `json:"segments"`
}

// Missing returns the names of segments that yielded no content.
func (r ParseReport) Missing() []string {
	var names []string
	for _, s := range r.Segments {
		if !s.Extracted {
			names = append(names, s.Segment)
		}
	}
	return names
}

// MarkupStats are light diagnostics pulled from generated HTML.
type MarkupStats struct {
	Title        string `json:"title"`
	AnchorCount  int    `json:"anchor_count"`
	SectionCount int    `json:"section_count"`
}

// PreviewSettings tell an embedding client how to size its sandboxed viewer.
type PreviewSettings struct {
	HeightPx  int  `json:"height_px"`
	Scrolling bool `json:"scrolling"`
}

// FileSummary reports the size of one generated file without inlining its
// content.
type FileSummary struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`
	SizeHuman string `json:"size_human"`
}
