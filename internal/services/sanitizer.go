package services

import (
	"fmt"
	"strings"
)

const (
	anchorTag     = "<a "
	safeAnchorTag = `<a target="_blank" rel="noopener noreferrer" `
)

// Override style injected into every preview. It forces a readable light
// theme over whatever palette the model picked and pins link color.
const previewOverrideCSS = `<style>
body, html {
    background-color: #ffffff !important;
    color: #111111 !important;
}
* {
    color: inherit !important;
}
a {
    color: #1a73e8 !important;
}
</style>`

type PreviewSanitizer interface {
	Render(htmlFragment string) string
}

type previewSanitizer struct{}

func NewPreviewSanitizer() PreviewSanitizer {
	return &previewSanitizer{}
}

// Render makes a generated HTML fragment safe to embed inline: anchors open
// in a new tab without leaking a referrer, and the light theme is forced over
// the whole document. Pure and stateless; it never fails.
func (s *previewSanitizer) Render(htmlFragment string) string {
	return wrapLightTheme(RewriteAnchors(htmlFragment))
}

// RewriteAnchors adds target and rel attributes to every literal "<a "
// occurrence. This is a plain substring rewrite: anchors written as "<a\n"
// or "<A " are left untouched, and the count of rewrites always equals the
// count of "<a " occurrences in the input.
func RewriteAnchors(html string) string {
	return strings.ReplaceAll(html, anchorTag, safeAnchorTag)
}

// wrapLightTheme embeds the fragment verbatim in a minimal document shell
// whose head carries only the override style block.
func wrapLightTheme(html string) string {
	return fmt.Sprintf("<!DOCTYPE html><html><head>%s</head><body>%s</body></html>", previewOverrideCSS, html)
}
