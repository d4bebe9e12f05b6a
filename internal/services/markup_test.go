package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectMarkup(t *testing.T) {
	html := `<!DOCTYPE html><html><head><title> Jane Doe | Portfolio </title></head>
<body>
<section id="hero"><a href="#skills">Skills</a></section>
<section id="skills"></section>
<section id="contact"><a href="mailto:jane@example.com">Email</a></section>
</body></html>`

	stats := InspectMarkup(html)

	assert.Equal(t, "Jane Doe | Portfolio", stats.Title)
	assert.Equal(t, 2, stats.AnchorCount)
	assert.Equal(t, 3, stats.SectionCount)
}

func TestInspectMarkup_ToleratesFragments(t *testing.T) {
	stats := InspectMarkup("<p>no title, no sections")

	assert.Empty(t, stats.Title)
	assert.Zero(t, stats.AnchorCount)
	assert.Zero(t, stats.SectionCount)
}
