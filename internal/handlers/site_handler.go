package handlers

import (
	"fmt"
	"log"
	"strings"

	units "github.com/docker/go-units"
	"github.com/gofiber/fiber/v2"

	"farhan/portfolio-generator/internal/models"
	"farhan/portfolio-generator/internal/pipeline"
	"farhan/portfolio-generator/internal/services"
	"farhan/portfolio-generator/internal/session"
)

type SiteHandler struct {
	pipeline  *pipeline.Pipeline
	sessions  *session.Store
	sanitizer services.PreviewSanitizer
	preview   models.PreviewSettings
}

func NewSiteHandler(
	p *pipeline.Pipeline,
	sessions *session.Store,
	sanitizer services.PreviewSanitizer,
	preview models.PreviewSettings,
) *SiteHandler {
	return &SiteHandler{
		pipeline:  p,
		sessions:  sessions,
		sanitizer: sanitizer,
		preview:   preview,
	}
}

// HandleSynthesize handles POST /site: the second model exchange, segment
// extraction and, when all three files came back, archive packaging.
func (h *SiteHandler) HandleSynthesize(c *fiber.Ctx) error {
	state, err := h.pipeline.SynthesizeSite(c.Context(), h.sessions.Current())
	if err != nil {
		return stageError(c, err)
	}
	h.sessions.Replace(state)

	var markup *models.MarkupStats
	if state.HasPreview() {
		stats := services.InspectMarkup(state.Bundle.HTML)
		markup = &stats
	}

	if missing := state.Report.Missing(); len(missing) > 0 {
		log.Printf("⚠️ Website generated with missing segments: %s", strings.Join(missing, ", "))
	} else {
		log.Printf("🤖 Website generated (%s archive)", units.HumanSize(float64(len(state.Archive))))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SiteResponse{
		SessionID:    state.SessionID.String(),
		Report:       state.Report,
		ArchiveReady: state.HasArchive(),
		Files:        fileSummaries(state.Bundle),
		Markup:       markup,
		Preview:      h.preview,
	})
}

// HandlePreview handles GET /preview: the sanitized document served as HTML.
// Only the HTML file is embedded; generated CSS and JS ship in the archive
// but stay out of the inline preview.
func (h *SiteHandler) HandlePreview(c *fiber.Ctx) error {
	state := h.sessions.Current()
	if !state.HasPreview() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No generated website to preview yet.",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(h.sanitizer.Render(state.Bundle.HTML))
}

// HandleDownload handles GET /download: the packaged archive, available only
// after a synthesis run produced all three files.
func (h *SiteHandler) HandleDownload(c *fiber.Ctx) error {
	state := h.sessions.Current()
	if !state.HasArchive() {
		msg := "Generate the website to enable the download."
		if missing := state.Report.Missing(); len(missing) > 0 {
			msg = fmt.Sprintf("Website incomplete, missing segments: %s.", strings.Join(missing, ", "))
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": msg,
		})
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", services.ArchiveFilename))
	return c.Send(state.Archive)
}

func fileSummaries(bundle models.SiteBundle) []models.FileSummary {
	files := []struct {
		name    string
		content string
	}{
		{services.EntryHTML, bundle.HTML},
		{services.EntryCSS, bundle.CSS},
		{services.EntryJS, bundle.JS},
	}

	summaries := make([]models.FileSummary, 0, len(files))
	for _, f := range files {
		summaries = append(summaries, models.FileSummary{
			Name:      f.name,
			Size:      len(f.content),
			SizeHuman: units.HumanSize(float64(len(f.content))),
		})
	}
	return summaries
}
