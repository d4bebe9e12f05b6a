package pipeline

import (
	"time"

	"github.com/google/uuid"

	"farhan/portfolio-generator/internal/models"
)

// State is one immutable snapshot of the session pipeline. Stage transitions
// return a new value and never mutate the receiver, so a published snapshot
// stays safe to read concurrently.
//
// Re-running an earlier stage overwrites only that stage's fields: artifacts
// produced by later stages stay in place until their stage runs again, so a
// previously built archive can be stale relative to an edited specification.
type State struct {
	SessionID     uuid.UUID
	ResumeName    string
	ResumeText    string
	Specification string
	Bundle        models.SiteBundle
	Report        models.ParseReport
	Archive       []byte
	UpdatedAt     time.Time
}

func NewState() State {
	return State{
		SessionID: uuid.New(),
		UpdatedAt: time.Now(),
	}
}

func (s State) WithResume(name, text string) State {
	s.ResumeName = name
	s.ResumeText = text
	s.UpdatedAt = time.Now()
	return s
}

func (s State) WithSpecification(text string) State {
	s.Specification = text
	s.UpdatedAt = time.Now()
	return s
}

// WithSite records a synthesis outcome. The archive is deliberately not
// touched here: it is replaced separately, and only when packaging actually
// ran on a complete bundle.
func (s State) WithSite(bundle models.SiteBundle, report models.ParseReport) State {
	s.Bundle = bundle
	s.Report = report
	s.UpdatedAt = time.Now()
	return s
}

func (s State) WithArchive(archive []byte) State {
	s.Archive = archive
	s.UpdatedAt = time.Now()
	return s
}

func (s State) HasResume() bool {
	return s.ResumeText != ""
}

func (s State) HasSpecification() bool {
	return s.Specification != ""
}

// HasSite reports whether a synthesis run has happened, successful or not.
func (s State) HasSite() bool {
	return len(s.Report.Segments) > 0
}

// HasPreview reports whether there is HTML to preview. CSS and JS do not
// gate the preview; it renders from the HTML alone.
func (s State) HasPreview() bool {
	return s.Bundle.HTML != ""
}

func (s State) HasArchive() bool {
	return len(s.Archive) > 0
}
